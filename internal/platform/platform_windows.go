//go:build windows

package platform

const hostOS = Windows
