//go:build linux

package platform

const hostOS = Linux
