//go:build darwin

package platform

const hostOS = Mac
