//go:build !linux && !windows && !darwin

package platform

const hostOS = Unknown
