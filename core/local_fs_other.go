//go:build !unix && !windows

package core

func isCrossDeviceError(err error) bool {
	return false
}
