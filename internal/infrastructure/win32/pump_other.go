//go:build !windows

package win32

// Pump is a no-op off Windows.
func Pump() {}
