//go:build !linux && !windows && !darwin

package thread

// Platforms without a surface backend all run surface work on one thread,
// so a fixed identity keeps the registry checks consistent.
func current() ID {
	return 1
}
