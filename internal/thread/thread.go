// Package thread identifies OS threads.
//
// Goroutines migrate between threads, so an ID is only meaningful for code
// running on a goroutine locked with runtime.LockOSThread, or on a thread that
// entered Go through a native callback. Every dispatcher in this module runs
// surface work under one of those conditions.
package thread

import "strconv"

// ID is an OS-level thread identifier. Zero is never a valid thread.
type ID uint64

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Current returns the identity of the calling OS thread.
func Current() ID {
	return current()
}

// OS is a ThreadSource backed by Current.
type OS struct{}

// Current implements port.ThreadSource.
func (OS) Current() ID {
	return current()
}
