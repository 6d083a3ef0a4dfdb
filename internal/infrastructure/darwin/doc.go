// Package darwin binds the parts of libSystem and the Objective-C runtime that
// surfaces need on macOS: the libdispatch main queue and class checks on the
// handles a host passes in. Everything is loaded at runtime through purego, so
// the package builds without cgo.
package darwin
