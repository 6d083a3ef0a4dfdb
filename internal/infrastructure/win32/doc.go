// Package win32 drains the Win32 message queue of the calling thread.
package win32
