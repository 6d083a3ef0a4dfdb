package port

import "github.com/bnema/webembed/internal/thread"

// ThreadSource reports the identity of the calling OS thread.
type ThreadSource interface {
	Current() thread.ID
}

// ThreadSourceFunc adapts a function to ThreadSource.
type ThreadSourceFunc func() thread.ID

// Current implements ThreadSource.
func (f ThreadSourceFunc) Current() thread.ID {
	return f()
}
