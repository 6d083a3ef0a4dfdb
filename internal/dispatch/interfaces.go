package dispatch

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_dispatch.go

// Toolkit is the UI toolkit driven by a Runner. Both methods are only ever
// called from the runner's locked OS thread.
type Toolkit interface {
	// Init initializes the toolkit on the calling thread. It is called once.
	Init() error
	// Iterate processes pending toolkit events without blocking.
	Iterate()
}

// MainQueue schedules work on the process main thread.
type MainQueue interface {
	IsMainThread() bool
	// Sync runs fn on the main thread and returns once it completed.
	Sync(fn func())
	// Async schedules fn on the main thread and returns immediately.
	Async(fn func())
}
