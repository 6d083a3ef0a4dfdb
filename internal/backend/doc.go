// Package backend picks the engine and dispatcher for the platform the binary
// was built for. Defaults may return a nil engine, in which case surfaces
// cannot be created and the service reports an unsupported platform.
package backend
