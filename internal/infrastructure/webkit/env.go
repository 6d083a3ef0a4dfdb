package webkit

import (
	"maps"
	"os"
)

// renderEnv exports the environment GTK and WebKit read at initialization.
type renderEnv struct {
	lookup  func(key string) (string, bool)
	set     func(key, value string) error
	applied map[string]string
}

func newRenderEnv() *renderEnv {
	return &renderEnv{
		lookup:  os.LookupEnv,
		set:     os.Setenv,
		applied: make(map[string]string),
	}
}

// apply must run before GTK initializes. The configured backend always wins;
// software rendering variables never override what the user already exported.
func (e *renderEnv) apply(gdkBackend string, hardwareAcceleration bool) error {
	if gdkBackend != "" {
		if err := e.setEnv("GDK_BACKEND", gdkBackend); err != nil {
			return err
		}
	}

	if hardwareAcceleration {
		return nil
	}
	for _, kv := range [][2]string{
		{"WEBKIT_DISABLE_DMABUF_RENDERER", "1"},
		{"WEBKIT_DISABLE_COMPOSITING_MODE", "1"},
		{"GSK_RENDERER", "cairo"},
	} {
		if _, ok := e.lookup(kv[0]); ok {
			continue
		}
		if err := e.setEnv(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func (e *renderEnv) setEnv(key, value string) error {
	if err := e.set(key, value); err != nil {
		return err
	}
	e.applied[key] = value
	return nil
}

// vars returns a copy of the variables set by apply.
func (e *renderEnv) vars() map[string]string {
	return maps.Clone(e.applied)
}
