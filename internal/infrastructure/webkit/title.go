package webkit

import "fmt"

// toplevelTitle names the GTK toplevel of the seq-th surface of process pid.
// The title only has to be unique on the X server until the window is embedded.
func toplevelTitle(pid int, seq uint64) string {
	return fmt.Sprintf("webembed-%d-%d", pid, seq)
}
