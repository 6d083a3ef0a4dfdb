package x11

import "github.com/BurntSushi/xgb/xproto"

// maxSearchDepth covers a client window nested in a reparenting window manager's frame.
const maxSearchDepth = 3

// windowTree is the part of a Connection the title search needs.
type windowTree interface {
	Children(w xproto.Window) ([]xproto.Window, error)
	Name(w xproto.Window) string
}

// findByName walks the tree under root breadth-first and returns the first
// window titled name. Windows whose children cannot be listed are skipped.
func findByName(tree windowTree, root xproto.Window, name string, depth int) (xproto.Window, bool) {
	level := []xproto.Window{root}
	for d := 0; d < depth && len(level) > 0; d++ {
		var next []xproto.Window
		for _, parent := range level {
			children, err := tree.Children(parent)
			if err != nil {
				continue
			}
			for _, w := range children {
				if tree.Name(w) == name {
					return w, true
				}
			}
			next = append(next, children...)
		}
		level = next
	}
	return 0, false
}
