//go:build darwin

package darwin

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// Inspector answers class membership questions about Objective-C objects.
// A pointer that is not a live object crashes the runtime; callers only pass
// handles a host claims to own.
type Inspector struct {
	once sync.Once

	nsWindow objc.Class
	nsView   objc.Class

	selIsKindOfClass objc.SEL
	selContentView   objc.SEL
}

var inspector = &Inspector{}

// ObjC returns the process-wide inspector. AppKit is loaded on first use.
func ObjC() *Inspector {
	return inspector
}

func (i *Inspector) load() {
	i.once.Do(func() {
		// the classes only resolve once AppKit is mapped; hosts normally have it loaded already
		_, _ = purego.Dlopen(appKitPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)

		i.nsWindow = objc.GetClass("NSWindow")
		i.nsView = objc.GetClass("NSView")
		i.selIsKindOfClass = objc.RegisterName("isKindOfClass:")
		i.selContentView = objc.RegisterName("contentView")
	})
}

func (i *Inspector) isKindOf(ptr uintptr, class objc.Class) bool {
	if ptr == 0 || class == 0 {
		return false
	}
	return objc.Send[bool](objc.ID(ptr), i.selIsKindOfClass, class)
}

// IsWindow reports whether ptr is an NSWindow.
func (i *Inspector) IsWindow(ptr uintptr) bool {
	i.load()
	return i.isKindOf(ptr, i.nsWindow)
}

// IsView reports whether ptr is an NSView.
func (i *Inspector) IsView(ptr uintptr) bool {
	i.load()
	return i.isKindOf(ptr, i.nsView)
}

// ContentView returns the content view of window, or zero.
func (i *Inspector) ContentView(window uintptr) uintptr {
	i.load()
	if window == 0 {
		return 0
	}
	return uintptr(objc.ID(window).Send(i.selContentView))
}
