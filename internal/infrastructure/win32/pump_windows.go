//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const pmRemove = 0x0001

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
)

// msg mirrors the MSG structure.
type msg struct {
	hwnd     windows.HWND
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       struct{ x, y int32 }
	lPrivate uint32
}

// Pump translates and dispatches every message queued for the calling thread,
// then returns without waiting for more.
func Pump() {
	var m msg
	for {
		ok, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
		if ok == 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}
