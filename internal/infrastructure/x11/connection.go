// Package x11 reparents toolkit toplevels into host-owned X11 windows.
package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Connection manages the X11 connection and the root window.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection connects to the display named by $DISPLAY.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	return &Connection{XUtil: xu, Root: xu.RootWin()}, nil
}

// Close disconnects from the X server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// Children lists the direct children of w, bottom-most first.
func (c *Connection) Children(w xproto.Window) ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(c.XUtil.Conn(), w).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// Name returns the title of w, preferring _NET_WM_NAME over WM_NAME.
func (c *Connection) Name(w xproto.Window) string {
	if name, err := ewmh.WmNameGet(c.XUtil, w); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(c.XUtil, w); err == nil {
		return name
	}
	return ""
}

// Exists reports whether w names a live window.
func (c *Connection) Exists(w xproto.Window) bool {
	_, err := xproto.GetWindowAttributes(c.XUtil.Conn(), w).Reply()
	return err == nil
}
