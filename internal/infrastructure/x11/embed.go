package x11

import (
	"fmt"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/rs/zerolog"
)

const pollInterval = 5 * time.Millisecond

// Embedder moves toolkit toplevels into foreign parent windows.
type Embedder struct {
	conn    *Connection
	timeout time.Duration
	logger  zerolog.Logger
}

// NewEmbedder returns an Embedder that waits up to timeout for a toplevel to appear.
func NewEmbedder(conn *Connection, timeout time.Duration, logger zerolog.Logger) *Embedder {
	return &Embedder{
		conn:    conn,
		timeout: timeout,
		logger:  logger.With().Str("component", "x11").Logger(),
	}
}

// ValidateParent checks that xid names a live window.
func (e *Embedder) ValidateParent(xid uint32) error {
	if !e.conn.Exists(xproto.Window(xid)) {
		return fmt.Errorf("window 0x%x does not exist", xid)
	}
	return nil
}

// WaitForToplevel polls for the toplevel titled title. pump is called between
// polls so the toolkit gets to map the window when the caller runs its loop.
func (e *Embedder) WaitForToplevel(title string, pump func()) (xproto.Window, error) {
	deadline := time.Now().Add(e.timeout)
	for {
		if pump != nil {
			pump()
		}
		if w, ok := findByName(e.conn, e.conn.Root, title, maxSearchDepth); ok {
			return w, nil
		}
		if time.Now().After(deadline) {
			return 0, fmt.Errorf("toplevel %q not mapped after %s", title, e.timeout)
		}
		time.Sleep(pollInterval)
	}
}

// Embed reparents child into parent at bounds. Out-of-range coordinates are
// clamped to the protocol limits.
func (e *Embedder) Embed(child xproto.Window, parent uint32, bounds entity.Bounds) error {
	x, y, _, _ := wireGeometry(bounds)
	err := xproto.ReparentWindowChecked(
		e.conn.XUtil.Conn(), child, xproto.Window(parent), x, y,
	).Check()
	if err != nil {
		return fmt.Errorf("reparent 0x%x into 0x%x: %w", child, parent, err)
	}

	e.MoveResize(child, bounds)
	xwindow.New(e.conn.XUtil, child).Map()

	e.logger.Debug().
		Uint32("child", uint32(child)).
		Uint32("parent", parent).
		Msg("toplevel embedded")
	return nil
}

// MoveResize places child at bounds relative to its parent.
func (e *Embedder) MoveResize(child xproto.Window, bounds entity.Bounds) {
	x, y, w, h := wireGeometry(bounds)
	xwindow.New(e.conn.XUtil, child).MoveResize(int(x), int(y), int(w), int(h))
}

// Focus gives child the keyboard input focus.
func (e *Embedder) Focus(child xproto.Window) error {
	return xproto.SetInputFocusChecked(
		e.conn.XUtil.Conn(), xproto.InputFocusParent, child, xproto.TimeCurrentTime,
	).Check()
}
