//go:build linux

package webkit

import (
	"context"
	"sync/atomic"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/infrastructure/x11"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"
)

const focusScript = "document.documentElement.focus(); window.focus();"

var errClosed = errs.Enginef("webview destroyed")

// Surface is one embedded WebKitWebView.
type Surface struct {
	window   *gtk.Window
	view     *webkit.WebView
	xwin     xproto.Window
	embedder *x11.Embedder
	logger   zerolog.Logger

	closed atomic.Bool
}

var _ port.Surface = (*Surface)(nil)

func (s *Surface) connectSignals(cb port.SurfaceCallbacks) {
	s.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if cb.OnPageLoad == nil {
			return
		}
		switch event {
		case webkit.LoadStarted:
			cb.OnPageLoad(entity.LoadStarted, s.view.URI())
		case webkit.LoadFinished:
			cb.OnPageLoad(entity.LoadFinished, s.view.URI())
		}
	})

	s.view.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, typ webkit.PolicyDecisionType) bool {
		if cb.OnNavigationStarted == nil || typ != webkit.PolicyDecisionTypeNavigationAction {
			return false
		}
		nav, ok := decision.(*webkit.NavigationPolicyDecision)
		if !ok {
			return false
		}

		var url string
		if req := nav.NavigationAction().Request(); req != nil {
			url = req.URI()
		}
		if cb.OnNavigationStarted(url) {
			// unhandled: WebKit applies its default, which is to proceed
			return false
		}
		nav.Ignore()
		return true
	})
}

func (s *Surface) SetBounds(b entity.Bounds) error {
	if s.closed.Load() {
		return errClosed
	}
	s.embedder.MoveResize(s.xwin, b)
	return nil
}

func (s *Surface) LoadURL(url string) error {
	if s.closed.Load() {
		return errClosed
	}
	s.view.LoadURI(url)
	return nil
}

func (s *Surface) GoBack() error {
	if s.closed.Load() {
		return errClosed
	}
	s.view.GoBack()
	return nil
}

func (s *Surface) GoForward() error {
	if s.closed.Load() {
		return errClosed
	}
	s.view.GoForward()
	return nil
}

func (s *Surface) Reload() error {
	if s.closed.Load() {
		return errClosed
	}
	s.view.Reload()
	return nil
}

// Focus moves the X input focus to the surface, grabs GTK focus for the view
// and focuses the document.
func (s *Surface) Focus() error {
	if s.closed.Load() {
		return errClosed
	}
	if err := s.embedder.Focus(s.xwin); err != nil {
		return errs.Engine(err)
	}
	s.view.GrabFocus()
	s.view.EvaluateJavascript(context.Background(), focusScript, "", "", nil)
	return nil
}

// Close destroys the toplevel and the view it hosts.
func (s *Surface) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.window.Destroy()
	s.logger.Debug().Uint32("xid", uint32(s.xwin)).Msg("webview destroyed")
	return nil
}
