// Package focus implements the focus policy, restack and showhide
// operations of spec §4.5–§4.7: which client is selected, X input focus
// and border color, and the Z-order/visibility side effects of an arrange
// pass.
package focus

import (
	"github.com/jezek/xgb/xproto"

	log "github.com/sirupsen/logrus"

	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/store"
)

// Policy bundles the X surface and configuration the focus operations need;
// it holds no state of its own beyond what store.State already owns.
type Policy struct {
	Surface *store.Surface
	Config  *config.Config
	State   *store.State

	// RequestBarRedraw is called once per monitor whose bar should be
	// repainted; wired by cmd/wm to the draw painter's Redraw to avoid a
	// dependency cycle between focus and bar/draw.
	RequestBarRedraw func(*store.Monitor)
}

// Focus implements spec §4.7. c == nil means "focus whatever the selected
// view's stack head is".
func (p *Policy) Focus(c *store.Client) {
	v := p.State.SelMon.SelectedView()
	if c == nil {
		c = store.FocusStackHead(v)
	}

	if prev := v.Sel; prev != nil && prev != c {
		p.unfocus(prev)
	}

	if c != nil {
		if c.Monitor != p.State.SelMon {
			p.State.SelMon = c.Monitor
		}

		c.Urgent = false

		view := c.Monitor.Views[c.View]
		view.DetachStack(c)
		view.AttachStack(c)

		p.grabActiveButtons(c)
		p.Surface.SetBorderColor(c.Window, p.Config.Colors.SelBorder)
		p.Surface.SetInputFocus(c.Window, xproto.TimeCurrentTime)

		c.Monitor.Views[c.View].Sel = c
	} else {
		p.Surface.SetInputFocus(p.State.Root, xproto.TimeCurrentTime)
		v.Sel = nil
	}

	log.WithField("client", clientLogID(c)).Debug("focus")

	for _, m := range p.State.Monitors() {
		if p.RequestBarRedraw != nil {
			p.RequestBarRedraw(m)
		}
	}
}

// unfocus resets c's border to normal and strips it down to the
// any-button passive grab (spec §4.7 step 2).
func (p *Policy) unfocus(c *store.Client) {
	p.Surface.SetBorderColor(c.Window, p.Config.Colors.NormBorder)
	p.Surface.UngrabButton(c.Window)
}

// grabActiveButtons installs the configured per-client button bindings
// (move/resize/etc. — ClickClientWin entries) combined with the lock
// modifiers, plus the any-button passive grab so an unmodified click still
// reaches the client.
func (p *Policy) grabActiveButtons(c *store.Client) {
	p.Surface.UngrabButton(c.Window)
	for _, b := range p.Config.Buttons {
		if b.Click != config.ClickClientWin {
			continue
		}
		p.Surface.GrabButton(c.Window, b.Button, b.Mod, false)
	}
}

func clientLogID(c *store.Client) string {
	if c == nil {
		return "<none>"
	}
	if c.Class != "" {
		return c.Class
	}
	return "window"
}

// FocusStackHead returns the client that would become selected if the
// caller focused nil on view v (the head of its focus stack, or nil),
// exposing store.FocusStackHead to callers outside package store.
func FocusStackHead(v *store.View) *store.Client {
	return store.FocusStackHead(v)
}
