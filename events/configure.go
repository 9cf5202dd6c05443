package events

import (
	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/store"
)

// onConfigureRequest implements spec §4.8's ConfigureRequest row: floating
// (or no-arranger) clients get their requested geometry honored, centered
// if it would land off-screen; tiled clients are refused with a synthetic
// ConfigureNotify reasserting their current geometry; unmanaged windows
// are forwarded verbatim.
func (d *Dispatcher) onConfigureRequest(e xproto.ConfigureRequestEvent) {
	c := d.State.WindowToClient(e.Window)
	if c == nil {
		forwardConfigureRequest(d.Surface, e)
		return
	}

	if c.Floating || !c.Monitor.ViewTiled() {
		r := c.Rect
		if e.ValueMask&xproto.ConfigWindowX != 0 {
			r.X = int(e.X)
		}
		if e.ValueMask&xproto.ConfigWindowY != 0 {
			r.Y = int(e.Y)
		}
		if e.ValueMask&xproto.ConfigWindowWidth != 0 {
			r.W = int(e.Width)
		}
		if e.ValueMask&xproto.ConfigWindowHeight != 0 {
			r.H = int(e.Height)
		}
		mr := c.Monitor.ScreenRect
		if r.X < mr.X || r.X+r.W > mr.X+mr.W {
			r.X = mr.X + (mr.W-r.W)/2
		}
		if r.Y < mr.Y || r.Y+r.H > mr.Y+mr.H {
			r.Y = mr.Y + (mr.H-r.H)/2
		}
		c.Rect = r
		d.Surface.Configure(c.Window, c.Rect, c.Border)
		return
	}

	d.Surface.SendConfigureNotify(c.Window, c.Rect, c.Border)
}

func forwardConfigureRequest(s *store.Surface, e xproto.ConfigureRequestEvent) {
	r := geom.Rect{X: int(e.X), Y: int(e.Y), W: int(e.Width), H: int(e.Height)}
	s.Configure(e.Window, r, int(e.BorderWidth))
}
