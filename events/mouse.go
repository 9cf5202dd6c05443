package events

import (
	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/store"
)

// localPump runs while the caller holds the pointer grab and handles only
// the whitelist of event types spec §4.10 allows during an interactive
// move/resize (anything else is dropped): MotionNotify drives
// the caller-supplied onMotion, ButtonRelease ends the pump, and the
// handful of structural events that keep arriving are routed to their
// normal handlers so the rest of the desktop doesn't freeze mid-drag.
func (d *Dispatcher) localPump(onMotion func(x, y int16)) {
	for {
		ev, err := d.Surface.NextEvent()
		if err != nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.MotionNotifyEvent:
			onMotion(e.RootX, e.RootY)
		case xproto.ButtonReleaseEvent:
			return
		case xproto.ConfigureRequestEvent:
			d.onConfigureRequest(e)
		case xproto.MapRequestEvent:
			d.onMapRequest(e)
		case xproto.ExposeEvent:
			d.onExpose(e)
		}
	}
}

// moveMouse implements spec §4.10's move policy: the client follows the
// pointer delta from the grab start, snapping to a monitor edge within
// the configured distance, and promotes a tiled client to floating once
// the drag exceeds that same threshold.
func (d *Dispatcher) moveMouse() {
	c := d.State.SelMon.SelectedView().Sel
	if c == nil || c.Fullscreen {
		return
	}
	if err := d.Surface.GrabPointer(0); err != nil {
		return
	}
	defer d.Surface.UngrabPointer()

	ocx, ocy := c.Rect.X, c.Rect.Y
	x0, y0 := d.pointerPos()

	d.localPump(func(mx, my int16) {
		nx := ocx + (int(mx) - x0)
		ny := ocy + (int(my) - y0)

		if abs(int(mx)-x0) > d.Config.Snap || abs(int(my)-y0) > d.Config.Snap {
			if !c.Floating && !c.Fixed {
				c.Floating = true
				d.arrange(c.Monitor)
			}
		}
		if !c.Floating {
			return
		}

		m := c.Monitor
		if abs(nx-m.WindowRect.X) < d.Config.Snap {
			nx = m.WindowRect.X
		} else if abs((nx+c.Rect.W)-(m.WindowRect.X+m.WindowRect.W)) < d.Config.Snap {
			nx = m.WindowRect.X + m.WindowRect.W - c.Rect.W
		}
		if abs(ny-m.WindowRect.Y) < d.Config.Snap {
			ny = m.WindowRect.Y
		} else if abs((ny+c.Rect.H)-(m.WindowRect.Y+m.WindowRect.H)) < d.Config.Snap {
			ny = m.WindowRect.Y + m.WindowRect.H - c.Rect.H
		}

		c.Rect.X, c.Rect.Y = nx, ny
		d.Surface.Configure(c.Window, c.Rect, c.Border)
	})

	d.finishDrag(c)
}

// resizeMouse implements spec §4.10's resize policy: the pointer is
// warped to the bottom-right corner at the start, and every subsequent
// motion recomputes (w, h) from the corner's new position.
func (d *Dispatcher) resizeMouse() {
	c := d.State.SelMon.SelectedView().Sel
	if c == nil || c.Fullscreen {
		return
	}
	if err := d.Surface.GrabPointer(0); err != nil {
		return
	}
	defer d.Surface.UngrabPointer()

	ocx, ocy := c.Rect.X, c.Rect.Y
	corner := geom.Rect{X: ocx + c.Rect.W, Y: ocy + c.Rect.H}
	d.Surface.WarpPointer(int16(corner.X), int16(corner.Y))

	d.localPump(func(mx, my int16) {
		if abs(int(mx)-(ocx+c.Rect.W)) > d.Config.Snap || abs(int(my)-(ocy+c.Rect.H)) > d.Config.Snap {
			if !c.Floating && !c.Fixed {
				c.Floating = true
				d.arrange(c.Monitor)
			}
		}
		if !c.Floating {
			return
		}

		w := int(mx) - ocx - 2*c.Border + 1
		h := int(my) - ocy - 2*c.Border + 1
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}

		proposed := geom.Rect{X: ocx, Y: ocy, W: w, H: h}
		opts := geom.Options{Interactive: true, Floating: true, RespectResizeHints: d.Config.ResizeHints, BarHeight: d.Config.BarHeight}
		r, _ := geom.ApplySizeHints(c.Rect, proposed, c.Hints, c.Monitor.ScreenRect, d.displayBounds(), opts)
		c.Rect = r
		d.Surface.Configure(c.Window, c.Rect, c.Border)
	})

	d.finishDrag(c)
}

// finishDrag implements the release policy of spec §4.10: if the client's
// center ended up over a different monitor, migrate it there.
func (d *Dispatcher) finishDrag(c *store.Client) {
	cx := c.Rect.X + c.Rect.W/2
	cy := c.Rect.Y + c.Rect.H/2
	if mon := d.State.PointerToMonitor(cx, cy); mon != nil && mon != c.Monitor {
		d.sendToMonitor(c, mon)
		return
	}
	d.arrange(c.Monitor)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
