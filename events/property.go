package events

import (
	"github.com/jezek/xgb/xproto"

	"github.com/jezek/xgbutil/icccm"

	"github.com/mozzenior/wm/store"
)

// onPropertyNotify implements spec §4.8's PropertyNotify row.
func (d *Dispatcher) onPropertyNotify(e xproto.PropertyNotifyEvent) {
	if e.Window == d.State.Root {
		if e.Atom == xproto.AtomWmName {
			d.refreshStatusText()
		}
		return
	}

	c := d.State.WindowToClient(e.Window)
	if c == nil {
		return
	}

	switch e.Atom {
	case xproto.AtomWmTransientFor:
		if transient, err := icccm.WmTransientForGet(d.Surface.X, e.Window); err == nil && transient != 0 && !c.Fixed {
			c.Floating = true
			d.arrange(c.Monitor)
		}
	case xproto.AtomWmNormalHints:
		c.ApplyHints(readNormalHints(d.Surface, e.Window))
		d.arrange(c.Monitor)
	case xproto.AtomWmHints:
		if hints, err := icccm.WmHintsGet(d.Surface.X, e.Window); err == nil {
			c.Urgent = hints.Flags&icccm.HintUrgency != 0
			c.MarkDirty()
			d.redrawClientMonitor(c)
		}
	case xproto.AtomWmName:
		d.refreshTitle(c)
	default:
		if e.Atom == d.Surface.Atom("_NET_WM_NAME") {
			d.refreshTitle(c)
		}
	}
}

func (d *Dispatcher) refreshTitle(c *store.Client) {
	name, err := icccm.WmNameGet(d.Surface.X, c.Window)
	if err != nil {
		return
	}
	c.SetTitle(name)
	d.redrawClientMonitor(c)
}

func (d *Dispatcher) redrawClientMonitor(c *store.Client) {
	if c.Monitor != nil && d.RequestBarRedraw != nil {
		d.RequestBarRedraw(c.Monitor)
	}
}

func (d *Dispatcher) refreshStatusText() {
	name, err := icccm.WmNameGet(d.Surface.X, d.State.Root)
	if err != nil || name == "" {
		return
	}
	if len(name) > 256 {
		name = name[:256]
	}
	d.State.StatusText = name
	for _, m := range d.State.Monitors() {
		if d.RequestBarRedraw != nil {
			d.RequestBarRedraw(m)
		}
	}
}
