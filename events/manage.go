package events

import (
	"github.com/jezek/xgb/xproto"

	"github.com/jezek/xgbutil/icccm"

	log "github.com/sirupsen/logrus"

	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/store"
)

// clientEventMask is the event mask every managed window carries
// (invariant 7): enough to notice property changes, the window trying to
// resize/move itself, and pointer crossings for focus-follows-mouse.
const clientEventMask = xproto.EventMaskEnterWindow | xproto.EventMaskPropertyChange |
	xproto.EventMaskStructureNotify | xproto.EventMaskFocusChange

// onMapRequest is the MapRequest handler of spec §4.8: ignore
// override-redirect or already-managed windows, else manage.
func (d *Dispatcher) onMapRequest(e xproto.MapRequestEvent) {
	if d.State.WindowToClient(e.Window) != nil {
		return
	}
	attrs, err := xproto.GetWindowAttributes(d.Surface.X.Conn(), e.Window).Reply()
	if err != nil {
		return
	}
	if attrs.OverrideRedirect {
		return
	}
	d.manage(e.Window)
}

// Scan manages every existing top-level window at startup (the
// pre-existing-windows half of the Lifecycle in spec §3), skipping
// override-redirect and already-unmapped windows.
func (d *Dispatcher) Scan() {
	tree, err := xproto.QueryTree(d.Surface.X.Conn(), d.State.Root).Reply()
	if err != nil {
		log.WithError(err).Warn("events: query tree failed")
		return
	}
	for _, w := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(d.Surface.X.Conn(), w).Reply()
		if err != nil || attrs.OverrideRedirect || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		d.manage(w)
	}
}

// manage brings a newly-mapped window under control: reads its hints and
// class, picks a monitor/view, attaches it at the head of both lists,
// installs the event mask and border, and arranges.
func (d *Dispatcher) manage(w xproto.Window) {
	c := store.NewClient(w)

	geomReply, err := xproto.GetGeometry(d.Surface.X.Conn(), xproto.Drawable(w)).Reply()
	if err == nil {
		c.Rect = geom.Rect{X: int(geomReply.X), Y: int(geomReply.Y), W: int(geomReply.Width), H: int(geomReply.Height)}
	}

	if class, err := icccm.WmClassGet(d.Surface.X, w); err == nil {
		c.Class = class.Class
		c.Instance = class.Instance
	}
	if name, err := icccm.WmNameGet(d.Surface.X, w); err == nil {
		c.SetTitle(name)
	}
	c.ApplyHints(readNormalHints(d.Surface, w))

	if transient, err := icccm.WmTransientForGet(d.Surface.X, w); err == nil && transient != 0 {
		c.Floating = true
	}
	if hints, err := icccm.WmHintsGet(d.Surface.X, w); err == nil {
		c.Urgent = hints.Flags&icccm.HintUrgency != 0
	}

	c.Monitor = d.State.SelMon
	c.View = c.Monitor.SelView
	c.Border = d.Config.BorderPx

	store.Attach(c)
	store.AttachStack(c)

	if c.Floating {
		c.Rect = store.ClampToMonitor(c.Rect, c.Monitor)
	}

	d.Surface.SelectEventMask(w, clientEventMask)
	d.Surface.Configure(w, c.Rect, c.Border)
	d.Surface.SetWMState(w, store.NormalState)
	d.Surface.MapWindow(w)

	log.WithField("class", c.Class).Debug("manage")

	d.arrange(c.Monitor)
	d.Focus.Focus(c)
}

// unmanage removes c from its view, unmaps bookkeeping, and restores
// WM_STATE on a non-destroyed window it force-unmanaged itself.
func (d *Dispatcher) unmanage(c *store.Client, destroyed bool) {
	m := c.Monitor
	view := m.Views[c.View]

	d.Surface.WithServerGrab(func() {
		view.Detach(c)
		view.DetachStack(c)
		if !destroyed {
			d.Surface.SetWMState(c.Window, store.WithdrawnState)
		}
	})

	if m == d.State.SelMon && c.View == m.SelView {
		d.Focus.Focus(nil)
	}

	d.arrange(m)
}
