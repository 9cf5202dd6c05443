// Package events implements the fixed event-dispatch table and the main
// loop (spec §4.8, §5): the single suspension point that reads the next X
// event, classifies it, and runs the matching handler to completion before
// looping back.
package events

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/jezek/xgbutil/keybind"

	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/focus"
	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/reconcile"
	"github.com/mozzenior/wm/store"
)

// Dispatcher owns the pieces the event handlers need: the surface, the
// data model, the configuration, and the focus policy. It holds no state
// of its own beyond the quit flag and the two callbacks wired by cmd/wm.
type Dispatcher struct {
	Surface *store.Surface
	State   *store.State
	Config  *config.Config
	Focus   *focus.Policy

	// RequestBarRedraw and Spawn are wired by cmd/wm to keep events free
	// of a direct dependency on bar/draw and on os/exec.
	RequestBarRedraw func(*store.Monitor)
	Spawn            func(argv []string)

	quit bool
}

// New builds a Dispatcher, primes the X keyboard mapping cache, and grabs
// every configured key binding on the root window — dwm does the
// equivalent in setup() via grabkeys(), before the main loop ever runs, so
// a KeyPress is deliverable from the very first event (spec §4.8, §6).
func New(s *store.Surface, st *store.State, c *config.Config, p *focus.Policy) *Dispatcher {
	keybind.Initialize(s.X)
	d := &Dispatcher{Surface: s, State: st, Config: c, Focus: p}
	d.grabKeysOnRoot()
	return d
}

// Quit is the `quit` action's effect: it flips the flag the loop checks
// after each event, letting it unwind cleanly rather than aborting mid
// sequence (spec §5 cancellation).
func (d *Dispatcher) Quit() { d.quit = true }

// Run is the main loop: one blocking NextEvent call, one dispatch, repeat
// (spec §5). It returns when the quit action has fired.
func (d *Dispatcher) Run() {
	for !d.quit {
		ev, err := d.Surface.NextEvent()
		if err != nil {
			continue
		}
		d.dispatch(ev)
	}
}

// dispatch is the fixed indirection table of spec §4.8: unknown event
// types fall through the switch and are silently ignored.
func (d *Dispatcher) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		d.onMapRequest(e)
	case xproto.UnmapNotifyEvent:
		d.onUnmanageEvent(e.Window, false)
	case xproto.DestroyNotifyEvent:
		d.onUnmanageEvent(e.Window, true)
	case xproto.ConfigureRequestEvent:
		d.onConfigureRequest(e)
	case xproto.ConfigureNotifyEvent:
		if e.Window == d.State.Root {
			d.onRootConfigureNotify()
		}
	case xproto.PropertyNotifyEvent:
		d.onPropertyNotify(e)
	case xproto.ClientMessageEvent:
		d.onClientMessage(e)
	case xproto.EnterNotifyEvent:
		d.onEnterNotify(e)
	case xproto.FocusInEvent:
		d.onFocusIn(e)
	case xproto.ButtonPressEvent:
		d.onButtonPress(e)
	case xproto.KeyPressEvent:
		d.onKeyPress(e)
	case xproto.ExposeEvent:
		d.onExpose(e)
	case xproto.MappingNotifyEvent:
		d.onMappingNotify(e)
	}
}

// onUnmanageEvent looks the window up before delegating to unmanage;
// unmapped/destroyed windows we never managed (our own bar windows, or a
// withdrawal the client initiated itself) are silently ignored.
func (d *Dispatcher) onUnmanageEvent(w xproto.Window, destroyed bool) {
	c := d.State.WindowToClient(w)
	if c == nil {
		return
	}
	d.unmanage(c, destroyed)
}

// onRootConfigureNotify re-reconciles monitor geometry (spec §4.9) and,
// if anything changed, re-arranges every monitor.
func (d *Dispatcher) onRootConfigureNotify() {
	heads := reconcile.Heads(d.Surface)
	px, py := d.pointerPos()
	if reconcile.Reconcile(d.State, d.Config, heads, px, py) {
		for i, m := range d.State.Monitors() {
			m.Arrange()
			d.Focus.Showhide(i)
			d.Focus.Restack(i)
			if d.RequestBarRedraw != nil {
				d.RequestBarRedraw(m)
			}
		}
	}
}

// onMappingNotify refreshes the cached keyboard map and re-grabs keys when
// the mapping actually changed (spec §4.8).
func (d *Dispatcher) onMappingNotify(e xproto.MappingNotifyEvent) {
	if e.Request != xproto.MappingKeyboard && e.Request != xproto.MappingModifier {
		return
	}
	keyMap, modMap := keybind.MapsGet(d.Surface.X)
	keybind.KeyMapSet(d.Surface.X, keyMap)
	keybind.ModMapSet(d.Surface.X, modMap)
	d.grabKeysOnRoot()
}

// onExpose triggers a bar redraw on the final expose of a bar window
// (spec §4.8).
func (d *Dispatcher) onExpose(e xproto.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	for _, m := range d.State.Monitors() {
		if m.BarWindow == e.Window && d.RequestBarRedraw != nil {
			d.RequestBarRedraw(m)
		}
	}
}

func (d *Dispatcher) pointerPos() (int, int) {
	reply, err := xproto.QueryPointer(d.Surface.X.Conn(), d.State.Root).Reply()
	if err != nil {
		return 0, 0
	}
	return int(reply.RootX), int(reply.RootY)
}

// displayBounds returns the union rectangle used as the "whole display"
// bound for interactive geometry rescue (spec §4.1 step 2).
func (d *Dispatcher) displayBounds() geom.Rect {
	var u geom.Rect
	first := true
	for _, m := range d.State.Monitors() {
		if first {
			u = m.ScreenRect
			first = false
			continue
		}
		r := m.ScreenRect
		minX, minY := u.X, u.Y
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		maxX, maxY := u.X+u.W, u.Y+u.H
		if r.X+r.W > maxX {
			maxX = r.X + r.W
		}
		if r.Y+r.H > maxY {
			maxY = r.Y + r.H
		}
		u = geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
	}
	return u
}

// arrange recomputes geometry for monitor m's selected view, pushes the
// new rectangles to X, and restacks (the common post-mutation sequence
// almost every handler ends with).
func (d *Dispatcher) arrange(m *store.Monitor) {
	idx := d.monitorIndex(m)
	m.Arrange()
	for _, c := range m.SelectedView().Clients() {
		border := d.Config.BorderPx
		if c.Fullscreen {
			border = 0
		}
		d.Surface.Configure(c.Window, c.Rect, border)
	}
	if idx >= 0 {
		d.Focus.Showhide(idx)
		d.Focus.Restack(idx)
	}
	if d.RequestBarRedraw != nil {
		d.RequestBarRedraw(m)
	}
}

func (d *Dispatcher) monitorIndex(m *store.Monitor) int {
	for i, mon := range d.State.Monitors() {
		if mon == m {
			return i
		}
	}
	return -1
}

// grabKeysOnRoot installs every configured key binding on the root window
// — dwm grabs keys globally on the root rather than per client.
func (d *Dispatcher) grabKeysOnRoot() {
	d.Surface.UngrabAllKeys(d.State.Root)
	for _, kb := range d.Config.Keys {
		code := keybind.KeysymToKeycode(d.Surface.X, xproto.Keysym(kb.Keysym))
		if code == 0 {
			continue
		}
		d.Surface.GrabKey(d.State.Root, code, kb.Mod)
	}
}
