package events

import (
	"github.com/jezek/xgb/xproto"
)

// onClientMessage handles _NET_WM_STATE / _NET_WM_STATE_FULLSCREEN (spec
// §4.8, invariant 6). The other _NET_WM_STATE values are a non-goal.
func (d *Dispatcher) onClientMessage(e xproto.ClientMessageEvent) {
	if e.Type != d.Surface.Atom("_NET_WM_STATE") {
		return
	}
	c := d.State.WindowToClient(e.Window)
	if c == nil {
		return
	}

	data := e.Data.Data32
	if len(data) < 2 {
		return
	}
	fullscreenAtom := uint32(d.Surface.Atom("_NET_WM_STATE_FULLSCREEN"))
	if data[1] != fullscreenAtom && (len(data) < 3 || data[2] != fullscreenAtom) {
		return
	}

	const (
		netWMStateRemove = 0
		netWMStateAdd    = 1
		netWMStateToggle = 2
	)

	want := !c.Fullscreen
	switch data[0] {
	case netWMStateRemove:
		want = false
	case netWMStateAdd:
		want = true
	case netWMStateToggle:
		want = !c.Fullscreen
	}

	if want {
		c.EnterFullscreen()
		d.Surface.Configure(c.Window, c.Rect, c.Border)
	} else {
		c.LeaveFullscreen()
		d.arrange(c.Monitor)
	}
}
