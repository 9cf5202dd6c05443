package events

import (
	"github.com/jezek/xgb/xproto"

	"github.com/jezek/xgbutil/keybind"

	"github.com/mozzenior/wm/store"
)

// onEnterNotify implements spec §4.8's EnterNotify row: ignore non-normal
// modes and inferior crossings, else focus the crossed client and switch
// monitor if needed.
func (d *Dispatcher) onEnterNotify(e xproto.EnterNotifyEvent) {
	if e.Mode != xproto.NotifyModeNormal || e.Detail == xproto.NotifyDetailInferior {
		return
	}
	c := d.State.WindowToClient(e.Event)
	if c == nil {
		return
	}
	if c.Monitor != d.State.SelMon {
		d.State.SelMon = c.Monitor
	}
	d.Focus.Focus(c)
}

// onFocusIn re-asserts focus on the selected client if something else
// (typically a client returning focus to itself after a grab) stole it
// (spec §4.8).
func (d *Dispatcher) onFocusIn(e xproto.FocusInEvent) {
	sel := d.State.SelMon.SelectedView().Sel
	if sel != nil && e.Event != sel.Window {
		d.Surface.SetInputFocus(sel.Window, xproto.TimeCurrentTime)
	}
}

// onKeyPress translates the keycode to a keysym and dispatches to the
// configured binding whose (keysym, cleaned modifiers) match (spec §4.8).
func (d *Dispatcher) onKeyPress(e xproto.KeyPressEvent) {
	sym := keybind.KeysymGet(d.Surface.X, e.Detail, 0)
	mod := store.CleanMask(e.State)
	for _, kb := range d.Config.Keys {
		if uint32(sym) == kb.Keysym && store.CleanMask(kb.Mod) == mod {
			d.execute(kb.Action, kb.Arg)
			return
		}
	}
}
