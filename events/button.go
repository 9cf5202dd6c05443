package events

import (
	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/bar"
	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/store"
)

// barTagWidth and barLayoutWidth are the fixed pixel budgets bar.HitTest
// uses to classify a click; the draw collaborator uses the same constants
// to lay out what it paints, so the two stay in sync without events
// importing draw.
const (
	barTagWidth    = 24
	barLayoutWidth = 32
	barStatusWidth = 120
)

// onButtonPress implements spec §4.8's ButtonPress row: classify the
// click region, then dispatch to the configured binding whose (click,
// button, masked modifiers) match.
func (d *Dispatcher) onButtonPress(e xproto.ButtonPressEvent) {
	var click config.ClickRegion
	var tagArg uint

	switch {
	case e.Event == d.State.Root:
		click = config.ClickRootWin
	default:
		m := d.barMonitor(e.Event)
		if m != nil {
			region, tagIdx := bar.HitTest(m, int(e.EventX), barTagWidth, barLayoutWidth, d.statusWidthFor(m))
			click = region
			if region == config.ClickTagBar {
				tagArg = uint(1) << uint(tagIdx)
			}
			if d.State.SelMon != m {
				d.State.SelMon = m
			}
		} else if c := d.State.WindowToClient(e.Event); c != nil {
			click = config.ClickClientWin
			d.Focus.Focus(c)
		} else {
			return
		}
	}

	mod := store.CleanMask(e.State)
	for _, bb := range d.Config.Buttons {
		if bb.Click != click || bb.Button != e.Detail || store.CleanMask(bb.Mod) != mod {
			continue
		}
		arg := bb.Arg
		if click == config.ClickTagBar {
			arg.UInt = tagArg
		}
		d.execute(bb.Action, arg)
		return
	}
}

func (d *Dispatcher) barMonitor(w xproto.Window) *store.Monitor {
	for _, m := range d.State.Monitors() {
		if m.BarWindow == w {
			return m
		}
	}
	return nil
}

func (d *Dispatcher) statusWidthFor(m *store.Monitor) int {
	if m == d.State.SelMon {
		return barStatusWidth
	}
	return 0
}
