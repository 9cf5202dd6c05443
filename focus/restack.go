package focus

import (
	"github.com/jezek/xgb/xproto"
)

// Restack implements spec §4.5: lower every tiled client below the bar
// window in focus-stack order, then raise the selected client if it's
// floating or the monitor's layout is floating. Any EnterNotify generated
// as a side effect of the reconfigures is drained so it can't falsely
// steal focus.
func (p *Policy) Restack(mIdx int) {
	monitors := p.State.Monitors()
	if mIdx < 0 || mIdx >= len(monitors) {
		return
	}
	m := monitors[mIdx]
	v := m.SelectedView()

	if v.Sel != nil {
		if v.Sel.Floating || !m.ViewTiled() {
			p.Surface.ConfigureStack(v.Sel.Window, 0, xproto.StackModeAbove)
		}
	}

	if m.ViewTiled() {
		sibling := m.BarWindow
		for _, c := range v.Stack() {
			if c.Floating {
				continue
			}
			p.Surface.ConfigureStack(c.Window, sibling, xproto.StackModeBelow)
			sibling = c.Window
		}
	}

	p.Surface.DrainEnterNotify()
}
