package store

import (
	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/geom"
)

// NumViews is the fixed number of tagged workspaces per monitor (spec §3).
const NumViews = 9

// Monitor is one physical head (spec §3): a screen rectangle, the window
// rectangle left over once the bar is subtracted, and nine views.
type Monitor struct {
	ScreenRect geom.Rect // mx, my, mw, mh
	WindowRect geom.Rect // wx, wy, ww, wh = screen minus bar

	BarWindow xproto.Window
	ShowBar   bool
	TopBar    bool

	Views    [NumViews]*View
	SelView  int
	PrevView int // last SelView before the current one, for the view-toggle binding

	// HeadID is the RandR output id this monitor was created from (spec
	// §4.9) — reconcile's stable identity for a physical head across
	// reconfigurations, since screen rectangles alone can't tell "output
	// moved" apart from "output unplugged, a different one plugged in at
	// the same spot".
	HeadID uint32

	LtSymbol string // current layout symbol, e.g. "[]=" or "[3]"

	Next *Monitor // insertion-order link in the global monitor list
}

// NewMonitor builds a monitor whose nine views all start on the default
// layout and master fraction, with the bar occupying the top or bottom
// strip per topBar.
func NewMonitor(screen geom.Rect, defaultMfact float64, defaultLayout *LayoutEntry, showBar, topBar bool, barHeight int) *Monitor {
	m := &Monitor{
		ScreenRect: screen,
		ShowBar:    showBar,
		TopBar:     topBar,
	}
	for i := range m.Views {
		m.Views[i] = NewView(defaultMfact, defaultLayout)
	}
	if defaultLayout != nil {
		m.LtSymbol = defaultLayout.Symbol
	}
	m.UpdateWindowRect(barHeight)
	return m
}

// UpdateWindowRect recomputes WindowRect from ScreenRect, ShowBar, TopBar
// and the configured bar height.
func (m *Monitor) UpdateWindowRect(barHeight int) {
	m.WindowRect = m.ScreenRect
	if !m.ShowBar || barHeight <= 0 {
		return
	}
	if m.TopBar {
		m.WindowRect.Y += barHeight
	}
	m.WindowRect.H -= barHeight
}

// SelectedView returns the monitor's currently selected view.
func (m *Monitor) SelectedView() *View {
	return m.Views[m.SelView]
}

// ViewTiled reports whether the selected view's layout arranges geometry
// (i.e. is not the floating entry).
func (m *Monitor) ViewTiled() bool {
	l := m.SelectedView().Layout
	return l != nil && l.Arrange != nil
}

// Arrange recomputes geometry for the monitor's selected view by calling
// its layout's arranger, then refreshes LtSymbol (monocle overwrites its
// own symbol with "[N]", handled inside the monocle arranger itself).
func (m *Monitor) Arrange() {
	v := m.SelectedView()
	if v.Layout != nil {
		m.LtSymbol = v.Layout.Symbol
	} else {
		m.LtSymbol = "[?]"
	}
	if v.Layout != nil && v.Layout.Arrange != nil {
		v.Layout.Arrange(m)
	}
}

// ClientsInView returns the clients of m's view i only, head first; it does
// not look at other monitors (see State.WindowToClient for global lookups).
func (m *Monitor) ClientsInView(i int) []*Client {
	return m.Views[i].Clients()
}
