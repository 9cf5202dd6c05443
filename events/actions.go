package events

import (
	log "github.com/sirupsen/logrus"

	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/store"
)

// execute runs the effect of a single binding (spec §6 "Action dispatch").
func (d *Dispatcher) execute(action config.Action, arg config.Arg) {
	switch action {
	case config.ActionFocusNextClient:
		d.focusStep(1)
	case config.ActionFocusPrevClient:
		d.focusStep(-1)
	case config.ActionFocusNextMonitor:
		d.focusMonitorStep(1)
	case config.ActionFocusPrevMonitor:
		d.focusMonitorStep(-1)
	case config.ActionSendToNextMonitor:
		d.sendToMonitorStep(1)
	case config.ActionSendToPrevMonitor:
		d.sendToMonitorStep(-1)
	case config.ActionToggleBar:
		d.toggleBar()
	case config.ActionSetLayout:
		d.setLayout(arg.Str)
	case config.ActionSetMfact:
		d.setMfact(arg.Float)
	case config.ActionZoom:
		d.zoom()
	case config.ActionView:
		d.view(arg.UInt)
	case config.ActionTag:
		d.tag(arg.UInt)
	case config.ActionKillClient:
		d.killClient()
	case config.ActionToggleFloating:
		d.toggleFloating()
	case config.ActionMoveMouse:
		d.moveMouse()
	case config.ActionResizeMouse:
		d.resizeMouse()
	case config.ActionSpawn:
		if d.Spawn != nil {
			d.Spawn(arg.Argv)
		}
	case config.ActionQuit:
		d.Quit()
	}
}

func (d *Dispatcher) focusStep(dir int) {
	v := d.State.SelMon.SelectedView()
	clients := v.Clients()
	if len(clients) == 0 {
		return
	}
	idx := -1
	for i, c := range clients {
		if c == v.Sel {
			idx = i
			break
		}
	}
	if idx < 0 {
		// The selection is not in this view's list: take the last client
		// rather than stepping from an arbitrary position.
		d.Focus.Focus(clients[len(clients)-1])
		return
	}
	next := (idx + dir + len(clients)) % len(clients)
	d.Focus.Focus(clients[next])
}

func (d *Dispatcher) focusMonitorStep(dir int) {
	mon := d.stepMonitor(dir)
	if mon == nil {
		return
	}
	d.State.SelMon = mon
	d.Focus.Focus(mon.SelectedView().Sel)
}

func (d *Dispatcher) stepMonitor(dir int) *store.Monitor {
	mons := d.State.Monitors()
	if len(mons) < 2 {
		return nil
	}
	idx := 0
	for i, m := range mons {
		if m == d.State.SelMon {
			idx = i
			break
		}
	}
	return mons[(idx+dir+len(mons))%len(mons)]
}

func (d *Dispatcher) sendToMonitorStep(dir int) {
	c := d.State.SelMon.SelectedView().Sel
	mon := d.stepMonitor(dir)
	if c == nil || mon == nil {
		return
	}
	d.sendToMonitor(c, mon)
}

func (d *Dispatcher) sendToMonitor(c *store.Client, mon *store.Monitor) {
	src := c.Monitor
	store.DetachStack(c)
	store.Detach(c)
	c.Monitor = mon
	c.View = mon.SelView
	store.Attach(c)
	store.AttachStack(c)
	d.arrange(src)
	d.arrange(mon)
	d.Focus.Focus(c)
}

func (d *Dispatcher) toggleBar() {
	m := d.State.SelMon
	m.ShowBar = !m.ShowBar
	m.UpdateWindowRect(d.Config.BarHeight)
	if m.BarWindow != 0 {
		if m.ShowBar {
			d.Surface.MapWindow(m.BarWindow)
		} else {
			d.Surface.UnmapWindow(m.BarWindow)
		}
	}
	d.arrange(m)
}

func (d *Dispatcher) setLayout(symbol string) {
	m := d.State.SelMon
	m.SelectedView().SetLayout(d.Config.LayoutBySymbol(symbol))
	d.arrange(m)
}

func (d *Dispatcher) setMfact(delta float64) {
	d.State.SelMon.SelectedView().SetMfact(delta)
	d.arrange(d.State.SelMon)
}

// zoom promotes the selected tiled client to master (dwm's "zoom"): if the
// selection is already master, swap with the next tiled client instead.
func (d *Dispatcher) zoom() {
	v := d.State.SelMon.SelectedView()
	c := v.Sel
	if c == nil || c.Floating || !d.State.SelMon.ViewTiled() {
		return
	}

	tiled := v.TiledClients()
	if len(tiled) == 0 {
		return
	}
	if c == tiled[0] {
		if len(tiled) < 2 {
			return
		}
		c = tiled[1]
	}

	v.Detach(c)
	v.Attach(c)
	d.Focus.Focus(c)
	d.arrange(d.State.SelMon)
}

// view switches the selected monitor's active tag. A zero mask (the
// Mod+Tab binding) toggles back to whichever view was selected before the
// current one, mirroring dwm's view(arg.ui == 0) "last tagset" behavior.
func (d *Dispatcher) view(tagMask uint) {
	m := d.State.SelMon
	var idx int
	if tagMask == 0 {
		idx = m.PrevView
	} else {
		idx = tagIndex(tagMask)
		if idx < 0 {
			return
		}
	}
	if idx == m.SelView {
		return
	}
	m.PrevView = m.SelView
	m.SelView = idx
	d.arrange(m)
	d.Focus.Focus(m.SelectedView().Sel)
}

func (d *Dispatcher) tag(tagMask uint) {
	if tagMask == 0 {
		return
	}
	idx := tagIndex(tagMask)
	if idx < 0 {
		return
	}
	c := d.State.SelMon.SelectedView().Sel
	if c == nil {
		return
	}
	store.DetachStack(c)
	store.Detach(c)
	c.View = idx
	store.Attach(c)
	store.AttachStack(c)
	d.Focus.Focus(nil)
	d.arrange(d.State.SelMon)
}

func tagIndex(mask uint) int {
	for i := 0; i < store.NumViews; i++ {
		if mask == uint(1)<<uint(i) {
			return i
		}
	}
	return -1
}

func (d *Dispatcher) killClient() {
	c := d.State.SelMon.SelectedView().Sel
	if c == nil {
		return
	}
	if d.supportsDelete(c) {
		d.Surface.SendWMDelete(c.Window)
		return
	}
	d.Surface.WithServerGrab(func() {
		d.Surface.KillClient(c.Window)
	})
}

func (d *Dispatcher) supportsDelete(c *store.Client) bool {
	protocols, err := wmProtocols(d.Surface, c.Window)
	if err != nil {
		return false
	}
	for _, p := range protocols {
		if p == "WM_DELETE_WINDOW" {
			return true
		}
	}
	return false
}

func (d *Dispatcher) toggleFloating() {
	c := d.State.SelMon.SelectedView().Sel
	if c == nil || c.Fixed || c.Fullscreen {
		return
	}
	c.Floating = !c.Floating
	log.WithField("floating", c.Floating).Debug("toggle floating")
	d.arrange(c.Monitor)
}
