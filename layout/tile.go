package layout

import "github.com/mozzenior/wm/store"

// Tile is the vertical-stack-right-of-master arranger (spec §4.4).
func Tile(m *store.Monitor) {
	v := m.SelectedView()
	clients := v.TiledClients()
	n := len(clients)
	if n == 0 {
		return
	}

	wr := m.WindowRect
	master := clients[0]
	bw := master.Border

	if n == 1 {
		configureTiled(master, wr.X, wr.Y, wr.W-2*bw, wr.H-2*bw)
		return
	}

	mw := round(v.Mfact * float64(wr.W))
	configureTiled(master, wr.X, wr.Y, mw-2*bw, wr.H-2*bw)

	stack := clients[1:]
	sx := wr.X + mw
	sw := wr.W - mw
	arrangeColumn(stack, sx, wr.Y, sw, wr.H)
}

// arrangeColumn lays out clients in a vertical column starting at (x, y)
// with total height h, distributing h's remainder pixels to the leading
// rows (spec §4.4). If the base row height would fall below the bar
// height, every client instead spans the full column — the "collapse"
// rule — rather than producing unreadably thin slivers.
func arrangeColumn(clients []*store.Client, x, y, w, h int) {
	n := len(clients)
	if n == 0 {
		return
	}
	base := h / n
	rem := h % n

	if base < BarHeight {
		for _, c := range clients {
			configureTiled(c, x, y, w-2*c.Border, h-2*c.Border)
		}
		return
	}

	cy := y
	for i, c := range clients {
		rowH := base
		if i < rem {
			rowH++
		}
		configureTiled(c, x, cy, w-2*c.Border, rowH-2*c.Border)
		cy += rowH
	}
}

func configureTiled(c *store.Client, x, y, w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H = x, y, w, h
}
