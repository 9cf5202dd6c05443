package layout

import "github.com/mozzenior/wm/store"

// Mirrortile transposes Tile: the master occupies a top strip, the
// remaining clients spread horizontally below it (spec §4.4).
func Mirrortile(m *store.Monitor) {
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

	mh := round(v.Mfact * float64(wr.H))
	configureTiled(master, wr.X, wr.Y, wr.W-2*bw, mh-2*bw)

	stack := clients[1:]
	sy := wr.Y + mh
	sh := wr.H - mh
	arrangeRow(stack, wr.X, sy, wr.W, sh)
}

// arrangeRow lays out clients in a horizontal row starting at (x, y) with
// total width w, distributing w's remainder pixels to the leading columns
// (spec §4.4), with the same below-bar-height collapse rule as
// arrangeColumn.
func arrangeRow(clients []*store.Client, x, y, w, h int) {
	n := len(clients)
	if n == 0 {
		return
	}
	base := w / n
	rem := w % n

	if base < BarHeight {
		for _, c := range clients {
			configureTiled(c, x, y, w-2*c.Border, h-2*c.Border)
		}
		return
	}

	cx := x
	for i, c := range clients {
		colW := base
		if i < rem {
			colW++
		}
		configureTiled(c, cx, y, colW-2*c.Border, h-2*c.Border)
		cx += colW
	}
}
