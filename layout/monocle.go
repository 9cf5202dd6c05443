package layout

import (
	"fmt"

	"github.com/mozzenior/wm/store"
)

// Monocle stretches every tiled client to the full window rectangle and
// overwrites the layout symbol with "[N]" where N is the view's total
// client count (spec §4.4). Restack leaves only the selected client
// visible: as the focus-stack head it is stacked directly below the bar,
// above every other tiled client.
func Monocle(m *store.Monitor) {
	v := m.SelectedView()
	wr := m.WindowRect

	for _, c := range v.TiledClients() {
		configureTiled(c, wr.X, wr.Y, wr.W-2*c.Border, wr.H-2*c.Border)
	}

	m.LtSymbol = fmt.Sprintf("[%d]", len(v.Clients()))
}
