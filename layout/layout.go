// Package layout implements the four arrangers named in spec §4.4: tile,
// mirrortile, monocle and floating. Each receives a monitor and recomputes
// geometry for its selected view's tiled clients; non-tiled (floating)
// clients are skipped, following store.NextTiled.
package layout

import (
	"math"

	"github.com/mozzenior/wm/store"
)

// BarHeight is read by Tile/Mirrortile to decide whether stack rows/columns
// have collapsed to a single row/column (spec §4.4). It's set once at
// startup from the compiled-in configuration; layout has no other
// dependency on config to avoid an import cycle (config's layout table
// references these arrangers).
var BarHeight = 0

// Default registers the four layouts in the order dwm-derived configs use:
// tile first (so it's the startup default), then mirrortile, monocle, and
// floating last with a nil arranger.
func Default() []*store.LayoutEntry {
	return []*store.LayoutEntry{
		{Symbol: "[]=", Arrange: Tile},
		{Symbol: "TTT", Arrange: Mirrortile},
		{Symbol: "[M]", Arrange: Monocle},
		{Symbol: "><>", Arrange: nil},
	}
}

func round(f float64) int {
	return int(math.Round(f))
}
