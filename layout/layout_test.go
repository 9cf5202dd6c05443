package layout

import (
	"testing"

	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/store"
)

func init() {
	BarHeight = 14
}

func newTiledClient(bw int) *store.Client {
	c := store.NewClient(0)
	c.Border = bw
	return c
}

func newTestMonitor(mfact float64, entry *store.LayoutEntry) *store.Monitor {
	m := store.NewMonitor(geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}, mfact, entry, true, true, 14)
	return m
}

func attachAll(m *store.Monitor, clients ...*store.Client) {
	v := m.SelectedView()
	for i := len(clients) - 1; i >= 0; i-- {
		clients[i].Monitor = m
		clients[i].View = 0
		v.Attach(clients[i])
	}
}

func TestTileOneWindow(t *testing.T) {
	entry := &store.LayoutEntry{Symbol: "[]=", Arrange: Tile}
	m := newTestMonitor(0.55, entry)
	w1 := newTiledClient(1)
	attachAll(m, w1)

	m.Arrange()

	want := geom.Rect{X: 0, Y: 14, W: 1918, H: 1064}
	if w1.Rect != want {
		t.Fatalf("got %+v want %+v", w1.Rect, want)
	}
}

func TestTileTwoWindows(t *testing.T) {
	entry := &store.LayoutEntry{Symbol: "[]=", Arrange: Tile}
	m := newTestMonitor(0.55, entry)
	w1, w2 := newTiledClient(1), newTiledClient(1)
	attachAll(m, w1, w2)

	m.Arrange()

	if w1.Rect != (geom.Rect{X: 0, Y: 14, W: 1054, H: 1064}) {
		t.Fatalf("w1 got %+v", w1.Rect)
	}
	if w2.Rect != (geom.Rect{X: 1056, Y: 14, W: 862, H: 1064}) {
		t.Fatalf("w2 got %+v", w2.Rect)
	}
}

func TestTileThreeWindowsRemainder(t *testing.T) {
	entry := &store.LayoutEntry{Symbol: "[]=", Arrange: Tile}
	m := newTestMonitor(0.55, entry)
	w1, w2, w3 := newTiledClient(1), newTiledClient(1), newTiledClient(1)
	attachAll(m, w1, w2, w3)

	m.Arrange()

	if w2.Rect != (geom.Rect{X: 1056, Y: 14, W: 862, H: 531}) {
		t.Fatalf("w2 got %+v", w2.Rect)
	}
	if w3.Rect != (geom.Rect{X: 1056, Y: 547, W: 862, H: 531}) {
		t.Fatalf("w3 got %+v", w3.Rect)
	}
}

func TestMirrortileTwoWindows(t *testing.T) {
	entry := &store.LayoutEntry{Symbol: "TTT", Arrange: Mirrortile}
	m := newTestMonitor(0.55, entry)
	w1, w2 := newTiledClient(1), newTiledClient(1)
	attachAll(m, w1, w2)

	m.Arrange()

	if w1.Rect != (geom.Rect{X: 0, Y: 14, W: 1918, H: 584}) {
		t.Fatalf("w1 got %+v", w1.Rect)
	}
	if w2.Rect != (geom.Rect{X: 0, Y: 600, W: 1918, H: 478}) {
		t.Fatalf("w2 got %+v", w2.Rect)
	}
}

func TestMonocleThreeWindows(t *testing.T) {
	entry := &store.LayoutEntry{Symbol: "[M]", Arrange: Monocle}
	m := newTestMonitor(0.55, entry)
	w1, w2, w3 := newTiledClient(1), newTiledClient(1), newTiledClient(1)
	attachAll(m, w1, w2, w3)

	m.Arrange()

	want := geom.Rect{X: 0, Y: 14, W: 1918, H: 1064}
	for i, c := range []*store.Client{w1, w2, w3} {
		if c.Rect != want {
			t.Fatalf("client %d got %+v want %+v", i, c.Rect, want)
		}
	}
	if m.LtSymbol != "[3]" {
		t.Fatalf("expected symbol [3], got %s", m.LtSymbol)
	}
}

func TestTileIdempotent(t *testing.T) {
	entry := &store.LayoutEntry{Symbol: "[]=", Arrange: Tile}
	m := newTestMonitor(0.55, entry)
	w1, w2, w3 := newTiledClient(1), newTiledClient(1), newTiledClient(1)
	attachAll(m, w1, w2, w3)

	m.Arrange()
	r1, r2, r3 := w1.Rect, w2.Rect, w3.Rect
	m.Arrange()
	if w1.Rect != r1 || w2.Rect != r2 || w3.Rect != r3 {
		t.Fatalf("re-arranging with unchanged inputs must yield identical rectangles")
	}
}

func TestTileWidthsAndHeightsSumExactly(t *testing.T) {
	entry := &store.LayoutEntry{Symbol: "[]=", Arrange: Tile}
	m := newTestMonitor(0.55, entry)
	w1, w2, w3, w4 := newTiledClient(1), newTiledClient(1), newTiledClient(1), newTiledClient(1)
	attachAll(m, w1, w2, w3, w4)

	m.Arrange()

	// Master width + stack width + all borders must equal ww exactly.
	masterSpan := w1.Rect.W + 2*w1.Border
	stackSpan := w2.Rect.W + 2*w2.Border
	if masterSpan+stackSpan != m.WindowRect.W {
		t.Fatalf("widths don't sum to ww: %d + %d != %d", masterSpan, stackSpan, m.WindowRect.W)
	}

	// Stack heights + borders must sum to wh exactly.
	total := 0
	for _, c := range []*store.Client{w2, w3, w4} {
		total += c.Rect.H + 2*c.Border
	}
	if total != m.WindowRect.H {
		t.Fatalf("stack heights don't sum to wh: %d != %d", total, m.WindowRect.H)
	}
}
