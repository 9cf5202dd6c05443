package bar

import (
	"testing"

	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/store"
)

func newTestMonitor() *store.Monitor {
	return store.NewMonitor(geom.Rect{X: 0, Y: 0, W: 900, H: 1000}, 0.55, &store.LayoutEntry{Symbol: "[]="}, true, true, 14)
}

func attach(m *store.Monitor, view int, c *store.Client) {
	c.Monitor = m
	c.View = view
	m.Views[view].Attach(c)
}

func TestBuildTagStates(t *testing.T) {
	c := config.Default()
	m := newTestMonitor()

	occupied := store.NewClient(1)
	attach(m, 2, occupied)

	urgentClient := store.NewClient(2)
	urgentClient.Urgent = true
	attach(m, 3, urgentClient)

	focused := store.NewClient(3)
	attach(m, 0, focused)
	m.Views[0].Sel = focused

	model := Build(m, c, true, "status text", 24, 32)

	if model.Tags[2].State != TagOccupied {
		t.Fatalf("view 2: got %v, want TagOccupied", model.Tags[2].State)
	}
	if model.Tags[3].State != TagUrgent {
		t.Fatalf("view 3: got %v, want TagUrgent", model.Tags[3].State)
	}
	if model.Tags[0].State != TagSelected {
		t.Fatalf("view 0: got %v, want TagSelected", model.Tags[0].State)
	}
	if model.Tags[1].State != TagEmpty {
		t.Fatalf("view 1: got %v, want TagEmpty", model.Tags[1].State)
	}
	if model.StatusText != "status text" {
		t.Fatalf("selected monitor should show status text, got %q", model.StatusText)
	}
}

func TestBuildStatusTextHiddenOnUnselectedMonitor(t *testing.T) {
	c := config.Default()
	m := newTestMonitor()

	model := Build(m, c, false, "status text", 24, 32)

	if model.StatusText != "" {
		t.Fatalf("unselected monitor must not show status text, got %q", model.StatusText)
	}
}

func TestBuildTitleKind(t *testing.T) {
	c := config.Default()
	m := newTestMonitor()

	cl := store.NewClient(1)
	cl.Title = "xterm"
	cl.Floating = true
	attach(m, 0, cl)
	m.Views[0].Sel = cl

	model := Build(m, c, true, "", 24, 32)

	if model.Title != "xterm" {
		t.Fatalf("got title %q, want xterm", model.Title)
	}
	if model.TitleKind != TitleFloating {
		t.Fatalf("got kind %v, want TitleFloating", model.TitleKind)
	}
}

func TestHitTestTagBar(t *testing.T) {
	m := newTestMonitor()
	region, idx := HitTest(m, 50, 24, 32, 0)
	if region != config.ClickTagBar {
		t.Fatalf("got region %v, want ClickTagBar", region)
	}
	if idx != 2 {
		t.Fatalf("got tag index %d, want 2", idx)
	}
}

func TestHitTestLayoutSymbol(t *testing.T) {
	m := newTestMonitor()
	tagsWidth := 24 * store.NumViews
	region, _ := HitTest(m, tagsWidth+5, 24, 32, 0)
	if region != config.ClickLayoutSymbol {
		t.Fatalf("got region %v, want ClickLayoutSymbol", region)
	}
}

func TestHitTestStatusText(t *testing.T) {
	m := newTestMonitor()
	region, _ := HitTest(m, m.ScreenRect.W-10, 24, 32, 120)
	if region != config.ClickStatusText {
		t.Fatalf("got region %v, want ClickStatusText", region)
	}
}

func TestHitTestWinTitle(t *testing.T) {
	m := newTestMonitor()
	tagsWidth := 24 * store.NumViews
	region, _ := HitTest(m, tagsWidth+32+5, 24, 32, 0)
	if region != config.ClickWinTitle {
		t.Fatalf("got region %v, want ClickWinTitle", region)
	}
}
