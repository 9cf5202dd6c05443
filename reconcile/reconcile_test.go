package reconcile

import (
	"testing"

	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/store"
)

func newState() (*store.State, *config.Config) {
	return store.NewState(0, "wm-test"), config.Default()
}

func TestReconcileGrowsFromEmpty(t *testing.T) {
	st, c := newState()
	heads := []Head{{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}}}

	changed := Reconcile(st, c, heads, 0, 0)

	if !changed {
		t.Fatal("expected changed=true populating an empty monitor list")
	}
	mons := st.Monitors()
	if len(mons) != 1 {
		t.Fatalf("got %d monitors, want 1", len(mons))
	}
	if mons[0].ScreenRect != heads[0].Rect {
		t.Fatalf("got rect %+v, want %+v", mons[0].ScreenRect, heads[0].Rect)
	}
	if mons[0].HeadID != 1 {
		t.Fatalf("got HeadID %d, want 1", mons[0].HeadID)
	}
}

func TestReconcileNoopWhenUnchanged(t *testing.T) {
	st, c := newState()
	heads := []Head{{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}}}
	Reconcile(st, c, heads, 0, 0)

	changed := Reconcile(st, c, heads, 0, 0)
	if changed {
		t.Fatal("expected changed=false when head geometry is unchanged")
	}
}

func TestReconcileGrowsSecondHead(t *testing.T) {
	st, c := newState()
	Reconcile(st, c, []Head{{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}}}, 0, 0)

	heads := []Head{
		{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{ID: 2, Rect: geom.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
	}
	changed := Reconcile(st, c, heads, 0, 0)
	if !changed {
		t.Fatal("expected changed=true adding a second monitor")
	}
	if len(st.Monitors()) != 2 {
		t.Fatalf("got %d monitors, want 2", len(st.Monitors()))
	}
}

func TestReconcileShrinkMigratesClients(t *testing.T) {
	st, c := newState()
	Reconcile(st, c, []Head{
		{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{ID: 2, Rect: geom.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
	}, 0, 0)

	mons := st.Monitors()
	second := mons[1]
	cl := store.NewClient(42)
	cl.Monitor = second
	cl.View = 3
	second.Views[3].Attach(cl)
	second.Views[3].AttachStack(cl)

	st.SelMon = second

	changed := Reconcile(st, c, []Head{{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}}}, 0, 0)
	if !changed {
		t.Fatal("expected changed=true removing a monitor")
	}

	remaining := st.Monitors()
	if len(remaining) != 1 {
		t.Fatalf("got %d monitors, want 1", len(remaining))
	}
	if cl.Monitor != remaining[0] {
		t.Fatal("client should have migrated onto the surviving monitor")
	}
	found := false
	for _, rc := range remaining[0].ClientsInView(3) {
		if rc == cl {
			found = true
		}
	}
	if !found {
		t.Fatal("migrated client should keep its original view index")
	}
	if st.SelMon != remaining[0] {
		t.Fatal("selected monitor should fall back to the surviving monitor")
	}
}

// TestReconcileShrinkByIdentityNotPosition guards the bug a pure
// positional (monitors[i] <-> heads[i]) match would hit: unplugging the
// *middle* of three heads must migrate the middle monitor's clients, not
// whichever monitor happens to be third in the list.
func TestReconcileShrinkByIdentityNotPosition(t *testing.T) {
	st, c := newState()
	Reconcile(st, c, []Head{
		{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{ID: 2, Rect: geom.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
		{ID: 3, Rect: geom.Rect{X: 3840, Y: 0, W: 1920, H: 1080}},
	}, 0, 0)

	mons := st.Monitors()
	var first, middle, last *store.Monitor
	for _, m := range mons {
		switch m.HeadID {
		case 1:
			first = m
		case 2:
			middle = m
		case 3:
			last = m
		}
	}
	if first == nil || middle == nil || last == nil {
		t.Fatalf("expected monitors for head ids 1, 2 and 3, got %+v", mons)
	}

	clMiddle := store.NewClient(100)
	clMiddle.Monitor = middle
	clMiddle.View = 0
	middle.Views[0].Attach(clMiddle)
	middle.Views[0].AttachStack(clMiddle)

	clLast := store.NewClient(200)
	clLast.Monitor = last
	clLast.View = 0
	last.Views[0].Attach(clLast)
	last.Views[0].AttachStack(clLast)

	// Output 2 (the middle head) disconnects; outputs 1 and 3 remain.
	Reconcile(st, c, []Head{
		{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{ID: 3, Rect: geom.Rect{X: 3840, Y: 0, W: 1920, H: 1080}},
	}, 0, 0)

	remaining := st.Monitors()
	if len(remaining) != 2 {
		t.Fatalf("got %d monitors, want 2", len(remaining))
	}
	if last.HeadID != 3 || last.ScreenRect.X != 3840 {
		t.Fatalf("head 3's monitor must survive with its own geometry, got %+v", last)
	}
	if clLast.Monitor != last {
		t.Fatal("head 3's client must stay on head 3's monitor, not be migrated away")
	}
	if clMiddle.Monitor != first {
		t.Fatal("head 2's client must migrate onto the surviving monitor")
	}
}

func TestReconcileEmptyHeadsIsNoop(t *testing.T) {
	st, c := newState()
	Reconcile(st, c, []Head{{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}}}, 0, 0)

	changed := Reconcile(st, c, nil, 0, 0)
	if changed {
		t.Fatal("expected changed=false for an empty heads list")
	}
	if len(st.Monitors()) != 1 {
		t.Fatal("monitor list should be left untouched when heads is empty")
	}
}

func TestBarWindowsOnlyCreatesMissing(t *testing.T) {
	st, c := newState()
	Reconcile(st, c, []Head{
		{ID: 1, Rect: geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{ID: 2, Rect: geom.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
	}, 0, 0)

	mons := st.Monitors()
	mons[0].BarWindow = 7

	calls := 0
	BarWindows(mons, func(m *store.Monitor) xproto.Window {
		calls++
		return 99
	})

	if calls != 1 {
		t.Fatalf("got %d create calls, want 1 (only the monitor missing a bar window)", calls)
	}
	if mons[0].BarWindow != 7 {
		t.Fatal("existing bar window must not be overwritten")
	}
	if mons[1].BarWindow != 99 {
		t.Fatal("missing bar window should be assigned the created id")
	}
}
