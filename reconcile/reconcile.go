// Package reconcile keeps the monitor set in sync with the RandR screen
// layout (spec §4.9): querying crtc geometry, growing or shrinking the
// monitor list, and migrating orphaned clients onto monitor 0.
package reconcile

import (
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"

	log "github.com/sirupsen/logrus"

	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/store"
)

// Head is one connected RandR output: its stable output id plus its
// current screen rectangle (spec §4.9 step 1). The id is what lets
// Reconcile tell "this output's geometry changed" apart from "this output
// was unplugged and a different one plugged in at the same coordinates" —
// two heads can share a rectangle (cloned/mirrored outputs) but never an
// id, grounded on the teacher's XHead.Id (PhysicalHeadsGet).
type Head struct {
	ID   uint32
	Rect geom.Rect
}

// Heads queries every connected RandR output with an active crtc and
// returns its id and screen rectangle, deduplicated by exact (x, y, w, h)
// (spec §4.9 step 1), grounded on the teacher's PhysicalHeadsGet scan of
// GetScreenResources/GetOutputInfo/GetCrtcInfo.
func Heads(s *store.Surface) []Head {
	resources, err := randr.GetScreenResources(s.X.Conn(), s.Root).Reply()
	if err != nil {
		log.WithError(err).Warn("reconcile: get screen resources failed")
		return nil
	}

	seen := map[geom.Rect]bool{}
	heads := []Head{}
	for _, output := range resources.Outputs {
		oinfo, err := randr.GetOutputInfo(s.X.Conn(), output, 0).Reply()
		if err != nil || oinfo.Connection != randr.ConnectionConnected || oinfo.Crtc == 0 {
			continue
		}
		cinfo, err := randr.GetCrtcInfo(s.X.Conn(), oinfo.Crtc, 0).Reply()
		if err != nil || cinfo.Width == 0 || cinfo.Height == 0 {
			continue
		}
		r := geom.Rect{X: int(cinfo.X), Y: int(cinfo.Y), W: int(cinfo.Width), H: int(cinfo.Height)}
		if seen[r] {
			continue
		}
		seen[r] = true
		heads = append(heads, Head{ID: uint32(output), Rect: r})
	}
	return heads
}

// Reconcile implements spec §4.9 steps 2-5. It is called on startup (with
// an empty monitor list) and again on every root ConfigureNotify. Monitors
// are matched to heads by output id rather than list position, so
// unplugging anything but the last-attached head still migrates the right
// monitor's clients (spec §4.9 step 4, and the open-question resolution in
// spec §9). It returns whether anything actually changed, which the caller
// uses to decide whether a full re-arrange is owed.
func Reconcile(st *store.State, c *config.Config, heads []Head, pointerX, pointerY int) bool {
	if len(heads) == 0 {
		return false
	}

	monitors := st.Monitors()
	byID := make(map[uint32]*store.Monitor, len(monitors))
	for _, mon := range monitors {
		byID[mon.HeadID] = mon
	}

	changed := false
	seen := make(map[uint32]bool, len(heads))
	survivors := make([]*store.Monitor, 0, len(heads))

	for _, h := range heads {
		seen[h.ID] = true
		if mon, ok := byID[h.ID]; ok {
			if mon.ScreenRect != h.Rect {
				mon.ScreenRect = h.Rect
				mon.UpdateWindowRect(c.BarHeight)
				mon.Arrange()
				changed = true
			}
			survivors = append(survivors, mon)
			continue
		}
		mon := store.NewMonitor(h.Rect, c.Mfact, c.Layout(0), c.ShowBar, c.TopBar, c.BarHeight)
		mon.HeadID = h.ID
		st.AttachMonitor(mon)
		survivors = append(survivors, mon)
		changed = true
	}

	dst := survivors[0]
	removedSel := false
	for _, mon := range monitors {
		if seen[mon.HeadID] {
			continue
		}
		migrateMonitor(mon, dst)
		if mon == st.SelMon {
			removedSel = true
		}
		st.DetachMonitor(mon)
		changed = true
	}
	if removedSel {
		st.SelMon = dst
	}

	if changed {
		if mon := st.PointerToMonitor(pointerX, pointerY); mon != nil {
			st.SelMon = mon
		}
	}
	return changed
}

// migrateMonitor moves every client on src to dst, keeping each client on
// the same view index it held on src.
func migrateMonitor(src, dst *store.Monitor) {
	for i := 0; i < store.NumViews; i++ {
		for _, c := range src.ClientsInView(i) {
			src.Views[i].Detach(c)
			src.Views[i].DetachStack(c)
			c.Monitor = dst
			dst.Views[i].Attach(c)
			dst.Views[i].AttachStack(c)
		}
	}
}

// BarWindows calls create for every monitor that has no bar window yet and
// stores the returned handle; monitors that already have one are left
// alone. cmd/wm calls it once, at startup, after the initial Reconcile.
func BarWindows(monitors []*store.Monitor, create func(*store.Monitor) xproto.Window) {
	for _, m := range monitors {
		if m.BarWindow == 0 {
			m.BarWindow = create(m)
		}
	}
}
