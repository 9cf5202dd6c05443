package store

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// mfactMin and mfactMax bound the master-area fraction (invariant 4).
const (
	mfactMin = 0.1
	mfactMax = 0.9
)

// LayoutEntry is one row of the compile-time layout table: a short symbol
// shown on the bar, and the arranger that recomputes geometry for a
// monitor's selected view. A nil Arrange means floating — "no geometry
// changes" (spec §4.4).
type LayoutEntry struct {
	Symbol  string
	Arrange func(*Monitor)
}

// View is one of the nine per-monitor workspaces (spec §3).
type View struct {
	Mfact  float64 // master-area fraction, clamped to [0.1, 0.9]
	head   *Client // client list, newest at head
	stack  *Client // focus stack, most-recently-focused at head
	Sel    *Client // head of stack, or nil
	Layout *LayoutEntry
}

// NewView builds a view with the given default master fraction and layout.
func NewView(mfact float64, layout *LayoutEntry) *View {
	return &View{Mfact: ClampMfact(mfact), Layout: layout}
}

// ClampMfact enforces invariant 4.
func ClampMfact(f float64) float64 {
	if f < mfactMin {
		return mfactMin
	}
	if f > mfactMax {
		return mfactMax
	}
	return f
}

// SetMfact applies a delta, clamping the result to [0.1, 0.9] — deltas that
// would otherwise push it out of range are simply clamped at the rail
// rather than rejected (spec §7: invalid mfact deltas are silently
// ignored).
func (v *View) SetMfact(delta float64) {
	v.Mfact = ClampMfact(v.Mfact + delta)
}

// Clients returns the view's client list, head first (newest first).
func (v *View) Clients() []*Client {
	out := []*Client{}
	for c := v.head; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// Stack returns the focus stack, head first (most-recently-focused first).
func (v *View) Stack() []*Client {
	out := []*Client{}
	for c := v.stack; c != nil; c = c.snext {
		out = append(out, c)
	}
	return out
}

// Attach prepends c to v's client list (newest at head).
func (v *View) Attach(c *Client) {
	c.next = v.head
	v.head = c
}

// Detach removes c from v's client list.
func (v *View) Detach(c *Client) {
	pp := &v.head
	for cur := v.head; cur != nil; cur = cur.next {
		if cur == c {
			*pp = cur.next
			c.next = nil
			return
		}
		pp = &cur.next
	}
}

// AttachStack prepends c to v's focus stack.
func (v *View) AttachStack(c *Client) {
	c.snext = v.stack
	v.stack = c
}

// DetachStack removes c from v's focus stack. If c was selected, the new
// head of the stack becomes selected.
func (v *View) DetachStack(c *Client) {
	pp := &v.stack
	for cur := v.stack; cur != nil; cur = cur.snext {
		if cur == c {
			*pp = cur.snext
			c.snext = nil
			break
		}
		pp = &cur.snext
	}
	if v.Sel == c {
		v.Sel = FocusStackHead(v)
	}
}

// FocusStackHead returns v's focus-stack head, or nil for an empty stack;
// it never walks the list or panics.
func FocusStackHead(v *View) *Client {
	return v.stack
}

// FirstTiled returns the first tiled client in v's list, or nil.
func (v *View) FirstTiled() *Client {
	return NextTiled(v.head)
}

// TiledClients returns every tiled (non-floating) client in display order.
func (v *View) TiledClients() []*Client {
	out := []*Client{}
	for c := NextTiled(v.head); c != nil; c = NextTiled(c.next) {
		out = append(out, c)
	}
	return out
}

// SetLayout installs a new layout entry, used by the set_layout action.
func (v *View) SetLayout(l *LayoutEntry) {
	v.Layout = l
}

func (v *View) String() string {
	return fmt.Sprintf("view(clients=%d, mfact=%.2f)", len(v.Clients()), v.Mfact)
}

// assertInvariants is a debug helper; nothing in the package or its tests
// calls it, so it never runs in the hot path.
func (v *View) assertInvariants() error {
	seen := map[*Client]bool{}
	for c := v.head; c != nil; c = c.next {
		if seen[c] {
			return fmt.Errorf("client list has a cycle")
		}
		seen[c] = true
	}
	if v.Sel != nil && v.Sel != v.stack {
		log.Warn("view selected client is not the stack head")
		return fmt.Errorf("invariant 2 violated: selected != stack head")
	}
	if v.Mfact < mfactMin || v.Mfact > mfactMax {
		return fmt.Errorf("invariant 4 violated: mfact out of range")
	}
	return nil
}
