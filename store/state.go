package store

import (
	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/geom"
)

// State is the engine's global (spec §3 "Global"): the ordered monitor
// list, the selected monitor, the root window, and the status text read
// from the root's WM_NAME. It is owned by the main event-loop goroutine;
// nothing here is safe for concurrent mutation, matching the
// single-threaded, cooperative scheduling model (spec §5).
type State struct {
	Mons   *Monitor // head of the monitor linked list, insertion order
	SelMon *Monitor

	Root       xproto.Window
	StatusText string // bounded 256 bytes, default "<name>-<version>"

	clientCount int // not maintained; WindowToClient does not read it
}

// NewState creates an empty global with no monitors; the reconciler
// populates Mons on startup.
func NewState(root xproto.Window, defaultStatus string) *State {
	return &State{Root: root, StatusText: defaultStatus}
}

// Monitors returns every monitor in insertion order.
func (s *State) Monitors() []*Monitor {
	out := []*Monitor{}
	for m := s.Mons; m != nil; m = m.Next {
		out = append(out, m)
	}
	return out
}

// AttachMonitor appends m to the end of the monitor list, preserving
// insertion order (spec §3: "insertion order by Xinerama index").
func (s *State) AttachMonitor(m *Monitor) {
	if s.Mons == nil {
		s.Mons = m
		return
	}
	last := s.Mons
	for last.Next != nil {
		last = last.Next
	}
	last.Next = m
}

// DetachMonitor removes m from the monitor list.
func (s *State) DetachMonitor(m *Monitor) {
	if s.Mons == m {
		s.Mons = m.Next
		m.Next = nil
		return
	}
	for cur := s.Mons; cur != nil; cur = cur.Next {
		if cur.Next == m {
			cur.Next = m.Next
			m.Next = nil
			return
		}
	}
}

// WindowToClient linearly scans every monitor × view × client list (spec
// §4.2). Client counts are small (tens), so this is acceptable; a map
// keyed by window handle would be a premature optimization for a registry
// this size.
func (s *State) WindowToClient(w xproto.Window) *Client {
	for _, m := range s.Monitors() {
		for _, v := range m.Views {
			for c := v.Clients(); len(c) > 0; {
				if c[0].Window == w {
					return c[0]
				}
				c = c[1:]
			}
		}
	}
	return nil
}

// WindowToMonitor resolves a window to its owning monitor: the root maps
// to whichever monitor is under the pointer, a bar window maps to the
// monitor it belongs to, and anything else is resolved via the client
// registry (spec §4.2).
func (s *State) WindowToMonitor(w xproto.Window, pointerX, pointerY int) *Monitor {
	if w == s.Root {
		return s.PointerToMonitor(pointerX, pointerY)
	}
	for _, m := range s.Monitors() {
		if m.BarWindow == w {
			return m
		}
	}
	if c := s.WindowToClient(w); c != nil {
		return c.Monitor
	}
	return nil
}

// PointerToMonitor returns the first monitor whose window rectangle
// contains (x, y), falling back to the selected monitor.
func (s *State) PointerToMonitor(x, y int) *Monitor {
	for _, m := range s.Monitors() {
		if m.WindowRect.Contains(x, y) {
			return m
		}
	}
	return s.SelMon
}

// Attach places c at the head of its monitor's view client list (spec
// §4.3).
func Attach(c *Client) {
	c.Monitor.Views[c.View].Attach(c)
}

// Detach removes c from its monitor's view client list.
func Detach(c *Client) {
	c.Monitor.Views[c.View].Detach(c)
}

// AttachStack places c at the head of its monitor's view focus stack.
func AttachStack(c *Client) {
	c.Monitor.Views[c.View].AttachStack(c)
}

// DetachStack removes c from its monitor's view focus stack.
func DetachStack(c *Client) {
	c.Monitor.Views[c.View].DetachStack(c)
}

// ClampToMonitor bounds a rectangle's top-left corner so the window remains
// at least partially reachable on m, used by manage for windows that start
// out floating.
func ClampToMonitor(r geom.Rect, m *Monitor) geom.Rect {
	if r.X > m.WindowRect.X+m.WindowRect.W {
		r.X = m.WindowRect.X + m.WindowRect.W - r.W
	}
	if r.Y > m.WindowRect.Y+m.WindowRect.H {
		r.Y = m.WindowRect.Y + m.WindowRect.H - r.H
	}
	if r.X+r.W < m.WindowRect.X {
		r.X = m.WindowRect.X
	}
	if r.Y+r.H < m.WindowRect.Y {
		r.Y = m.WindowRect.Y
	}
	return r
}
