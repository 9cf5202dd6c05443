// Package store owns the window-manager's data model: clients, views,
// monitors, and the global state that ties them together, plus the X
// connection itself. Mutation only ever happens on the main event-loop
// goroutine (see package events); nothing here takes a lock.
package store

import (
	"time"

	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/geom"
)

// maxTitle bounds Client.Title to the size the bar is willing to render; X
// itself has no such limit on _NET_WM_NAME.
const maxTitle = 256

// Client is one managed top-level window (spec §3).
type Client struct {
	Window xproto.Window // handle from the X surface

	Class    string // WM_CLASS res_class, for logging only
	Instance string // WM_CLASS res_name, for logging only
	Title    string // bounded, UTF-8 best-effort

	Rect    geom.Rect // current geometry
	OldRect geom.Rect // geometry saved across fullscreen
	Border  int       // current border width
	OldBw   int       // border width saved across fullscreen

	Hints geom.Hints // ICCCM size hints

	Fixed       bool // min == max in both dimensions
	Floating    bool
	Urgent      bool
	WasFloating bool // floating state saved across fullscreen
	Fullscreen  bool

	Monitor *Monitor
	View    int // 0..8, index into Monitor.Views

	next  *Client // next in Monitor.Views[View].clients (display order)
	snext *Client // next in Monitor.Views[View].stack (focus order)

	Created time.Time // for logging only
	dirty   bool      // bar redraw owed
}

// NewClient builds a Client from a freshly managed window. Geometry, hints
// and flags are filled in by the caller (Manage) once read from X;
// NewClient only establishes identity and bookkeeping.
func NewClient(w xproto.Window) *Client {
	return &Client{
		Window:  w,
		Created: time.Now(),
		dirty:   true,
	}
}

// SetTitle truncates to maxTitle bytes, matching the bar's display budget.
func (c *Client) SetTitle(s string) {
	if len(s) > maxTitle {
		s = s[:maxTitle]
	}
	if c.Title != s {
		c.Title = s
		c.dirty = true
	}
}

// ApplyHints refreshes size hints and the derived Fixed flag. A client
// whose hints make it Fixed is forced Floating too (invariant 5).
func (c *Client) ApplyHints(h geom.Hints) {
	c.Hints = h
	c.Fixed = h.Fixed()
	if c.Fixed {
		c.Floating = true
	}
}

// MarkDirty sets the flag IsDirty reports. The bar redraw path does not
// consult it: callers request a redraw themselves.
func (c *Client) MarkDirty() {
	c.dirty = true
}

func (c *Client) IsDirty() bool {
	return c.dirty
}

func (c *Client) ClearDirty() {
	c.dirty = false
}

// EnterFullscreen saves geometry/border/floating state and stretches the
// client to the monitor's screen rectangle (invariant 6).
func (c *Client) EnterFullscreen() {
	if c.Fullscreen {
		return
	}
	c.OldRect = c.Rect
	c.OldBw = c.Border
	c.WasFloating = c.Floating

	c.Floating = true
	c.Fullscreen = true
	c.Border = 0
	if c.Monitor != nil {
		c.Rect = c.Monitor.ScreenRect
	}
}

// LeaveFullscreen restores exactly what EnterFullscreen saved.
func (c *Client) LeaveFullscreen() {
	if !c.Fullscreen {
		return
	}
	c.Rect = c.OldRect
	c.Border = c.OldBw
	c.Floating = c.WasFloating
	c.Fullscreen = false
}

// NextTiled walks the client list starting at c, skipping floating clients,
// and returns the first tiled one (spec §4.3).
func NextTiled(c *Client) *Client {
	for c != nil && c.Floating {
		c = c.next
	}
	return c
}
