package store

import (
	"testing"

	"github.com/mozzenior/wm/geom"
)

func testLayout() *LayoutEntry {
	return &LayoutEntry{Symbol: "[]=", Arrange: nil}
}

func TestWindowToClientScansAllMonitors(t *testing.T) {
	s := NewState(0, "wm-0.1")
	m := NewMonitor(geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}, 0.55, testLayout(), true, true, 14)
	s.AttachMonitor(m)

	c := NewClient(42)
	c.Monitor = m
	c.View = 0
	Attach(c)

	if got := s.WindowToClient(42); got != c {
		t.Fatalf("expected to find client by window id")
	}
	if got := s.WindowToClient(999); got != nil {
		t.Fatalf("expected nil for unknown window, got %v", got)
	}
}

func TestPointerToMonitorFallsBackToSelected(t *testing.T) {
	s := NewState(0, "wm-0.1")
	m1 := NewMonitor(geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}, 0.55, testLayout(), true, true, 14)
	m2 := NewMonitor(geom.Rect{X: 1920, Y: 0, W: 1920, H: 1080}, 0.55, testLayout(), true, true, 14)
	s.AttachMonitor(m1)
	s.AttachMonitor(m2)
	s.SelMon = m2

	if got := s.PointerToMonitor(100, 100); got != m1 {
		t.Fatalf("expected m1 to own (100,100)")
	}
	if got := s.PointerToMonitor(5000, 100); got != m2 {
		t.Fatalf("expected fallback to selected monitor for out-of-range point")
	}
}

func TestAttachDetachMonitorPreservesOrder(t *testing.T) {
	s := NewState(0, "wm-0.1")
	m1 := NewMonitor(geom.Rect{W: 1, H: 1}, 0.5, testLayout(), true, true, 0)
	m2 := NewMonitor(geom.Rect{W: 1, H: 1}, 0.5, testLayout(), true, true, 0)
	m3 := NewMonitor(geom.Rect{W: 1, H: 1}, 0.5, testLayout(), true, true, 0)
	s.AttachMonitor(m1)
	s.AttachMonitor(m2)
	s.AttachMonitor(m3)

	s.DetachMonitor(m2)
	got := s.Monitors()
	if len(got) != 2 || got[0] != m1 || got[1] != m3 {
		t.Fatalf("expected [m1, m3] after detaching m2, got %v", got)
	}
}

func TestMonitorWindowRectSubtractsBar(t *testing.T) {
	m := NewMonitor(geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}, 0.55, testLayout(), true, true, 14)
	if m.WindowRect != (geom.Rect{X: 0, Y: 14, W: 1920, H: 1066}) {
		t.Fatalf("unexpected window rect: %+v", m.WindowRect)
	}
}
