package store

import (
	"testing"

	"github.com/mozzenior/wm/geom"
)

func newTestClient(w int) *Client {
	c := NewClient(0)
	c.Window = 0
	_ = w
	return c
}

func TestAttachDetachIsIdentityOnMembership(t *testing.T) {
	v := NewView(0.5, nil)
	a, b, c := newTestClient(1), newTestClient(2), newTestClient(3)

	v.Attach(a)
	v.Attach(b)
	v.Attach(c)

	want := []*Client{c, b, a}
	got := v.Clients()
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %p want %p", i, got[i], want[i])
		}
	}

	// attach ∘ detach = id on membership: detach b, then re-attach — b is
	// back in the list (at the head, since Attach always prepends).
	v.Detach(b)
	if len(v.Clients()) != 2 {
		t.Fatalf("expected 2 clients after detach")
	}
	v.Attach(b)
	if len(v.Clients()) != 3 {
		t.Fatalf("expected 3 clients after re-attach")
	}
}

func TestDetachStackPromotesNewHead(t *testing.T) {
	v := NewView(0.5, nil)
	a, b := newTestClient(1), newTestClient(2)
	v.AttachStack(a)
	v.AttachStack(b)
	v.Sel = b

	v.DetachStack(b)
	if v.Sel != a {
		t.Fatalf("expected Sel promoted to remaining stack head")
	}
}

func TestDetachStackEmptySelectsNil(t *testing.T) {
	v := NewView(0.5, nil)
	a := newTestClient(1)
	v.AttachStack(a)
	v.Sel = a

	v.DetachStack(a)
	if v.Sel != nil {
		t.Fatalf("expected nil Sel on empty stack, got %v", v.Sel)
	}
	if FocusStackHead(v) != nil {
		t.Fatalf("expected nil focus stack head")
	}
}

func TestMfactClamped(t *testing.T) {
	v := NewView(0.5, nil)
	v.SetMfact(-10)
	if v.Mfact != mfactMin {
		t.Fatalf("want clamp to %v, got %v", mfactMin, v.Mfact)
	}
	v.SetMfact(10)
	if v.Mfact != mfactMax {
		t.Fatalf("want clamp to %v, got %v", mfactMax, v.Mfact)
	}
}

func TestNextTiledSkipsFloating(t *testing.T) {
	v := NewView(0.5, nil)
	a, b, c := newTestClient(1), newTestClient(2), newTestClient(3)
	b.Floating = true
	v.Attach(c)
	v.Attach(b)
	v.Attach(a)

	first := v.FirstTiled()
	if first != a {
		t.Fatalf("expected first tiled client to be the head when head isn't floating")
	}

	tiled := v.TiledClients()
	if len(tiled) != 2 || tiled[0] != a || tiled[1] != c {
		t.Fatalf("expected [a, c] tiled clients, got %v", tiled)
	}
}

func TestFixedImpliesFloating(t *testing.T) {
	c := newTestClient(1)
	c.ApplyHints(geom.Hints{MinW: 100, MinH: 100, MaxW: 100, MaxH: 100})
	if !c.Fixed || !c.Floating {
		t.Fatalf("fixed client must also be floating (invariant 5)")
	}
}
