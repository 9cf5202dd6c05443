package geom

import "testing"

func TestApplySizeHintsMinimumDimensions(t *testing.T) {
	cur := Rect{0, 0, 100, 100}
	proposed := Rect{0, 0, 0, -5}
	screen := Rect{0, 0, 1920, 1080}

	got, changed := ApplySizeHints(cur, proposed, Hints{}, screen, screen, Options{})
	if got.W != 1 || got.H != 1 {
		t.Fatalf("want 1x1 floor, got %dx%d", got.W, got.H)
	}
	if !changed {
		t.Fatalf("expected changed=true")
	}
}

func TestApplySizeHintsBarHeightFloor(t *testing.T) {
	cur := Rect{0, 0, 100, 100}
	proposed := Rect{0, 0, 5, 5}
	screen := Rect{0, 0, 1920, 1080}

	got, _ := ApplySizeHints(cur, proposed, Hints{}, screen, screen, Options{BarHeight: 14})
	if got.W != 14 || got.H != 14 {
		t.Fatalf("want 14x14 floor, got %dx%d", got.W, got.H)
	}
}

func TestApplySizeHintsIncrementSnapping(t *testing.T) {
	cur := Rect{0, 0, 100, 100}
	proposed := Rect{0, 0, 205, 100}
	hints := Hints{BaseW: 10, BaseH: 10, IncW: 20, IncH: 20, MinW: 10, MinH: 10}
	screen := Rect{0, 0, 1920, 1080}

	got, _ := ApplySizeHints(cur, proposed, hints, screen, screen, Options{Floating: true})
	// (205-10)=195, snapped down to a multiple of 20 -> 180, +10 base = 190.
	if got.W != 190 {
		t.Fatalf("want w=190, got %d", got.W)
	}
}

func TestApplySizeHintsIgnoredWhenTiledAndNotRespecting(t *testing.T) {
	cur := Rect{0, 0, 100, 100}
	proposed := Rect{0, 0, 205, 205}
	hints := Hints{IncW: 20, IncH: 20, MinW: 50, MinH: 50}
	screen := Rect{0, 0, 1920, 1080}

	got, _ := ApplySizeHints(cur, proposed, hints, screen, screen, Options{Floating: false, RespectResizeHints: false})
	if got.W != 205 || got.H != 205 {
		t.Fatalf("tiled client without resize_hints should pass through size unmodified, got %dx%d", got.W, got.H)
	}
}

func TestApplySizeHintsAspectClamp(t *testing.T) {
	cur := Rect{0, 0, 100, 100}
	proposed := Rect{0, 0, 200, 50}
	hints := Hints{MinAspect: 1.0, MaxAspect: 1.0}
	screen := Rect{0, 0, 1920, 1080}

	got, _ := ApplySizeHints(cur, proposed, hints, screen, screen, Options{Floating: true})
	if got.H != got.W {
		t.Fatalf("want square aspect enforced, got %dx%d", got.W, got.H)
	}
}

func TestHintsFixed(t *testing.T) {
	h := Hints{MinW: 300, MinH: 200, MaxW: 300, MaxH: 200}
	if !h.Fixed() {
		t.Fatalf("expected Fixed() true when min==max")
	}
	if (Hints{}).Fixed() {
		t.Fatalf("zero hints must not report fixed")
	}
}
