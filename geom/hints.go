package geom

import "math"

// Hints mirrors the ICCCM WM_NORMAL_HINTS fields the layout engine cares
// about. A zero Max{W,H} means "no maximum", matching XSizeHints semantics
// where PMaxSize is simply absent.
type Hints struct {
	BaseW, BaseH         int
	IncW, IncH           int
	MinW, MinH           int
	MaxW, MaxH           int
	MinAspect, MaxAspect float64 // 0 means unset
}

// Options carries the per-call policy knobs from apply_size_hints (spec
// §4.1): whether the move/resize is an interactive drag (bounds against the
// whole display rather than just the owning monitor), whether the client is
// floating, the compile-time resize_hints flag, and the bar height used as
// a floor so a window can never be resized underneath the bar.
type Options struct {
	Interactive        bool
	Floating           bool
	RespectResizeHints bool
	BarHeight          int
}

// ApplySizeHints clamps proposed against the ICCCM constraints in hints and
// reports whether the result differs from cur. It never mutates its
// arguments; the caller decides whether to issue a configure for the
// returned rectangle.
func ApplySizeHints(cur, proposed Rect, hints Hints, monitorScreen, displayBounds Rect, opts Options) (Rect, bool) {
	r := proposed

	// 1. Enforce w >= 1, h >= 1.
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}

	// 2. Off-screen rescue: interactive drags are bounded against the whole
	// display, everything else against the owning monitor's screen rect.
	bound := monitorScreen
	if opts.Interactive {
		bound = displayBounds
	}
	if r.X > bound.X+bound.W {
		r.X = bound.X + bound.W - r.W
	}
	if r.Y > bound.Y+bound.H {
		r.Y = bound.Y + bound.H - r.H
	}
	if r.X+r.W < bound.X {
		r.X = bound.X
	}
	if r.Y+r.H < bound.Y {
		r.Y = bound.Y
	}

	// 3. Enforce w >= bar_height, h >= bar_height.
	if opts.BarHeight > 0 {
		if r.W < opts.BarHeight {
			r.W = opts.BarHeight
		}
		if r.H < opts.BarHeight {
			r.H = opts.BarHeight
		}
	}

	// 4. ICCCM 4.1.2.3, only when floating or configured to respect hints
	// on tiled windows too.
	if opts.Floating || opts.RespectResizeHints {
		r = applyNormalHints(r, hints)
	}

	changed := r.X != cur.X || r.Y != cur.Y || r.W != cur.W || r.H != cur.H
	return r, changed
}

func applyNormalHints(r Rect, h Hints) Rect {
	baseIsMin := h.BaseW == h.MinW && h.BaseH == h.MinH

	w, ht := r.W, r.H
	if !baseIsMin {
		w -= h.BaseW
		ht -= h.BaseH
	}

	// 4b. Aspect ratio: mina <= h/w <= maxa, rounded to the nearest integer
	// pixel adjustment.
	if h.MinAspect > 0 && h.MaxAspect > 0 && w > 0 && ht > 0 {
		aspect := float64(ht) / float64(w)
		if aspect < h.MinAspect {
			ht = int(math.Round(float64(w) * h.MinAspect))
		} else if aspect > h.MaxAspect {
			w = int(math.Round(float64(ht) / h.MaxAspect))
		}
	}

	// 4c. Subtract base if base==min, snap down to increment multiples, add
	// base back.
	if baseIsMin {
		w -= h.BaseW
		ht -= h.BaseH
	}
	if h.IncW > 0 {
		w -= w % h.IncW
	}
	if h.IncH > 0 {
		ht -= ht % h.IncH
	}
	w += h.BaseW
	ht += h.BaseH

	// 4d. Clamp to [min, max] per axis; max==0 means unbounded.
	if h.MinW > 0 {
		w = maxInt(w, h.MinW)
	}
	if h.MinH > 0 {
		ht = maxInt(ht, h.MinH)
	}
	if h.MaxW > 0 {
		w = minInt(w, h.MaxW)
	}
	if h.MaxH > 0 {
		ht = minInt(ht, h.MaxH)
	}

	if w < 1 {
		w = 1
	}
	if ht < 1 {
		ht = 1
	}

	r.W, r.H = w, ht
	return r
}

// Fixed reports whether hints pin the client to a single size in both
// dimensions (min == max, both nonzero) — such a client is always floating
// (invariant 5).
func (h Hints) Fixed() bool {
	return h.MaxW > 0 && h.MaxH > 0 && h.MaxW == h.MinW && h.MaxH == h.MinH
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
