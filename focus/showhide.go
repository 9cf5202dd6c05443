package focus

// Showhide implements spec §4.6: walk the selected view's focus stack,
// most-recent first, moving each client into its tiled slot. Floating
// clients (or any client when the view's layout is floating) are also
// resized back to their stored rect, since tiling never touched their
// size to begin with.
func (p *Policy) Showhide(mIdx int) {
	monitors := p.State.Monitors()
	if mIdx < 0 || mIdx >= len(monitors) {
		return
	}
	m := monitors[mIdx]
	v := m.SelectedView()

	for _, c := range v.Stack() {
		// A tiled client's Rect was already set to its slot (position and
		// size) by the layout arranger; a floating client's Rect is its
		// own stored geometry, untouched by arrange. Either way the
		// client's current Rect is exactly what should be on screen.
		p.Surface.Configure(c.Window, c.Rect, c.Border)
	}
}
