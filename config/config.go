// Package config holds the window manager's compile-time configuration
// record (spec §6): tags, the layout table, default proportions, colors,
// bindings. The record is immutable once Default (or Load) returns it —
// spec §5 treats configuration as process-wide immutable state.
package config

import (
	"github.com/mozzenior/wm/layout"
	"github.com/mozzenior/wm/store"
)

// Colors names the six pixel values used for borders (focus policy) and
// the bar's foreground/background (spec §4.7, §6).
type Colors struct {
	NormBorder uint32
	SelBorder  uint32
	NormFg     uint32
	NormBg     uint32
	SelFg      uint32
	SelBg      uint32
}

// Config is the immutable configuration record (spec §6).
type Config struct {
	Tags    [store.NumViews]string
	Layouts []*store.LayoutEntry

	Mfact       float64
	Snap        int
	BorderPx    int
	ShowBar     bool
	TopBar      bool
	ResizeHints bool

	Colors   Colors
	FontSpec string

	Keys    []KeyBinding
	Buttons []ButtonBinding

	BarHeight int
}

// Default returns the compiled-in configuration, the dwm-style config.def.h
// translated to a Go value. Callers that want user overrides call Load
// instead, which starts from this same record.
func Default() *Config {
	c := &Config{
		Tags:        [store.NumViews]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Layouts:     layout.Default(),
		Mfact:       0.55,
		Snap:        32,
		BorderPx:    1,
		ShowBar:     true,
		TopBar:      true,
		ResizeHints: false,
		Colors: Colors{
			NormBorder: 0x444444,
			SelBorder:  0x5294e2,
			NormFg:     0xbbbbbb,
			NormBg:     0x222222,
			SelFg:      0xeeeeee,
			SelBg:      0x005577,
		},
		FontSpec:  "monospace:size=10",
		BarHeight: 20,
	}
	c.Keys = DefaultKeys(c)
	c.Buttons = DefaultButtons()
	layout.BarHeight = c.BarHeight
	return c
}

// Layout returns the configured layout entry at i, or the first (default)
// entry if i is out of range — unknown layouts are not possible at runtime
// since the table is a compile-time array (spec §7).
func (c *Config) Layout(i int) *store.LayoutEntry {
	if i < 0 || i >= len(c.Layouts) {
		return c.Layouts[0]
	}
	return c.Layouts[i]
}

// LayoutBySymbol resolves set_layout(symbol) bindings against the compiled
// table.
func (c *Config) LayoutBySymbol(symbol string) *store.LayoutEntry {
	for _, l := range c.Layouts {
		if l.Symbol == symbol {
			return l
		}
	}
	return c.Layouts[0]
}
