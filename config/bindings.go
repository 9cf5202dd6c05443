package config

import (
	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/store"
)

// Action is the closed set of bindable actions (spec §6). Each binding
// names exactly one action plus its typed argument — the Go rendering of
// the original's "function pointer + tagged argument union" (spec §9).
type Action int

const (
	ActionFocusNextClient Action = iota
	ActionFocusPrevClient
	ActionFocusNextMonitor
	ActionFocusPrevMonitor
	ActionSendToNextMonitor
	ActionSendToPrevMonitor
	ActionToggleBar
	ActionSetLayout
	ActionSetMfact
	ActionZoom
	ActionView
	ActionTag
	ActionKillClient
	ActionToggleFloating
	ActionMoveMouse
	ActionResizeMouse
	ActionSpawn
	ActionQuit
)

// Arg is the typed argument union. Only the field matching Action is
// meaningful; which one that is follows directly from the Action value.
type Arg struct {
	Float float64  // ActionSetMfact delta
	UInt  uint     // ActionView / ActionTag tag bitmask
	Str   string   // ActionSetLayout symbol
	Argv  []string // ActionSpawn argv
}

// KeyBinding pairs a modifier+keysym with an action (spec §6 keys[]).
type KeyBinding struct {
	Mod    uint16
	Keysym uint32
	Action Action
	Arg    Arg
}

// ClickRegion classifies where on the bar (or elsewhere) a ButtonPress
// landed (spec §4.8).
type ClickRegion int

const (
	ClickTagBar ClickRegion = iota
	ClickLayoutSymbol
	ClickStatusText
	ClickWinTitle
	ClickClientWin
	ClickRootWin
)

// ButtonBinding pairs a click region, button and modifier with an action
// (spec §6 buttons[]).
type ButtonBinding struct {
	Click  ClickRegion
	Mod    uint16
	Button xproto.Button
	Action Action
	Arg    Arg
}

// Common X keysyms used by the default bindings below. Values match
// <X11/keysymdef.h>; only the handful the default config binds are listed.
const (
	KeyReturn = 0xff0d
	KeyB      = 0x0062
	KeyP      = 0x0070
	KeyJ      = 0x006a
	KeyK      = 0x006b
	KeyI      = 0x0069
	KeyD      = 0x0064
	KeyH      = 0x0068
	KeyL      = 0x006c
	KeyM      = 0x006d
	KeyT      = 0x0074
	KeyF      = 0x0066
	KeySpace  = 0x0020
	KeyQ      = 0x0071
	KeyC      = 0x0063
	KeyTab    = 0xff09
	Key1      = 0x0031
)

// DefaultKeys mirrors dwm's config.def.h key table: Mod4 (super) plus
// Shift for the send-to-tag variants, Mod4+[1-9] to view a tag,
// Mod4+Shift+[1-9] to tag the selected client onto it.
func DefaultKeys(c *Config) []KeyBinding {
	const modkey = xproto.ModMask4
	keys := []KeyBinding{
		{Mod: modkey, Keysym: KeyJ, Action: ActionFocusNextClient},
		{Mod: modkey, Keysym: KeyK, Action: ActionFocusPrevClient},
		{Mod: modkey, Keysym: KeyI, Action: ActionFocusNextMonitor},
		{Mod: modkey, Keysym: KeyD, Action: ActionFocusPrevMonitor},
		{Mod: modkey | xproto.ModMaskShift, Keysym: KeyI, Action: ActionSendToNextMonitor},
		{Mod: modkey | xproto.ModMaskShift, Keysym: KeyD, Action: ActionSendToPrevMonitor},
		{Mod: modkey, Keysym: KeyB, Action: ActionToggleBar},
		{Mod: modkey, Keysym: KeyH, Action: ActionSetMfact, Arg: Arg{Float: -0.05}},
		{Mod: modkey, Keysym: KeyL, Action: ActionSetMfact, Arg: Arg{Float: 0.05}},
		{Mod: modkey, Keysym: KeyReturn, Action: ActionZoom},
		{Mod: modkey, Keysym: KeyTab, Action: ActionView, Arg: Arg{UInt: 0}}, // toggles to the previous view
		{Mod: modkey, Keysym: KeyT, Action: ActionSetLayout, Arg: Arg{Str: "[]="}},
		{Mod: modkey, Keysym: KeyM, Action: ActionSetLayout, Arg: Arg{Str: "[M]"}},
		{Mod: modkey, Keysym: KeyF, Action: ActionToggleFloating},
		{Mod: modkey | xproto.ModMaskShift, Keysym: KeyC, Action: ActionKillClient},
		{Mod: modkey | xproto.ModMaskShift, Keysym: KeyQ, Action: ActionQuit},
		{Mod: modkey, Keysym: KeyP, Action: ActionSpawn, Arg: Arg{Argv: []string{"dmenu_run"}}},
		{Mod: modkey | xproto.ModMaskShift, Keysym: KeyReturn, Action: ActionSpawn, Arg: Arg{Argv: []string{"xterm"}}},
	}
	for i := 0; i < store.NumViews; i++ {
		tagBit := uint(1) << uint(i)
		keys = append(keys,
			KeyBinding{Mod: modkey, Keysym: uint32(Key1 + i), Action: ActionView, Arg: Arg{UInt: tagBit}},
			KeyBinding{Mod: modkey | xproto.ModMaskShift, Keysym: uint32(Key1 + i), Action: ActionTag, Arg: Arg{UInt: tagBit}},
		)
	}
	return keys
}

// DefaultButtons mirrors dwm's default button table: click-to-focus on
// client windows, drag-to-move/resize with the modifier held, and a
// tag-bar click to view that tag.
func DefaultButtons() []ButtonBinding {
	const modkey = xproto.ModMask4
	return []ButtonBinding{
		{Click: ClickTagBar, Button: xproto.ButtonIndex1, Action: ActionView},
		{Click: ClickTagBar, Mod: xproto.ModMaskShift, Button: xproto.ButtonIndex1, Action: ActionTag},
		{Click: ClickLayoutSymbol, Button: xproto.ButtonIndex1, Action: ActionSetLayout, Arg: Arg{Str: "[]="}},
		{Click: ClickLayoutSymbol, Button: xproto.ButtonIndex3, Action: ActionSetLayout, Arg: Arg{Str: "[M]"}},
		{Click: ClickClientWin, Mod: modkey, Button: xproto.ButtonIndex1, Action: ActionMoveMouse},
		{Click: ClickClientWin, Mod: modkey, Button: xproto.ButtonIndex2, Action: ActionToggleFloating},
		{Click: ClickClientWin, Mod: modkey, Button: xproto.ButtonIndex3, Action: ActionResizeMouse},
	}
}

