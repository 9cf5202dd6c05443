package store

import (
	"github.com/jezek/xgb/xproto"

	"github.com/mozzenior/wm/geom"
)

// Configure issues a configure-window request for w's geometry and border,
// the output half of the X surface (spec §6).
func (s *Surface) Configure(w xproto.Window, r geom.Rect, border int) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth |
		xproto.ConfigWindowHeight | xproto.ConfigWindowBorderWidth)
	values := []uint32{uint32(r.X), uint32(r.Y), uint32(r.W), uint32(r.H), uint32(border)}
	xproto.ConfigureWindow(s.X.Conn(), w, mask, values)
}

// ConfigureStack sets only w's stacking position (mode relative to sibling,
// or mode alone when sibling is 0); geometry and border are left as they
// are. Used by Restack.
func (s *Surface) ConfigureStack(w xproto.Window, sibling xproto.Window, mode byte) {
	mask := uint16(xproto.ConfigWindowSibling | xproto.ConfigWindowStackMode)
	values := []uint32{uint32(sibling), uint32(mode)}
	if sibling == 0 {
		mask = xproto.ConfigWindowStackMode
		values = []uint32{uint32(mode)}
	}
	xproto.ConfigureWindow(s.X.Conn(), w, mask, values)
}

// SendConfigureNotify sends a synthetic ConfigureNotify reasserting w's
// current geometry — used to refuse a tiled client's ConfigureRequest move
// (spec §4.8) without actually moving it.
func (s *Surface) SendConfigureNotify(w xproto.Window, r geom.Rect, border int) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            w,
		Window:           w,
		AboveSibling:     0,
		X:                int16(r.X),
		Y:                int16(r.Y),
		Width:            uint16(r.W),
		Height:           uint16(r.H),
		BorderWidth:      uint8(border),
		OverrideRedirect: false,
	}
	xproto.SendEvent(s.X.Conn(), false, w, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// MapWindow / UnmapWindow toggle visibility.
func (s *Surface) MapWindow(w xproto.Window) {
	xproto.MapWindow(s.X.Conn(), w)
}

func (s *Surface) UnmapWindow(w xproto.Window) {
	xproto.UnmapWindow(s.X.Conn(), w)
}

// SetBorderColor sets w's border pixel (normal vs. selected color, spec
// §4.7).
func (s *Surface) SetBorderColor(w xproto.Window, pixel uint32) {
	xproto.ChangeWindowAttributes(s.X.Conn(), w, xproto.CwBorderPixel, []uint32{pixel})
}

// SetInputFocus sends X input focus to w, with focus reverting to
// PointerRoot if w becomes unviewable, per spec §4.7.
func (s *Surface) SetInputFocus(w xproto.Window, ts xproto.Timestamp) {
	xproto.SetInputFocus(s.X.Conn(), xproto.InputFocusPointerRoot, w, ts)
}

// SelectEventMask installs the event mask a managed client must have
// (invariant 7).
func (s *Surface) SelectEventMask(w xproto.Window, mask uint32) {
	xproto.ChangeWindowAttributes(s.X.Conn(), w, xproto.CwEventMask, []uint32{mask})
}

// SendWMDelete asks a client to close itself via the WM_DELETE_WINDOW
// protocol message (spec §7 protocol negotiation).
func (s *Surface) SendWMDelete(w xproto.Window) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   s.Atom("WM_PROTOCOLS"),
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(s.Atom("WM_DELETE_WINDOW")), 0, 0, 0, 0,
		}),
	}
	xproto.SendEvent(s.X.Conn(), false, w, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

// KillClient force-destroys w's connection to the server, used when a
// client doesn't advertise WM_DELETE_WINDOW.
func (s *Surface) KillClient(w xproto.Window) {
	xproto.KillClient(s.X.Conn(), uint32(w))
}

// DestroyWindow sends a DestroyWindow request directly.
func (s *Surface) DestroyWindow(w xproto.Window) {
	xproto.DestroyWindow(s.X.Conn(), w)
}
