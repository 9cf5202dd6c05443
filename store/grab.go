package store

import (
	"github.com/jezek/xgb/xproto"
)

// lockMods are combined with every configured binding's modifiers so the
// grab still fires with NumLock/CapsLock active (spec §4.8
// "CLEANMASK"/active button grabs).
var lockMods = []uint16{0, xproto.ModMaskLock, xproto.ModMask2, xproto.ModMaskLock | xproto.ModMask2}

// CleanMask strips the lock modifiers from mask before comparing configured
// bindings against incoming events (spec §4.8).
func CleanMask(mask uint16) uint16 {
	return mask &^ (xproto.ModMaskLock | xproto.ModMask2)
}

// GrabButton installs an active button grab for (button, modifiers) on w,
// repeated across every lock-modifier combination.
func (s *Surface) GrabButton(w xproto.Window, button xproto.Button, modifiers uint16, ownerEvents bool) {
	for _, lock := range lockMods {
		xproto.GrabButton(s.X.Conn(), ownerEvents, w,
			uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease),
			xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0,
			button, modifiers|lock)
	}
}

// UngrabButton releases every button grab on w, then reinstalls the
// "any-button" passive grab so a click can still re-focus it (spec §4.7
// unfocus step).
func (s *Surface) UngrabButton(w xproto.Window) {
	xproto.UngrabButton(s.X.Conn(), xproto.ButtonIndexAny, w, xproto.ModMaskAny)
	xproto.GrabButton(s.X.Conn(), false, w,
		uint16(xproto.EventMaskButtonPress),
		xproto.GrabModeAsync, xproto.GrabModeSync, 0, 0,
		xproto.ButtonIndexAny, xproto.ModMaskAny)
}

// GrabKey installs a key grab for (keycode, modifiers) on w, repeated
// across lock-modifier combinations.
func (s *Surface) GrabKey(w xproto.Window, keycode xproto.Keycode, modifiers uint16) {
	for _, lock := range lockMods {
		xproto.GrabKey(s.X.Conn(), true, w, modifiers|lock, keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync)
	}
}

// UngrabAllKeys releases every key grab on w, used before re-grabbing on a
// MappingNotify keyboard remap (spec §4.8).
func (s *Surface) UngrabAllKeys(w xproto.Window) {
	xproto.UngrabKey(s.X.Conn(), xproto.GrabAny, w, xproto.ModMaskAny)
}

// GrabPointer grabs the pointer with the given cursor for the duration of a
// mouse move/resize (spec §4.10).
func (s *Surface) GrabPointer(cursor xproto.Cursor) error {
	mask := uint16(xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion)
	reply, err := xproto.GrabPointer(s.X.Conn(), false, s.Root, mask,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return err
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return errGrabFailed
	}
	return nil
}

// UngrabPointer releases the pointer grab started by GrabPointer.
func (s *Surface) UngrabPointer() {
	xproto.UngrabPointer(s.X.Conn(), xproto.TimeCurrentTime)
}

// WarpPointer moves the pointer to (x, y) relative to the root, used to
// place the cursor at a client's bottom-right corner when a resize begins
// (spec §4.10).
func (s *Surface) WarpPointer(x, y int16) {
	xproto.WarpPointer(s.X.Conn(), 0, s.Root, 0, 0, 0, 0, x, y)
}

type grabError string

func (e grabError) Error() string { return string(e) }

const errGrabFailed = grabError("pointer grab failed")
