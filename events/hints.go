package events

import (
	"github.com/jezek/xgb/xproto"

	"github.com/jezek/xgbutil/icccm"

	"github.com/mozzenior/wm/geom"
	"github.com/mozzenior/wm/store"
)

// readNormalHints translates WM_NORMAL_HINTS into geom.Hints, defaulting
// to the zero value (no constraints) when a client sets no hints at all.
func readNormalHints(s *store.Surface, w xproto.Window) geom.Hints {
	nh, err := icccm.WmNormalHintsGet(s.X, w)
	if err != nil || nh == nil {
		return geom.Hints{}
	}

	h := geom.Hints{
		IncW: int(nh.WidthInc), IncH: int(nh.HeightInc),
		MinW: int(nh.MinWidth), MinH: int(nh.MinHeight),
		MaxW: int(nh.MaxWidth), MaxH: int(nh.MaxHeight),
		BaseW: int(nh.BaseWidth), BaseH: int(nh.BaseHeight),
	}
	if nh.Flags&icccm.SizeHintPAspect != 0 && nh.MaxAspect.Den != 0 && nh.MinAspect.Den != 0 {
		h.MinAspect = float64(nh.MinAspect.Num) / float64(nh.MinAspect.Den)
		h.MaxAspect = float64(nh.MaxAspect.Num) / float64(nh.MaxAspect.Den)
	}
	return h
}

// wmProtocols reads WM_PROTOCOLS, used to decide whether a client can be
// asked to close itself via WM_DELETE_WINDOW or must be force-killed
// (spec §7).
func wmProtocols(s *store.Surface, w xproto.Window) ([]string, error) {
	return icccm.WmProtocolsGet(s.X, w)
}
