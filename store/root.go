package store

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"

	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"

	log "github.com/sirupsen/logrus"
)

// WM_STATE values (spec §6).
const (
	WithdrawnState = 0
	NormalState    = 1
	IconicState    = 3
)

// netAtoms lists the handful of EWMH atoms this WM advertises via
// _NET_SUPPORTED (spec §6 — conformance beyond these is a non-goal).
var netAtoms = []string{
	"_NET_SUPPORTED",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
}

// Surface is the X surface abstraction the rest of the engine calls
// instead of speaking the wire protocol directly (spec §1, §6). It owns
// the xgbutil connection, the interned atoms, and the grab/focus/configure
// primitives.
type Surface struct {
	X    *xgbutil.XUtil
	Root xproto.Window

	atoms map[string]xproto.Atom

	// pending holds events requeued by DrainEnterNotify; NextEvent drains
	// these before blocking on the wire so nothing is silently dropped.
	pending []xgb.Event
}

// Connect opens the X display and interns the atoms listed in spec §6.
// Failure here is fatal at startup (spec §7).
func Connect() (*Surface, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("open display: %w", err)
	}
	if err := randr.Init(xu.Conn()); err != nil {
		return nil, fmt.Errorf("init randr: %w", err)
	}

	s := &Surface{X: xu, Root: xu.RootWin(), atoms: map[string]xproto.Atom{}}
	names := append([]string{"WM_PROTOCOLS", "WM_DELETE_WINDOW", "WM_STATE"}, netAtoms...)
	for _, name := range names {
		atom, err := internAtom(xu, name)
		if err != nil {
			return nil, fmt.Errorf("intern atom %s: %w", name, err)
		}
		s.atoms[name] = atom
	}
	return s, nil
}

// internAtom wraps xproto.InternAtom so Connect reads as a flat loop.
func internAtom(xu *xgbutil.XUtil, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(xu.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Atom, nil
}

// Atom returns an interned atom by name, or 0 if it was never interned
// (programmer error — every name the engine uses is listed in Connect).
func (s *Surface) Atom(name string) xproto.Atom {
	return s.atoms[name]
}

// BecomeWM selects for SubstructureRedirect|SubstructureNotify on the root
// window. Another running WM causes the server to reply BadAccess; the
// caller treats that as fatal (spec §7).
func (s *Surface) BecomeWM() error {
	mask := []uint32{xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify}
	cookie := xproto.ChangeWindowAttributesChecked(s.X.Conn(), s.Root, xproto.CwEventMask, mask)
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("another window manager is already running: %w", err)
	}
	return s.publishSupported()
}

func (s *Surface) publishSupported() error {
	names := make([]string, len(netAtoms))
	copy(names, netAtoms)
	return ewmh.SupportedSet(s.X, names)
}

// SwallowErrors installs a no-op X error handler for the duration of fn,
// then restores whatever handler was previously installed — the scoped
// pattern spec §5/§7 require around destructive sequences in unmanage and
// killclient, so a racing BadWindow from a window that disappeared
// mid-sequence never reaches the default (process-aborting) handler.
func (s *Surface) SwallowErrors(fn func()) {
	prev := s.X.ErrorHandler
	s.X.ErrorHandler = func(err xgb.Error) {}
	defer func() { s.X.ErrorHandler = prev }()
	fn()
}

// GrabServer/UngrabServer bracket a sequence that must not race concurrent
// clients (spec §5: "the server is explicitly grabbed around destructive
// sequences").
func (s *Surface) GrabServer() error {
	return xproto.GrabServerChecked(s.X.Conn()).Check()
}

func (s *Surface) UngrabServer() error {
	return xproto.UngrabServerChecked(s.X.Conn()).Check()
}

// WithServerGrab runs fn with the X server grabbed and a swallowed error
// handler, releasing both on every exit path including early returns from
// fn, as spec §5 requires.
func (s *Surface) WithServerGrab(fn func()) {
	if err := s.GrabServer(); err != nil {
		log.Warn("grab server failed: ", err)
	}
	s.SwallowErrors(fn)
	if err := s.UngrabServer(); err != nil {
		log.Warn("ungrab server failed: ", err)
	}
}

// SetWMState writes WM_STATE on w with the given state and icon window
// None, per spec §6.
func (s *Surface) SetWMState(w xproto.Window, state int) {
	icccm.WmStateSet(s.X, w, &icccm.WmState{State: uint(state)})
}

// Sync performs a synchronous round-trip, used by handlers that need
// coherence before relying on the result of a just-issued request
// (spec §5).
func (s *Surface) Sync() {
	xproto.GetInputFocus(s.X.Conn()).Reply()
}
