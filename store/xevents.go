package store

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// NextEvent blocks for the next X event — the single suspension point of
// the main loop (spec §5). Events requeued by DrainEnterNotify are
// delivered first, in order, before it blocks on the wire. A non-nil err
// covers both connection failures and protocol errors (xgb delivers the
// latter as an error value satisfying xgb.Error); callers tell them apart
// with a type assertion where it matters, and otherwise just skip the
// event and keep looping.
func (s *Surface) NextEvent() (xgb.Event, error) {
	if len(s.pending) > 0 {
		ev := s.pending[0]
		s.pending = s.pending[1:]
		return ev, nil
	}
	return s.X.Conn().WaitForEvent()
}

// PollEvent returns the next already-buffered event without blocking, or
// (nil, nil) if none is queued. Used by DrainEnterNotify; the mouse
// move/resize pump reads through NextEvent instead.
func (s *Surface) PollEvent() (xgb.Event, error) {
	return s.X.Conn().PollForEvent()
}

// DrainEnterNotify discards any already-queued EnterNotify events — the
// side effect of Restack's reconfigures would otherwise be mistaken for a
// real pointer crossing and falsely steal focus (spec §4.5). Non-EnterNotify
// events are vanishingly rare here (Restack doesn't touch the root window)
// and are requeued onto pending for the main loop to pick up on its next
// NextEvent call.
func (s *Surface) DrainEnterNotify() {
	for {
		ev, err := s.PollEvent()
		if err != nil || ev == nil {
			return
		}
		if _, ok := ev.(xproto.EnterNotifyEvent); ok {
			continue
		}
		s.pending = append(s.pending, ev)
	}
}
