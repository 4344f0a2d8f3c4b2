package gosnooze

import "time"

// Handle defines a cloneable capability to push back the resolution
// of the delay it was obtained from, see `Delay.Handle`.
// Copying a handle is cloning it; all copies share the same delay state
// and may be used concurrently from any goroutine.
// A handle never resolves the delay itself and can't make it resolve
// sooner, it only advances the target the delay wakes up against.
type Handle struct {
	state *state
	clock Clock
}

// Postpone attempts to push back the corresponding delay's resolution
// to the provided instant and returns a response detailing how it went:
// Postponed if the target has been advanced (equal targets included),
// AlreadyResolved if the delay has resolved already,
// CantResolveEarlier if the provided instant lands before the held target.
// The delay is not notified directly, it observes the advanced target
// on its next internal wake up which happens no later than the old target.
// The returned response must be inspected by the caller.
func (h Handle) Postpone(instant time.Time) Response {
	h.state.lock.Lock()
	var resp Response
	switch {
	case h.state.resolved:
		resp = AlreadyResolved
	case instant.Before(h.state.target):
		resp = CantResolveEarlier
	default:
		h.state.target = instant
		resp = Postponed
	}
	h.state.lock.Unlock()
	h.state.rec.postpone(resp)
	return resp
}

// PostponeFor attempts to push back the corresponding delay's resolution
// by the provided duration relative to the current clock time
// and returns a response detailing how it went, see `Postpone`.
func (h Handle) PostponeFor(duration time.Duration) Response {
	return h.Postpone(h.clock.Now().Add(duration))
}
