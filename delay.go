package gosnooze

import (
	"context"
	"fmt"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

// state defines single shared mutable cell per delay instance
// which holds the current resolution target and the resolved flag.
// It outlives the delay as long as any handle still references it.
// All reads and writes of target and resolved go through the lock.
type state struct {
	lock     sync.Mutex
	target   time.Time
	resolved bool
	rec      recorder
}

// Delay defines a single pending wake up that resolves no sooner than
// its target instant, where the target can be pushed back through
// handles at any point before resolution, see `Handle`.
// A delay is driven by the single task calling `Wait`, while any number
// of handles may postpone it concurrently from other goroutines.
type Delay struct {
	state *state
	clock Clock
	log   Logger
	id    string
}

// NewDelay creates new delay instance
// that resolves no sooner than the provided instant.
func NewDelay(instant time.Time) *Delay {
	return NewDelayWith(instant, systemclock{}, silent)
}

// NewDelayWith creates new delay instance
// that resolves no sooner than the provided instant
// with the provided clock and logger.
func NewDelayWith(instant time.Time, clock Clock, log Logger) *Delay {
	return &Delay{
		state: &state{target: instant, rec: noprecorder{}},
		clock: clock,
		log:   log,
		id:    fmt.Sprintf("gosnooze_delay_%s", uuid.NewV4()),
	}
}

// NewDelayObserved creates new delay instance
// that resolves no sooner than the provided instant
// and reports postpone, rearm and resolve events
// to the provided telemetry.
func NewDelayObserved(instant time.Time, tel *Telemetry) *Delay {
	d := NewDelay(instant)
	d.state.rec = tel
	return d
}

// Handle returns a new handle sharing this delay's state
// which allows pushing back the delay's resolution.
// It may be called any number of times, concurrently,
// with no side effects; handles stay valid after the delay resolves.
func (d *Delay) Handle() Handle {
	return Handle{state: d.state, clock: d.clock}
}

// Wait blocks the calling goroutine until the delay resolves
// and returns nil, or until the provided context is done
// and returns the context error leaving the delay unresolved.
// On each internal timer fire the shared target is re-read,
// if a postpone moved it past the armed instant a fresh timer
// is armed for the moved target and the wait continues.
// The delay resolves exactly once; a Wait call after resolution
// returns nil immediately. Only one goroutine may drive Wait at a time.
func (d *Delay) Wait(ctx context.Context) error {
	armed := false
	for {
		d.state.lock.Lock()
		if d.state.resolved {
			d.state.lock.Unlock()
			return nil
		}
		target := d.state.target
		now := d.clock.Now()
		if !target.After(now) {
			d.state.resolved = true
			d.state.lock.Unlock()
			d.state.rec.resolve(now.Sub(target))
			d.log("%s has resolved at %s with %s target", d.id, now, target)
			return nil
		}
		d.state.lock.Unlock()
		if armed {
			d.state.rec.rearm()
			d.log("%s target has been moved to %s, rearming", d.id, target)
		} else {
			d.log("%s has been armed with %s target", d.id, target)
		}
		armed = true
		tmr := d.clock.Timer(target.Sub(now))
		select {
		case <-tmr.C():
		case <-ctx.Done():
			tmr.Stop()
			return fmt.Errorf("delay context error has occured %w", ctx.Err())
		}
	}
}
