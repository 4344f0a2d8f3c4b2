package gosnooze

import (
	"sync"
	"time"
)

const ms30_0 = 30 * time.Millisecond

type ttimer struct {
	clc      *tclock
	deadline time.Time
	ch       chan time.Time
	fired    bool
	stopped  bool
}

func (tmr *ttimer) C() <-chan time.Time {
	return tmr.ch
}

func (tmr *ttimer) Stop() bool {
	tmr.clc.lock.Lock()
	defer tmr.clc.lock.Unlock()
	if tmr.fired || tmr.stopped {
		return false
	}
	tmr.stopped = true
	return true
}

type tclock struct {
	lock   sync.Mutex
	now    time.Time
	timers []*ttimer
}

func newtclock() *tclock {
	return &tclock{now: time.Unix(100, 0)}
}

func (clc *tclock) Now() time.Time {
	clc.lock.Lock()
	defer clc.lock.Unlock()
	return clc.now
}

func (clc *tclock) Timer(duration time.Duration) Timer {
	clc.lock.Lock()
	defer clc.lock.Unlock()
	tmr := &ttimer{clc: clc, deadline: clc.now.Add(duration), ch: make(chan time.Time, 1)}
	if duration <= 0 {
		tmr.fired = true
		tmr.ch <- clc.now
		return tmr
	}
	clc.timers = append(clc.timers, tmr)
	return tmr
}

func (clc *tclock) advance(duration time.Duration) {
	clc.lock.Lock()
	defer clc.lock.Unlock()
	clc.now = clc.now.Add(duration)
	pending := clc.timers[:0]
	for _, tmr := range clc.timers {
		if !tmr.stopped && !tmr.deadline.After(clc.now) {
			tmr.fired = true
			tmr.ch <- clc.now
			continue
		}
		pending = append(pending, tmr)
	}
	clc.timers = pending
}

func (clc *tclock) pending() int {
	clc.lock.Lock()
	defer clc.lock.Unlock()
	num := 0
	for _, tmr := range clc.timers {
		if !tmr.stopped {
			num++
		}
	}
	return num
}

type trecorder struct {
	lock      sync.Mutex
	responses []Response
	rearms    int
	resolves  int
}

func (rec *trecorder) postpone(resp Response) {
	rec.lock.Lock()
	defer rec.lock.Unlock()
	rec.responses = append(rec.responses, resp)
}

func (rec *trecorder) rearm() {
	rec.lock.Lock()
	defer rec.lock.Unlock()
	rec.rearms++
}

func (rec *trecorder) resolve(time.Duration) {
	rec.lock.Lock()
	defer rec.lock.Unlock()
	rec.resolves++
}

func newtdelay(instant time.Time, clc Clock, rec recorder) *Delay {
	d := NewDelayWith(instant, clc, silent)
	d.state.rec = rec
	return d
}
