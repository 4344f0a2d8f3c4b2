package gosnooze

import "time"

// Clock defines time lookup and timer arming interface
// used by delay to drive its internal wake ups.
// It exists so the rearm flow can be tested against a fake time source.
type Clock interface {
	Now() time.Time
	Timer(time.Duration) Timer
}

// Timer defines minimal armed timer interface a delay relies on.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

type systemclock struct{}

func (systemclock) Now() time.Time {
	return time.Now()
}

func (systemclock) Timer(duration time.Duration) Timer {
	return systemtimer{tmr: time.NewTimer(duration)}
}

type systemtimer struct {
	tmr *time.Timer
}

func (tmr systemtimer) C() <-chan time.Time {
	return tmr.tmr.C
}

func (tmr systemtimer) Stop() bool {
	return tmr.tmr.Stop()
}
