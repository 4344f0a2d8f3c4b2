package gosnooze

import "log"

// Logger defined by typical printf-like logging func signature.
// Logger is used by delay to trace arm, rearm and resolve transitions.
type Logger func(string, ...interface{})

// DefaultLogger defines logger that is used by default.
var DefaultLogger Logger = log.Printf

func silent(string, ...interface{}) {
}
