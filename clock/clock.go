package clock

import "time"

// Clock is the minimal timing source scheduler and sequencer depend on:
// a monotonic "now" in seconds, and the ability to arrange a one-shot
// callback after a delay.
type Clock interface {
	// Now returns the current time in seconds on whatever epoch this
	// Clock uses. Only differences between two Now() calls are
	// meaningful.
	Now() float64

	// AfterFunc arranges for f to run once, after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the timer from firing, if it hasn't already.
	// It reports whether the stop was in time.
	Stop() bool
}
