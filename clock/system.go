package clock

import "time"

// System is the production Clock, backed by the real wall clock.
type System struct {
	epoch time.Time
}

// NewSystem returns a System anchored at the moment of construction.
func NewSystem() *System {
	return &System{epoch: time.Now()}
}

// Now returns the seconds elapsed since NewSystem was called.
func (s *System) Now() float64 {
	return time.Since(s.epoch).Seconds()
}

// AfterFunc schedules f on the real Go runtime timer wheel.
func (s *System) AfterFunc(d time.Duration, f func()) Timer {
	return systemTimer{time.AfterFunc(d, f)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) Stop() bool {
	return s.t.Stop()
}
