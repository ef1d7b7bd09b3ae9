package clock

import "time"

// Clock reports time elapsed since the program (or test) started, like a tick counter.
type Clock interface {
	Now() time.Duration
}

// System is a Clock backed by the monotonic wall clock.
type System struct {
	start time.Time
}

// NewSystem returns a System clock that starts counting now.
func NewSystem() *System {
	return &System{start: time.Now()}
}

// Now returns the time elapsed since NewSystem.
func (s *System) Now() time.Duration {
	return time.Since(s.start)
}

// Manual is a Clock that only moves when told to. Used by tests.
type Manual struct {
	now time.Duration
}

// NewManual returns a Manual clock reading start.
func NewManual(start time.Duration) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d and returns the new reading.
func (m *Manual) Advance(d time.Duration) time.Duration {
	m.now += d
	return m.now
}

// Set jumps the clock to t.
func (m *Manual) Set(t time.Duration) {
	m.now = t
}
