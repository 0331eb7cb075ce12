package srs

import "time"

// Clock supplies the current time to stateful callers (the session
// controller, the server). The pure functions in this package take "now" as
// an explicit parameter instead.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock returns a Clock pinned to t.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
