// Package clockpkg provides the time source used by business logic.
package clockpkg

import "time"

// Clock supplies the current time. Business logic takes it as a dependency so
// that tests can pin the day used by the daily withdrawal limit.
type Clock interface {
	Now() time.Time
}

// Real returns the system clock.
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
