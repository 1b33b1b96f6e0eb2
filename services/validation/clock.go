package validation

import "time"

// Clock supplies the current instant. Injected so tests can pin "now"
// across timezone and DST boundaries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a Clock backed by the server's UTC wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock returns a Clock frozen at the given instant.
func FixedClock(at time.Time) Clock {
	return fixedClock{at: at}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}
