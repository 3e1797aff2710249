package generator

import "time"

// Clock supplies wall-clock readings. Injecting one keeps the clock-sensitive
// paths (regression detection, sequence rollover) testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
