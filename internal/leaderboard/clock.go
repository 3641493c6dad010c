package leaderboard

import "time"

// Clock abstracts wall-clock reads so the growth model is testable with
// fixed inputs.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real-time clock.
func SystemClock() Clock { return systemClock{} }
