package display

import "time"

// Clock abstracts the current-time source so tests can exercise day
// rollover without waiting for real midnight.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// civilDate formats the UTC calendar day used for snapshot freshness.
func civilDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
