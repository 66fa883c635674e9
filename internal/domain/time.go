package domain

import "time"

// CurrentTimeProvider abstracts wall-clock access for deterministic tests.
type CurrentTimeProvider interface {
	// Now returns the current time.
	Now() time.Time
}
