package domain

import "time"

// CurrentTimeProvider is the clock used to stamp recommendations and catalog events.
type CurrentTimeProvider interface {
	Now() time.Time
}
