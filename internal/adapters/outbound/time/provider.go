package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the standard time package.
type CurrentTimeProvider struct {
	location *time.Location
}

// NewCurrentTimeProvider creates a provider reporting times in the given location.
func NewCurrentTimeProvider(location *time.Location) CurrentTimeProvider {
	if location == nil {
		location = time.UTC
	}
	return CurrentTimeProvider{location: location}
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.location == nil {
		return time.Now()
	}
	return time.Now().In(ts.location)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	Location string `config:"TIME_LOCATION" default:"UTC"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	location, err := time.LoadLocation(its.Location)
	if err != nil {
		return ctx, domain.NewConfigurationErr(fmt.Sprintf("invalid TIME_LOCATION %q: %v", its.Location, err))
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(location))
	return ctx, nil
}
