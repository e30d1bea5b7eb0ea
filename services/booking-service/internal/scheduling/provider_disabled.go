//go:build !protogen

package scheduling

import "context"

// AvailabilityConfig is the per-day booking configuration resolved from the
// business service: the opening window in minutes from midnight plus the
// service duration and slot step.
type AvailabilityConfig struct {
	Open            bool
	OpenMinute      int
	CloseMinute     int
	DurationMinutes int
	SlotStepMinutes int
}

type Provider interface {
	GetAvailabilityConfig(ctx context.Context, businessID, staffID, serviceID, date string) (AvailabilityConfig, error)
}

func NewProvider(_ string) (Provider, error) {
	return nil, nil
}
