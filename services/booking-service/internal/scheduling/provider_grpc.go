//go:build protogen

package scheduling

import (
	"context"
	"time"

	"github.com/pberardi-dev/slotwise/libs/grpcx"
	businessv1 "github.com/pberardi-dev/slotwise/protos/gen/business/v1"
)

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

type grpcProvider struct {
	client businessv1.BusinessServiceClient
}

func NewProvider(addr string) (Provider, error) {
	if addr == "" {
		return nil, nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: businessv1.NewBusinessServiceClient(conn)}, nil
}

func (p *grpcProvider) GetAvailabilityConfig(ctx context.Context, businessID, staffID, serviceID, date string) (AvailabilityConfig, error) {
	resp, err := p.client.GetAvailabilityConfig(ctx, &businessv1.AvailabilityConfigRequest{
		BusinessId: businessID,
		StaffId:    staffID,
		ServiceId:  serviceID,
		Date:       date,
	})
	if err != nil {
		return AvailabilityConfig{}, err
	}
	return AvailabilityConfig{
		Open:            resp.GetIsOpen(),
		OpenMinute:      int(resp.GetOpenMinute()),
		CloseMinute:     int(resp.GetCloseMinute()),
		DurationMinutes: int(resp.GetDurationMinutes()),
		SlotStepMinutes: int(resp.GetSlotStepMinutes()),
	}, nil
}
