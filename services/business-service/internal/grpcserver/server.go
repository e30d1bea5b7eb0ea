//go:build protogen

package grpcserver

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pberardi-dev/slotwise/libs/config"
	"github.com/pberardi-dev/slotwise/libs/db"
	businessv1 "github.com/pberardi-dev/slotwise/protos/gen/business/v1"
	"github.com/pberardi-dev/slotwise/services/business-service/internal/storage"
	"google.golang.org/grpc"
)

type server struct {
	businessv1.UnimplementedBusinessServiceServer
	pool *db.Pool
	repo *storage.Repository
}

func Register(grpcServer *grpc.Server, pool *db.Pool, repo *storage.Repository) {
	businessv1.RegisterBusinessServiceServer(grpcServer, &server{pool: pool, repo: repo})
}

func (s *server) GetBusinessProfile(ctx context.Context, req *businessv1.BusinessProfileRequest) (*businessv1.BusinessProfileResponse, error) {
	offsets := parseOffsets(config.String("REMINDER_OFFSETS_MINUTES", "1440,60"))
	timezone := config.String("TIMEZONE", "UTC")
	name := "Demo Business"

	if s.repo != nil && req.GetBusinessId() != "" {
		p, err := s.repo.GetOrCreateProfile(ctx, req.GetBusinessId())
		if err == nil {
			if strings.TrimSpace(p.Timezone) != "" {
				timezone = strings.TrimSpace(p.Timezone)
			}
			if strings.TrimSpace(p.Name) != "" {
				name = strings.TrimSpace(p.Name)
			}
			if len(p.OffsetsMins) > 0 {
				offsets = nil
				for _, v := range p.OffsetsMins {
					if v <= 0 {
						continue
					}
					offsets = append(offsets, int32(v))
				}
				if len(offsets) == 0 {
					offsets = parseOffsets("1440,60")
				}
			}
		}
	}

	return &businessv1.BusinessProfileResponse{
		BusinessId: req.BusinessId,
		Name:       name,
		ReminderPolicy: &businessv1.ReminderPolicy{
			ReminderOffsetsMinutes: offsets,
			Timezone:               timezone,
		},
	}, nil
}

// GetAvailabilityConfig resolves one calendar day's booking window. Missing
// working-hours rows and one-off closed dates both come back as not open, so
// the booking side never offers slots the business did not declare.
func (s *server) GetAvailabilityConfig(ctx context.Context, req *businessv1.AvailabilityConfigRequest) (*businessv1.AvailabilityConfigResponse, error) {
	resp := &businessv1.AvailabilityConfigResponse{
		BusinessId:      req.GetBusinessId(),
		StaffId:         req.GetStaffId(),
		ServiceId:       req.GetServiceId(),
		DurationMinutes: 30,
		SlotStepMinutes: 15,
		IsOpen:          false,
	}
	if req.GetBusinessId() == "" || req.GetServiceId() == "" || req.GetDate() == "" || s.repo == nil {
		return resp, nil
	}

	day, err := time.Parse("2006-01-02", req.GetDate())
	if err != nil {
		return resp, nil
	}

	profile, err := s.repo.GetOrCreateProfile(ctx, req.GetBusinessId())
	if err == nil && profile.SlotStepMinutes > 0 && 60%profile.SlotStepMinutes == 0 {
		resp.SlotStepMinutes = int32(profile.SlotStepMinutes)
	}

	durationMins, err := s.repo.GetServiceDuration(ctx, req.GetBusinessId(), req.GetServiceId())
	if err == nil && durationMins > 0 {
		resp.DurationMinutes = int32(durationMins)
	}

	closed, err := s.repo.IsClosedDate(ctx, req.GetBusinessId(), req.GetDate())
	if err != nil || closed {
		return resp, nil
	}

	wh, found, err := s.repo.GetWorkingHours(ctx, req.GetBusinessId(), int(day.Weekday()))
	if err != nil || !found || !wh.IsOpen {
		return resp, nil
	}
	if wh.CloseMinute <= wh.OpenMinute {
		return resp, nil
	}

	resp.IsOpen = true
	resp.OpenMinute = int32(wh.OpenMinute)
	resp.CloseMinute = int32(wh.CloseMinute)
	return resp, nil
}

func parseOffsets(raw string) []int32 {
	var out []int32
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mins, err := strconv.Atoi(part)
		if err != nil || mins <= 0 {
			continue
		}
		out = append(out, int32(mins))
	}
	if len(out) == 0 {
		out = []int32{1440}
	}
	return out
}
