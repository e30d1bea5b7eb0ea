package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pberardi-dev/slotwise/services/booking-service/internal/availability"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/model"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/scheduling"
)

type failingScheduleProvider struct{}

func (failingScheduleProvider) GetAvailabilityConfig(context.Context, string, string, string, string) (scheduling.AvailabilityConfig, error) {
	return scheduling.AvailabilityConfig{}, errors.New("business service unavailable")
}

func newTestHandler() *BookingHandler {
	return &BookingHandler{logger: slog.Default()}
}

func paramMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestResolveDayConfig_Defaults(t *testing.T) {
	h := newTestHandler()
	cfg, ok := h.resolveDayConfig(context.Background(), "biz", model.OwnerAssignee, "svc", "2026-03-02", paramMap(nil))
	if !ok {
		t.Fatal("expected fallback config")
	}
	if cfg.OpenMinute != 9*60 || cfg.CloseMinute != 17*60 {
		t.Fatalf("unexpected default window: %d-%d", cfg.OpenMinute, cfg.CloseMinute)
	}
	if cfg.SlotStepMinutes != availability.DefaultStepMinutes {
		t.Fatalf("unexpected default step: %d", cfg.SlotStepMinutes)
	}
}

func TestResolveDayConfig_Overrides(t *testing.T) {
	h := newTestHandler()
	cfg, ok := h.resolveDayConfig(context.Background(), "biz", model.OwnerAssignee, "svc", "2026-03-02", paramMap(map[string]string{
		"workday_start":     "08:30",
		"workday_end":       "20:00",
		"duration_minutes":  "45",
		"slot_step_minutes": "30",
	}))
	if !ok {
		t.Fatal("expected config from params")
	}
	if cfg.OpenMinute != 510 || cfg.CloseMinute != 1200 {
		t.Fatalf("unexpected window: %d-%d", cfg.OpenMinute, cfg.CloseMinute)
	}
	if cfg.DurationMinutes != 45 || cfg.SlotStepMinutes != 30 {
		t.Fatalf("unexpected duration/step: %d/%d", cfg.DurationMinutes, cfg.SlotStepMinutes)
	}
}

func TestResolveDayConfig_ProviderErrorStaysClosed(t *testing.T) {
	h := &BookingHandler{logger: slog.Default(), scheduling: failingScheduleProvider{}}
	if _, ok := h.resolveDayConfig(context.Background(), "biz", model.OwnerAssignee, "svc", "2026-03-02", paramMap(nil)); ok {
		t.Fatal("expected closed day when the hours source is unreachable and nothing is cached")
	}
}

func TestSlots_ProviderErrorReturnsNoSlots(t *testing.T) {
	h := &BookingHandler{logger: slog.Default(), scheduling: failingScheduleProvider{}}
	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/public/slots?business_id=biz&service_id=svc&date=2026-03-02", nil)
	rw := httptest.NewRecorder()
	h.Slots(rw, req)
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	var slots []availability.Slot
	if err := json.Unmarshal(rw.Body.Bytes(), &slots); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestList_RejectsUnknownStatusFilter(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/appointments?business_id=biz&status=bogus", nil)
	rw := httptest.NewRecorder()
	h.List(rw, req)
	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rw.Code)
	}
}

func TestResolveDayConfig_RejectsBadParams(t *testing.T) {
	h := newTestHandler()
	cases := []map[string]string{
		{"duration_minutes": "0"},
		{"duration_minutes": "notanumber"},
		{"slot_step_minutes": "-5"},
		{"workday_start": "25:00"},
		{"workday_start": "18:00", "workday_end": "09:00"},
	}
	for _, params := range cases {
		if _, ok := h.resolveDayConfig(context.Background(), "biz", model.OwnerAssignee, "svc", "2026-03-02", paramMap(params)); ok {
			t.Errorf("expected rejection for params %v", params)
		}
	}
}

func TestToBookings_ExcludesSelf(t *testing.T) {
	appts := []model.Appointment{
		{ID: "a1", StartMinute: 600, EndMinute: 660, Status: model.StatusConfirmed},
		{ID: "a2", StartMinute: 720, EndMinute: 780, Status: model.StatusPending},
	}
	bookings := toBookings(appts, "a1")
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking after exclusion, got %d", len(bookings))
	}
	if bookings[0].Start != "12:00" || bookings[0].End != "13:00" {
		t.Fatalf("unexpected interval: %s-%s", bookings[0].Start, bookings[0].End)
	}
}
