package availability

import (
	"errors"
	"testing"
)

func TestOverlaps_TouchingEndpoints(t *testing.T) {
	nine, _ := ParseClock("09:00")
	ten, _ := ParseClock("10:00")
	eleven, _ := ParseClock("11:00")
	if Overlaps(nine, ten, ten, eleven) {
		t.Fatal("[09:00,10:00) and [10:00,11:00) touch but must not overlap")
	}
	nineThirty, _ := ParseClock("09:30")
	tenThirty, _ := ParseClock("10:30")
	if !Overlaps(nine, ten, nineThirty, tenThirty) {
		t.Fatal("[09:00,10:00) and [09:30,10:30) must overlap")
	}
	if !Overlaps(nineThirty, tenThirty, nine, ten) {
		t.Fatal("overlap must be symmetric")
	}
}

func TestWouldConflict(t *testing.T) {
	existing := []Booking{
		{Start: "09:00", End: "10:00", Status: "confirmed"},
		{Start: "13:00", End: "14:00", Status: "cancelled"},
	}

	conflict, err := WouldConflict(existing, "09:30", "10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conflict {
		t.Fatal("expected conflict with the 09:00-10:00 confirmed booking")
	}

	conflict, err = WouldConflict(existing, "10:00", "11:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflict {
		t.Fatal("back-to-back bookings must not conflict")
	}

	conflict, err = WouldConflict(existing, "13:00", "14:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflict {
		t.Fatal("cancelled bookings must not conflict")
	}
}

func TestWouldConflict_InvalidInput(t *testing.T) {
	if _, err := WouldConflict(nil, "10:00", "10:00"); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval for zero-width interval, got %v", err)
	}
	if _, err := WouldConflict(nil, "10:61", "11:00"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}
