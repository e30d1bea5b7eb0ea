package availability

import (
	"reflect"
	"testing"
)

func stateAt(t *testing.T, slots []Slot, clock string) SlotState {
	t.Helper()
	for _, s := range slots {
		if s.Time == clock {
			return s.State
		}
	}
	t.Fatalf("no slot at %s", clock)
	return ""
}

// Working hours 09:00-18:00, 15 min grid, 60 min service, one confirmed
// appointment 16:30-17:00.
func TestClassify_GapAndClosingBoundaries(t *testing.T) {
	day := DayHours{Open: true, OpenMinute: 540, CloseMinute: 1080}
	bookings := []Booking{{Start: "16:30", End: "17:00", Status: "confirmed"}}

	slots, err := ClassifyDay(day, bookings, 60, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := stateAt(t, slots, "16:00"); got != StateBlockedInsufficientGap {
		t.Errorf("16:00: only 30 min clear before 16:30, want blocked_insufficient_gap, got %s", got)
	}
	if got := stateAt(t, slots, "16:30"); got != StateBlockedOverlap {
		t.Errorf("16:30: directly occupied, want blocked_overlap, got %s", got)
	}
	if got := stateAt(t, slots, "17:00"); got != StateAvailable {
		t.Errorf("17:00: fits exactly before close, want available, got %s", got)
	}
	if got := stateAt(t, slots, "17:15"); got != StateBlockedAfterHours {
		t.Errorf("17:15: would run to 18:15, want blocked_after_hours, got %s", got)
	}
	if got := stateAt(t, slots, "09:00"); got != StateAvailable {
		t.Errorf("09:00: want available, got %s", got)
	}
}

func TestClassify_AfterHoursWinsOverOverlap(t *testing.T) {
	// The closing check short-circuits: even a directly occupied slot past the
	// cutoff reports blocked_after_hours.
	day := DayHours{Open: true, OpenMinute: 540, CloseMinute: 630} // 09:00-10:30
	bookings := []Booking{{Start: "10:00", End: "10:30", Status: "confirmed"}}

	slots, err := ClassifyDay(day, bookings, 60, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stateAt(t, slots, "10:00"); got != StateBlockedAfterHours {
		t.Errorf("10:00: want blocked_after_hours, got %s", got)
	}
}

func TestClassify_EveryCandidateGetsAState(t *testing.T) {
	day := DayHours{Open: true, OpenMinute: 540, CloseMinute: 1080}
	slots, err := ClassifyDay(day, nil, 30, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 36 {
		t.Fatalf("expected a classification for all 36 grid slots, got %d", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if slots[i-1].Time >= slots[i].Time {
			t.Fatalf("slots out of chronological order at %d: %s >= %s", i, slots[i-1].Time, slots[i].Time)
		}
	}
}

func TestClassifyDay_ClosedDay(t *testing.T) {
	slots, err := ClassifyDay(DayHours{}, []Booking{{Start: "10:00", End: "11:00", Status: "confirmed"}}, 30, 15)
	if err != nil {
		t.Fatalf("closed day must not error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("closed day: expected zero slots, got %d", len(slots))
	}
}

func TestClassifyDay_Idempotent(t *testing.T) {
	day := DayHours{Open: true, OpenMinute: 480, CloseMinute: 720}
	bookings := []Booking{
		{Start: "08:30", End: "09:15", Status: "pending"},
		{Start: "10:00", End: "11:00", Status: "confirmed"},
	}
	first, err := ClassifyDay(day, bookings, 45, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ClassifyDay(day, bookings, 45, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must classify identically")
	}
}

func TestClassifyDay_BookingAvailableSlotBlocksIt(t *testing.T) {
	day := DayHours{Open: true, OpenMinute: 540, CloseMinute: 1080}

	before, err := ClassifyDay(day, nil, 30, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stateAt(t, before, "11:00"); got != StateAvailable {
		t.Fatalf("11:00 should start available, got %s", got)
	}

	after, err := ClassifyDay(day, []Booking{{Start: "11:00", End: "11:30", Status: "pending"}}, 30, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stateAt(t, after, "11:00"); got != StateBlockedOverlap {
		t.Fatalf("11:00 booked: want blocked_overlap, got %s", got)
	}

	// Adding appointments never increases availability.
	for i := range before {
		if before[i].State != StateAvailable && after[i].State == StateAvailable {
			t.Fatalf("slot %s went from %s to available after adding a booking", before[i].Time, before[i].State)
		}
	}
}

func TestClassify_MalformedBookingFailsWhole(t *testing.T) {
	day := DayHours{Open: true, OpenMinute: 540, CloseMinute: 1080}
	_, err := ClassifyDay(day, []Booking{{Start: "oops", End: "10:00", Status: "confirmed"}}, 30, 15)
	if err == nil {
		t.Fatal("expected error for malformed booking time")
	}
}
