package availability

import (
	"errors"
	"testing"
)

func TestOccupiedMarks_HalfOpenExpansion(t *testing.T) {
	// Non-aligned end: 14:45 itself is the exclusive end and must not appear.
	marks, err := OccupiedMarks([]Booking{
		{Start: "14:00", End: "14:45", Status: "confirmed"},
	}, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"14:00", "14:15", "14:30"}
	if len(marks) != len(want) {
		t.Fatalf("expected %d marks, got %d", len(want), len(marks))
	}
	for _, clock := range want {
		m, _ := ParseClock(clock)
		if !marks[m] {
			t.Errorf("expected mark at %s", clock)
		}
	}
	if end, _ := ParseClock("14:45"); marks[end] {
		t.Error("exclusive end 14:45 must not be marked")
	}
}

func TestOccupiedMarks_StatusFilter(t *testing.T) {
	marks, err := OccupiedMarks([]Booking{
		{Start: "09:00", End: "10:00", Status: "cancelled"},
		{Start: "11:00", End: "12:00", Status: "completed"},
		{Start: "13:00", End: "13:30", Status: "pending"},
	}, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(marks) != 2 {
		t.Fatalf("only the pending booking should mark, got %d marks", len(marks))
	}
	for _, clock := range []string{"13:00", "13:15"} {
		m, _ := ParseClock(clock)
		if !marks[m] {
			t.Errorf("expected mark at %s", clock)
		}
	}
}

func TestOccupiedMarks_CrossesHourBoundary(t *testing.T) {
	marks, err := OccupiedMarks([]Booking{
		{Start: "10:45", End: "11:15", Status: "confirmed"},
	}, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, clock := range []string{"10:45", "11:00"} {
		m, _ := ParseClock(clock)
		if !marks[m] {
			t.Errorf("expected mark at %s (minute carry across the hour)", clock)
		}
	}
}

func TestOccupiedMarks_MalformedTimeFailsWhole(t *testing.T) {
	_, err := OccupiedMarks([]Booking{
		{Start: "09:00", End: "10:00", Status: "confirmed"},
		{Start: "25:99", End: "26:00", Status: "confirmed"},
	}, 15)
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}
