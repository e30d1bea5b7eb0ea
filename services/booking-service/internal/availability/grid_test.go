package availability

import (
	"testing"
	"time"
)

func TestGrid_LastSlotBeforeClose(t *testing.T) {
	grid := Grid(540, 1080, 15) // 09:00-18:00
	if len(grid) != 36 {
		t.Fatalf("expected 36 slots, got %d", len(grid))
	}
	if grid[0] != 540 {
		t.Fatalf("expected first slot 09:00, got %s", FormatClock(grid[0]))
	}
	last := grid[len(grid)-1]
	if last != 1065 {
		t.Fatalf("expected last slot 17:45, got %s", FormatClock(last))
	}
	if last >= 1080 {
		t.Fatal("grid emitted a slot at or after closing")
	}
}

func TestGrid_EmptyWindows(t *testing.T) {
	if got := Grid(1080, 540, 15); len(got) != 0 {
		t.Fatalf("inverted window: expected empty grid, got %d slots", len(got))
	}
	if got := Grid(540, 540, 15); len(got) != 0 {
		t.Fatalf("zero-width window: expected empty grid, got %d slots", len(got))
	}
}

func TestGrid_DefaultStep(t *testing.T) {
	grid := Grid(540, 600, 0)
	if len(grid) != 4 {
		t.Fatalf("expected 4 slots with default step, got %d", len(grid))
	}
}

func TestResolveDay_MissingWeekdayMeansClosed(t *testing.T) {
	hours := WeeklyHours{
		time.Monday: {Open: true, OpenMinute: 540, CloseMinute: 1080},
	}

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if d := hours.ResolveDay(monday); !d.Open || d.OpenMinute != 540 {
		t.Fatalf("expected monday open 09:00, got %+v", d)
	}

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if d := hours.ResolveDay(sunday); d.Open {
		t.Fatal("missing weekday record must resolve as closed")
	}
}

func TestResolveDay_ClosedDayYieldsNoSlots(t *testing.T) {
	hours := WeeklyHours{
		time.Sunday: {Open: false, OpenMinute: 540, CloseMinute: 1080},
	}
	day := hours.ResolveDay(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if got := Grid(day.OpenMinute, day.CloseMinute, 15); len(got) != 0 {
		t.Fatalf("closed day: expected no slots, got %d", len(got))
	}
}
