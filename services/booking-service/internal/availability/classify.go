package availability

// SlotState classifies one candidate start time.
type SlotState string

const (
	StateAvailable              SlotState = "available"
	StateBlockedOverlap         SlotState = "blocked_overlap"
	StateBlockedInsufficientGap SlotState = "blocked_insufficient_gap"
	StateBlockedAfterHours      SlotState = "blocked_after_hours"
)

// Slot is one classified candidate start time. Slots are ephemeral output,
// recomputed on every request and never stored.
type Slot struct {
	Time  string    `json:"time"`
	State SlotState `json:"state"`
}

// Classify decides, for each grid slot, whether a service of durationMinutes
// could start there. Checks run in order: a booking running past closing is
// blocked regardless of other appointments; a directly occupied start is an
// overlap; an occupied mark inside the booking's forward window means the gap
// before the next appointment is too short. Slots are classified left to right
// and no slot's state depends on another slot's derived state, only on the raw
// occupied marks.
func Classify(grid []int, occupied map[int]bool, closeMinute, durationMinutes, stepMinutes int) []Slot {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	// A booking [t, t+duration) can only touch marks t+i*step with
	// i*step < duration, so the forward scan is bounded in closed form.
	lookahead := (durationMinutes + stepMinutes - 1) / stepMinutes

	slots := make([]Slot, 0, len(grid))
	for _, t := range grid {
		slots = append(slots, Slot{
			Time:  FormatClock(t),
			State: classifySlot(t, occupied, closeMinute, durationMinutes, stepMinutes, lookahead),
		})
	}
	return slots
}

func classifySlot(start int, occupied map[int]bool, closeMinute, durationMinutes, stepMinutes, lookahead int) SlotState {
	if start+durationMinutes > closeMinute {
		return StateBlockedAfterHours
	}
	if occupied[start] {
		return StateBlockedOverlap
	}
	for i := 1; i < lookahead; i++ {
		if occupied[start+i*stepMinutes] {
			return StateBlockedInsufficientGap
		}
	}
	return StateAvailable
}

// ClassifyDay runs the whole pipeline for one day: resolve the grid from the
// open window, map existing appointments to occupied marks, classify. A closed
// day yields an empty slot list, not an error.
func ClassifyDay(day DayHours, bookings []Booking, durationMinutes, stepMinutes int) ([]Slot, error) {
	if !day.Open {
		return []Slot{}, nil
	}
	occupied, err := OccupiedMarks(bookings, stepMinutes)
	if err != nil {
		return nil, err
	}
	grid := Grid(day.OpenMinute, day.CloseMinute, stepMinutes)
	return Classify(grid, occupied, day.CloseMinute, durationMinutes, stepMinutes), nil
}
