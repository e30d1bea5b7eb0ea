package availability

// Booking is an existing appointment as seen by the availability pipeline:
// clock strings plus a status. The pipeline does not care who booked it.
type Booking struct {
	Start  string // "HH:MM"
	End    string // "HH:MM"
	Status string
}

// Occupies reports whether an appointment status blocks time. Pending and
// confirmed appointments occupy; cancelled and completed do not.
func Occupies(status string) bool {
	return status == "pending" || status == "confirmed"
}

// OccupiedMarks expands every occupying booking's half-open [start, end)
// interval into the set of stepMinutes marks it covers. The mark at the
// exclusive end is not included. Marks only record direct occupation; whether a
// new booking's duration would run into them is the classifier's concern.
func OccupiedMarks(bookings []Booking, stepMinutes int) (map[int]bool, error) {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	marks := make(map[int]bool)
	for _, b := range bookings {
		if !Occupies(b.Status) {
			continue
		}
		start, err := ParseClock(b.Start)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(b.End)
		if err != nil {
			return nil, err
		}
		for t := start; t < end; t += stepMinutes {
			marks[t] = true
		}
	}
	return marks, nil
}
