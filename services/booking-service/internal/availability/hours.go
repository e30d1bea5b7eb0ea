package availability

import "time"

// DayHours is the resolved open window for one calendar day, in minutes since
// midnight. A zero DayHours means closed.
type DayHours struct {
	Open        bool
	OpenMinute  int
	CloseMinute int
}

// WeeklyHours holds a business's configured hours keyed by weekday (0=Sunday).
type WeeklyHours map[time.Weekday]DayHours

// ResolveDay returns the open window for a calendar date. A missing weekday
// entry means closed: absence fails safe rather than open.
func (w WeeklyHours) ResolveDay(date time.Time) DayHours {
	d, ok := w[date.Weekday()]
	if !ok || !d.Open {
		return DayHours{}
	}
	return d
}
