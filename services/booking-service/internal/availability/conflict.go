package availability

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval is returned when a candidate interval's end does not come
// after its start.
var ErrInvalidInterval = errors.New("interval end must be after start")

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not overlap: one appointment may end exactly
// when the next begins.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && e1 > s2
}

// WouldConflict re-checks a candidate [start, end) interval against the given
// bookings, which callers should fetch fresh at save time rather than reusing
// the browsing snapshot. The result is advisory: whether a conflict blocks the
// write or merely warns is the caller's policy.
func WouldConflict(bookings []Booking, start, end string) (bool, error) {
	s, err := ParseClock(start)
	if err != nil {
		return false, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return false, err
	}
	if e <= s {
		return false, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start, end)
	}
	for _, b := range bookings {
		if !Occupies(b.Status) {
			continue
		}
		bs, err := ParseClock(b.Start)
		if err != nil {
			return false, err
		}
		be, err := ParseClock(b.End)
		if err != nil {
			return false, err
		}
		if Overlaps(s, e, bs, be) {
			return true, nil
		}
	}
	return false, nil
}
