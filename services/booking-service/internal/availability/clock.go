// Package availability computes bookable time slots for one business day.
//
// All arithmetic is done on integer minutes since midnight; "HH:MM" strings are
// parsed on the way in and formatted on the way out. Appointments never cross
// midnight.
package availability

import (
	"errors"
	"fmt"
)

// ErrInvalidTimeFormat is returned when a clock string is not a valid "HH:MM".
// Callers must not feed unvalidated strings into the pipeline: a single bad
// value fails the whole call rather than silently dropping slots.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ParseClock converts a "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	for i := 0; i < 5; i++ {
		if i == 2 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	min := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || min > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hour*60 + min, nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
