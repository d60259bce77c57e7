package timeslot

import (
	"fmt"

	"github.com/courtspace/court-scheduler/internal/httperr"
)

// MinuteOfDay is a time of day expressed as minutes since midnight.
// All slot arithmetic happens on this type; "HH:MM" strings exist only
// at the wire boundary.
type MinuteOfDay int

const MinutesPerDay = 24 * 60

// Parse converts an "HH:MM" 24-hour string into a MinuteOfDay.
func Parse(s string) (MinuteOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, httperr.ErrInvalid("invalid_time_format",
			fmt.Sprintf("time %q must be HH:MM", s))
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, httperr.ErrInvalid("invalid_time_format",
				fmt.Sprintf("time %q must be HH:MM", s))
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, httperr.ErrInvalid("invalid_time_format",
			fmt.Sprintf("time %q out of range", s))
	}
	return MinuteOfDay(hh*60 + mm), nil
}

// Format is the inverse of Parse.
func (m MinuteOfDay) Format() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

func (m MinuteOfDay) Valid() bool {
	return m >= 0 && m < MinutesPerDay
}

// Interval is one recurring weekly window: a day of week (Sunday=0 ...
// Saturday=6) plus open and close times.
type Interval struct {
	DayOfWeek int
	Open      MinuteOfDay
	Close     MinuteOfDay
}

// Overlaps reports whether two intervals share at least one instant.
// Intervals on different days never overlap, and touching boundaries
// (a.Close == b.Open) do not count.
func Overlaps(a, b Interval) bool {
	if a.DayOfWeek != b.DayOfWeek {
		return false
	}
	return !(a.Close <= b.Open || b.Close <= a.Open)
}

// Contiguous reports whether b starts exactly where a ends.
func Contiguous(a, b Interval) bool {
	return a.Close == b.Open
}
