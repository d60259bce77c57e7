package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/models"
	"github.com/courtspace/court-scheduler/internal/timeslot"
)

// Interval builds the pure time interval of a slot.
func Interval(s *models.Slot) timeslot.Interval {
	return timeslot.Interval{
		DayOfWeek: s.DayOfWeek,
		Open:      timeslot.MinuteOfDay(s.OpenMinute),
		Close:     timeslot.MinuteOfDay(s.CloseMinute),
	}
}

// ValidateWindow checks the standalone invariants of one slot window.
func ValidateWindow(dayOfWeek int, open, close timeslot.MinuteOfDay) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return httperr.ErrInvalid("invalid_day_of_week",
			fmt.Sprintf("day of week %d must be between 0 (Sunday) and 6 (Saturday)", dayOfWeek))
	}
	if !open.Valid() || !close.Valid() {
		return httperr.ErrInvalid("invalid_time_format", "time out of range")
	}
	if close <= open {
		return httperr.ErrInvalid("close_before_open",
			fmt.Sprintf("close time %s must be after open time %s", close.Format(), open.Format()))
	}
	return nil
}

// ValidateChain checks that a fetched slot set can back one reservation
// on the given date: same unit, same weekday matching the date, and one
// contiguous span once sorted by open time. Slots are sorted in place.
func ValidateChain(slots []models.Slot, date time.Time) error {
	if len(slots) == 0 {
		return httperr.ErrInvalid("no_slots", "at least one slot is required")
	}

	for _, s := range slots {
		if s.UnitID != slots[0].UnitID {
			return httperr.ErrInvalid("slots_unit_mismatch",
				"all slots must belong to the same unit")
		}
	}

	weekday := int(date.Weekday())
	for _, s := range slots {
		if s.DayOfWeek != slots[0].DayOfWeek || s.DayOfWeek != weekday {
			return httperr.ErrInvalid("weekday_mismatch",
				"all slots must be of the same day of week as the reservation")
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].OpenMinute < slots[j].OpenMinute
	})

	for i := 0; i+1 < len(slots); i++ {
		if !timeslot.Contiguous(Interval(&slots[i]), Interval(&slots[i+1])) {
			return httperr.ErrInvalid("slots_not_contiguous",
				"all slots must be contiguous in time")
		}
	}

	return nil
}
