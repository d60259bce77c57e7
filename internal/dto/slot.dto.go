package dto

import (
	"time"

	"github.com/courtspace/court-scheduler/internal/models"
	"github.com/courtspace/court-scheduler/internal/timeslot"
)

// SlotDTO is the wire form of a slot: times as "HH:MM" strings.
type SlotDTO struct {
	ID        uint      `json:"id"`
	UnitID    uint      `json:"unit_id"`
	DayOfWeek int       `json:"day_of_week"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func SlotFromModel(s *models.Slot) SlotDTO {
	return SlotDTO{
		ID:        s.ID,
		UnitID:    s.UnitID,
		DayOfWeek: s.DayOfWeek,
		OpenTime:  timeslot.MinuteOfDay(s.OpenMinute).Format(),
		CloseTime: timeslot.MinuteOfDay(s.CloseMinute).Format(),
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func SlotsFromModels(slots []models.Slot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for i := range slots {
		out = append(out, SlotFromModel(&slots[i]))
	}
	return out
}
