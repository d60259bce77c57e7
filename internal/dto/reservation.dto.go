package dto

import (
	"time"

	"github.com/courtspace/court-scheduler/internal/models"
)

const DateLayout = "2006-01-02"

type ReservationSlotDTO struct {
	ID     uint `json:"id"`
	SlotID uint `json:"slot_id"`
}

type ReservationDTO struct {
	ID              uint                 `json:"id"`
	UserID          uint                 `json:"user_id"`
	ReservationDate string               `json:"reservation_date"`
	Status          string               `json:"status"`
	Slots           []ReservationSlotDTO `json:"slots"`
	SlotDetails     []SlotDTO            `json:"slot_details,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func ReservationFromModel(r *models.Reservation) ReservationDTO {
	links := make([]ReservationSlotDTO, 0, len(r.Slots))
	for _, l := range r.Slots {
		links = append(links, ReservationSlotDTO{ID: l.ID, SlotID: l.SlotID})
	}

	return ReservationDTO{
		ID:              r.ID,
		UserID:          r.UserID,
		ReservationDate: r.ReservationDate.Format(DateLayout),
		Status:          r.Status,
		Slots:           links,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func ReservationsFromModels(reservations []models.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(reservations))
	for i := range reservations {
		out = append(out, ReservationFromModel(&reservations[i]))
	}
	return out
}
