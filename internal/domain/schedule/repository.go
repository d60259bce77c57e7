package schedule

import (
	"context"
	"time"

	"github.com/courtspace/court-scheduler/internal/models"
)

type Pagination struct {
	Limit  int
	Offset int
}

type SlotFilter struct {
	UnitID    *uint
	DayOfWeek *int
	IDs       []uint
}

type ReservationFilter struct {
	UserID *uint
	Date   *time.Time
	Status *Status
}

// SlotRepository persists weekly slots. CreateSlot and UpdateSlot must
// run their overlap check and the write in one transaction so that two
// concurrent proposals of overlapping windows cannot both succeed.
type SlotRepository interface {
	CreateSlot(ctx context.Context, slot *models.Slot) error
	UpdateSlot(ctx context.Context, slot *models.Slot) error

	// DeleteSlot is idempotent: deleting an absent id is a success.
	DeleteSlot(ctx context.Context, id uint) error

	GetSlot(ctx context.Context, id uint) (*models.Slot, error)
	FindSlots(ctx context.Context, f SlotFilter, p Pagination) ([]models.Slot, int64, error)
}

// ReservationRepository persists reservations and their immutable slot
// links. CreateConfirmed must re-run the booked check and the insert in
// one transaction; the usecase-level pre-check alone is a race.
type ReservationRepository interface {
	CountConfirmedForSlots(ctx context.Context, date time.Time, slotIDs []uint) (int64, error)
	CreateConfirmed(ctx context.Context, res *models.Reservation, slotIDs []uint) error

	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, res *models.Reservation) error
	FindReservations(ctx context.Context, f ReservationFilter, p Pagination) ([]models.Reservation, int64, error)
}

// UnitDirectory answers whether a bookable unit exists. Implemented by
// the facilities repository, optionally behind a cache.
type UnitDirectory interface {
	UnitExists(ctx context.Context, unitID uint) (bool, error)
}
