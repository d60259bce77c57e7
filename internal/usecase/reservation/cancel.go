package reservation

import (
	"context"
	"fmt"

	"github.com/courtspace/court-scheduler/internal/audit"
	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/models"
)

type CancelReservation struct {
	reservations schedule.ReservationRepository
	audit        *audit.Dispatcher
}

func NewCancelReservation(
	reservations schedule.ReservationRepository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		reservations: reservations,
		audit:        audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	userID uint,
	id uint,
) (*models.Reservation, error) {

	res, err := uc.reservations.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, httperr.ErrNotFound("reservation_not_found",
			fmt.Sprintf("Reservation: %d not found", id))
	}

	schedule.Cancel(res)

	if err := uc.reservations.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
