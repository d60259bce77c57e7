package reservation

import (
	"context"

	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/models"
)

type ListReservations struct {
	reservations schedule.ReservationRepository
}

func NewListReservations(reservations schedule.ReservationRepository) *ListReservations {
	return &ListReservations{reservations: reservations}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	f schedule.ReservationFilter,
	p schedule.Pagination,
) ([]models.Reservation, int64, error) {
	return uc.reservations.FindReservations(ctx, f, p)
}
