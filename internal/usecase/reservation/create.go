package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/courtspace/court-scheduler/internal/audit"
	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/metrics"
	"github.com/courtspace/court-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	UserID          uint
	ReservationDate time.Time
	SlotIDs         []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	reservations schedule.ReservationRepository
	slots        schedule.SlotRepository
	audit        *audit.Dispatcher
}

func NewCreateReservation(
	reservations schedule.ReservationRepository,
	slots schedule.SlotRepository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		reservations: reservations,
		slots:        slots,
		audit:        audit,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, []models.Slot, error) {

	if len(in.SlotIDs) == 0 {
		return nil, nil, httperr.ErrInvalid("no_slots", "at least one slot is required")
	}

	seen := make(map[uint]struct{}, len(in.SlotIDs))
	for _, id := range in.SlotIDs {
		if _, dup := seen[id]; dup {
			return nil, nil, httperr.ErrInvalid("duplicate_slots",
				fmt.Sprintf("slot %d is referenced more than once", id))
		}
		seen[id] = struct{}{}
	}

	date := normalizeDate(in.ReservationDate)

	// Cheap short-circuit before fetching slot metadata. The
	// authoritative check runs again inside CreateConfirmed's
	// transaction.
	count, err := uc.reservations.CountConfirmedForSlots(ctx, date, in.SlotIDs)
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		metrics.IncBookingConflict()
		return nil, nil, httperr.ErrAlreadyExists("already_booked",
			"One or more slots are already booked")
	}

	slots, _, err := uc.slots.FindSlots(
		ctx,
		schedule.SlotFilter{IDs: in.SlotIDs},
		schedule.Pagination{},
	)
	if err != nil {
		return nil, nil, err
	}

	if len(slots) != len(in.SlotIDs) {
		return nil, nil, httperr.ErrNotFound("slot_not_found",
			fmt.Sprintf("Slots: %s not found", missingIDs(in.SlotIDs, slots)))
	}

	if err := schedule.ValidateChain(slots, date); err != nil {
		return nil, nil, err
	}

	res := &models.Reservation{
		UserID:          in.UserID,
		ReservationDate: date,
		Status:          string(schedule.InitialStatus()),
	}

	if err := uc.reservations.CreateConfirmed(ctx, res, in.SlotIDs); err != nil {
		if httperr.IsKind(err, httperr.KindAlreadyExists) {
			metrics.IncBookingConflict()
		}
		return nil, nil, err
	}

	metrics.IncReservationCreated()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{"slot_ids": in.SlotIDs},
	})

	return res, slots, nil
}

// normalizeDate strips the time-of-day so equality filters on the date
// column behave.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func missingIDs(wanted []uint, found []models.Slot) string {
	have := make(map[uint]struct{}, len(found))
	for _, s := range found {
		have[s.ID] = struct{}{}
	}
	var missing []string
	for _, id := range wanted {
		if _, ok := have[id]; !ok {
			missing = append(missing, fmt.Sprintf("%d", id))
		}
	}
	return strings.Join(missing, ", ")
}
