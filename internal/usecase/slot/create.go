package slot

import (
	"context"
	"fmt"

	"github.com/courtspace/court-scheduler/internal/audit"
	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/metrics"
	"github.com/courtspace/court-scheduler/internal/models"
	"github.com/courtspace/court-scheduler/internal/timeslot"
)

// ======================================================
// INPUT
// ======================================================

type CreateSlotInput struct {
	OwnerID   uint
	UnitID    uint
	DayOfWeek int
	OpenTime  string
	CloseTime string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSlot struct {
	slots schedule.SlotRepository
	units schedule.UnitDirectory
	audit *audit.Dispatcher
}

func NewCreateSlot(
	slots schedule.SlotRepository,
	units schedule.UnitDirectory,
	audit *audit.Dispatcher,
) *CreateSlot {
	return &CreateSlot{
		slots: slots,
		units: units,
		audit: audit,
	}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.Slot, error) {

	open, err := timeslot.Parse(in.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := timeslot.Parse(in.CloseTime)
	if err != nil {
		return nil, err
	}

	if err := schedule.ValidateWindow(in.DayOfWeek, open, close); err != nil {
		return nil, err
	}

	exists, err := uc.units.UnitExists(ctx, in.UnitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrNotFound("unit_not_found",
			fmt.Sprintf("Unit: %d not found.", in.UnitID))
	}

	s := &models.Slot{
		UnitID:      in.UnitID,
		DayOfWeek:   in.DayOfWeek,
		OpenMinute:  int(open),
		CloseMinute: int(close),
		Active:      true,
	}

	// Overlap check and insert run in one transaction inside the
	// repository; a Conflict error names the offending slot ids.
	if err := uc.slots.CreateSlot(ctx, s); err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			metrics.IncSlotConflict()
		}
		return nil, err
	}

	metrics.IncSlotCreated()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: &s.ID,
	})

	return s, nil
}
