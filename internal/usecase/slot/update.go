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

// UpdateSlotInput is the explicit partial-update type: a nil field means
// "retain the prior value".
type UpdateSlotInput struct {
	OwnerID uint
	ID      uint

	UnitID    *uint   `json:"unit_id,omitempty"`
	DayOfWeek *int    `json:"day_of_week,omitempty"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSlot struct {
	slots schedule.SlotRepository
	units schedule.UnitDirectory
	audit *audit.Dispatcher
}

func NewUpdateSlot(
	slots schedule.SlotRepository,
	units schedule.UnitDirectory,
	audit *audit.Dispatcher,
) *UpdateSlot {
	return &UpdateSlot{
		slots: slots,
		units: units,
		audit: audit,
	}
}

func (uc *UpdateSlot) Execute(
	ctx context.Context,
	in UpdateSlotInput,
) (*models.Slot, error) {

	s, err := uc.slots.GetSlot(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, httperr.ErrNotFound("slot_not_found",
			fmt.Sprintf("Slot: %d not found", in.ID))
	}

	unitChanged := in.UnitID != nil && *in.UnitID != s.UnitID

	if in.UnitID != nil {
		s.UnitID = *in.UnitID
	}
	if in.DayOfWeek != nil {
		s.DayOfWeek = *in.DayOfWeek
	}
	if in.OpenTime != nil {
		open, err := timeslot.Parse(*in.OpenTime)
		if err != nil {
			return nil, err
		}
		s.OpenMinute = int(open)
	}
	if in.CloseTime != nil {
		close, err := timeslot.Parse(*in.CloseTime)
		if err != nil {
			return nil, err
		}
		s.CloseMinute = int(close)
	}
	if in.Active != nil {
		s.Active = *in.Active
	}

	if err := schedule.ValidateWindow(
		s.DayOfWeek,
		timeslot.MinuteOfDay(s.OpenMinute),
		timeslot.MinuteOfDay(s.CloseMinute),
	); err != nil {
		return nil, err
	}

	if unitChanged {
		exists, err := uc.units.UnitExists(ctx, s.UnitID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, httperr.ErrNotFound("unit_not_found",
				fmt.Sprintf("Unit: %d not found.", s.UnitID))
		}
	}

	// Re-runs the overlap check against all other slots of the merged
	// unit+day inside one transaction.
	if err := uc.slots.UpdateSlot(ctx, s); err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			metrics.IncSlotConflict()
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "slot_updated",
		Entity:   "slot",
		EntityID: &s.ID,
	})

	return s, nil
}
