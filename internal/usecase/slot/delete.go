package slot

import (
	"context"

	"github.com/courtspace/court-scheduler/internal/audit"
	"github.com/courtspace/court-scheduler/internal/domain/schedule"
)

type DeleteSlot struct {
	slots schedule.SlotRepository
	audit *audit.Dispatcher
}

func NewDeleteSlot(
	slots schedule.SlotRepository,
	audit *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		slots: slots,
		audit: audit,
	}
}

// Execute deletes a slot. Deleting an id that does not exist is a
// success with no side effect, not an error.
func (uc *DeleteSlot) Execute(ctx context.Context, ownerID, id uint) error {
	if err := uc.slots.DeleteSlot(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "slot_deleted",
		Entity:   "slot",
		EntityID: &id,
	})

	return nil
}
