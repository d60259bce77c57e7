package slot

import (
	"context"

	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/models"
)

type ListSlots struct {
	slots schedule.SlotRepository
}

func NewListSlots(slots schedule.SlotRepository) *ListSlots {
	return &ListSlots{slots: slots}
}

// Execute returns slots matching the filter ordered by id, plus a total
// count ignoring the pagination window.
func (uc *ListSlots) Execute(
	ctx context.Context,
	f schedule.SlotFilter,
	p schedule.Pagination,
) ([]models.Slot, int64, error) {
	return uc.slots.FindSlots(ctx, f, p)
}
