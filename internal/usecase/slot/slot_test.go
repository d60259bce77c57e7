package slot

import (
	"context"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtspace/court-scheduler/internal/audit"
	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/models"
	"github.com/courtspace/court-scheduler/internal/timeslot"
)

// ======================================================
// FAKES
// ======================================================

type fakeSlotRepo struct {
	slots  map[uint]models.Slot
	nextID uint
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[uint]models.Slot), nextID: 1}
}

func (r *fakeSlotRepo) overlapping(s *models.Slot) []models.Slot {
	var out []models.Slot
	for _, other := range r.slots {
		if other.ID == s.ID || other.UnitID != s.UnitID || !other.Active {
			continue
		}
		if timeslot.Overlaps(schedule.Interval(s), schedule.Interval(&other)) {
			out = append(out, other)
		}
	}
	return out
}

func (r *fakeSlotRepo) CreateSlot(_ context.Context, s *models.Slot) error {
	if len(r.overlapping(s)) > 0 {
		return httperr.ErrConflict("slot_overlap", "overlapping slot already exists")
	}
	s.ID = r.nextID
	r.nextID++
	r.slots[s.ID] = *s
	return nil
}

func (r *fakeSlotRepo) UpdateSlot(_ context.Context, s *models.Slot) error {
	if len(r.overlapping(s)) > 0 {
		return httperr.ErrConflict("slot_overlap", "overlapping slot already exists")
	}
	r.slots[s.ID] = *s
	return nil
}

func (r *fakeSlotRepo) DeleteSlot(_ context.Context, id uint) error {
	delete(r.slots, id)
	return nil
}

func (r *fakeSlotRepo) GetSlot(_ context.Context, id uint) (*models.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSlotRepo) FindSlots(
	_ context.Context,
	f schedule.SlotFilter,
	p schedule.Pagination,
) ([]models.Slot, int64, error) {

	var out []models.Slot
	for _, s := range r.slots {
		if f.UnitID != nil && s.UnitID != *f.UnitID {
			continue
		}
		if f.DayOfWeek != nil && s.DayOfWeek != *f.DayOfWeek {
			continue
		}
		if len(f.IDs) > 0 {
			found := false
			for _, id := range f.IDs {
				if s.ID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))

	if p.Offset > 0 {
		if p.Offset >= len(out) {
			out = nil
		} else {
			out = out[p.Offset:]
		}
	}
	if p.Limit > 0 && p.Limit < len(out) {
		out = out[:p.Limit]
	}

	return out, total, nil
}

type fakeUnits struct {
	existing map[uint]bool
}

func (u *fakeUnits) UnitExists(_ context.Context, id uint) (bool, error) {
	return u.existing[id], nil
}

type nopAudit struct{}

func (nopAudit) Log(*uint, string, string, *uint, any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopAudit{}, zerolog.Nop())
}

var _ schedule.SlotRepository = (*fakeSlotRepo)(nil)

// ======================================================
// CREATE
// ======================================================

func TestCreateSlot(t *testing.T) {
	ctx := context.Background()

	setup := func() (*CreateSlot, *fakeSlotRepo) {
		repo := newFakeSlotRepo()
		units := &fakeUnits{existing: map[uint]bool{1: true}}
		return NewCreateSlot(repo, units, newTestDispatcher()), repo
	}

	t.Run("success", func(t *testing.T) {
		uc, _ := setup()
		s, err := uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 5,
			OpenTime: "09:00", CloseTime: "10:00",
		})
		require.NoError(t, err)
		assert.NotZero(t, s.ID)
		assert.True(t, s.Active)
		assert.Equal(t, 540, s.OpenMinute)
		assert.Equal(t, 600, s.CloseMinute)
	})

	t.Run("touching slots both succeed", func(t *testing.T) {
		uc, _ := setup()
		_, err := uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 5,
			OpenTime: "09:00", CloseTime: "10:00",
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 5,
			OpenTime: "10:00", CloseTime: "11:00",
		})
		require.NoError(t, err)
	})

	t.Run("overlapping window is a conflict", func(t *testing.T) {
		uc, _ := setup()
		_, err := uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 5,
			OpenTime: "09:00", CloseTime: "10:00",
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 5,
			OpenTime: "08:00", CloseTime: "09:30",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	})

	t.Run("same window on another day succeeds", func(t *testing.T) {
		uc, _ := setup()
		_, err := uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 5,
			OpenTime: "09:00", CloseTime: "10:00",
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 6,
			OpenTime: "09:00", CloseTime: "10:00",
		})
		require.NoError(t, err)
	})

	t.Run("unknown unit", func(t *testing.T) {
		uc, _ := setup()
		_, err := uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 99, DayOfWeek: 5,
			OpenTime: "09:00", CloseTime: "10:00",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})

	t.Run("malformed time", func(t *testing.T) {
		uc, _ := setup()
		_, err := uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 5,
			OpenTime: "9am", CloseTime: "10:00",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_time_format"))
	})

	t.Run("close before open", func(t *testing.T) {
		uc, _ := setup()
		_, err := uc.Execute(ctx, CreateSlotInput{
			OwnerID: 7, UnitID: 1, DayOfWeek: 5,
			OpenTime: "10:00", CloseTime: "09:00",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "close_before_open"))
	})
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateSlot(t *testing.T) {
	ctx := context.Background()

	setup := func() (*UpdateSlot, *fakeSlotRepo, *fakeUnits) {
		repo := newFakeSlotRepo()
		units := &fakeUnits{existing: map[uint]bool{1: true, 2: true}}
		repo.slots[1] = models.Slot{
			ID: 1, UnitID: 1, DayOfWeek: 5,
			OpenMinute: 540, CloseMinute: 600, Active: true,
		}
		repo.slots[2] = models.Slot{
			ID: 2, UnitID: 1, DayOfWeek: 5,
			OpenMinute: 600, CloseMinute: 660, Active: true,
		}
		repo.nextID = 3
		return NewUpdateSlot(repo, units, newTestDispatcher()), repo, units
	}

	str := func(s string) *string { return &s }

	t.Run("unsupplied fields retain prior values", func(t *testing.T) {
		uc, repo, _ := setup()
		s, err := uc.Execute(ctx, UpdateSlotInput{
			OwnerID: 7, ID: 1,
			CloseTime: str("09:45"),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), s.UnitID)
		assert.Equal(t, 5, s.DayOfWeek)
		assert.Equal(t, 540, s.OpenMinute)
		assert.Equal(t, 585, s.CloseMinute)
		assert.Equal(t, 585, repo.slots[1].CloseMinute)
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, _ := setup()
		_, err := uc.Execute(ctx, UpdateSlotInput{OwnerID: 7, ID: 99, OpenTime: str("08:00")})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})

	t.Run("merged overlap is a conflict", func(t *testing.T) {
		uc, _, _ := setup()
		// stretch slot 1 into slot 2
		_, err := uc.Execute(ctx, UpdateSlotInput{OwnerID: 7, ID: 1, CloseTime: str("10:30")})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	})

	t.Run("own window is excluded from the overlap check", func(t *testing.T) {
		uc, _, _ := setup()
		_, err := uc.Execute(ctx, UpdateSlotInput{OwnerID: 7, ID: 1, OpenTime: str("09:15")})
		require.NoError(t, err)
	})

	t.Run("unit change re-verifies existence", func(t *testing.T) {
		uc, _, units := setup()
		unitID := uint(3)
		_, err := uc.Execute(ctx, UpdateSlotInput{OwnerID: 7, ID: 1, UnitID: &unitID})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

		units.existing[3] = true
		_, err = uc.Execute(ctx, UpdateSlotInput{OwnerID: 7, ID: 1, UnitID: &unitID})
		require.NoError(t, err)
	})
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteSlotIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSlotRepo()
	repo.slots[1] = models.Slot{ID: 1, UnitID: 1, DayOfWeek: 5, OpenMinute: 540, CloseMinute: 600, Active: true}

	uc := NewDeleteSlot(repo, newTestDispatcher())

	require.NoError(t, uc.Execute(ctx, 7, 1))
	assert.Empty(t, repo.slots)

	// deleting an absent id succeeds, repeatably
	require.NoError(t, uc.Execute(ctx, 7, 1))
	require.NoError(t, uc.Execute(ctx, 7, 99))
}

// ======================================================
// LIST
// ======================================================

func TestListSlots(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSlotRepo()
	for i := uint(1); i <= 5; i++ {
		repo.slots[i] = models.Slot{
			ID: i, UnitID: 1 + i%2, DayOfWeek: 5,
			OpenMinute: int(540 + 60*i), CloseMinute: int(600 + 60*i), Active: true,
		}
	}

	uc := NewListSlots(repo)

	unitID := uint(1)
	slots, total, err := uc.Execute(ctx, schedule.SlotFilter{UnitID: &unitID}, schedule.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, slots, 2)

	// total ignores the pagination window
	slots, total, err = uc.Execute(ctx, schedule.SlotFilter{}, schedule.Pagination{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, slots, 2)
	assert.Equal(t, uint(1), slots[0].ID)
	assert.Equal(t, uint(2), slots[1].ID)
}
