package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/models"
)

// 2026-01-02 is a Friday (weekday 5).
var friday = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

func slot(id, unitID uint, day, open, close int) models.Slot {
	return models.Slot{
		ID:          id,
		UnitID:      unitID,
		DayOfWeek:   day,
		OpenMinute:  open,
		CloseMinute: close,
		Active:      true,
	}
}

func TestValidateWindow(t *testing.T) {
	require.NoError(t, ValidateWindow(5, 540, 600))

	err := ValidateWindow(5, 600, 600)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "close_before_open"))

	err = ValidateWindow(5, 600, 540)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "close_before_open"))

	err = ValidateWindow(7, 540, 600)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_day_of_week"))
}

func TestValidateChain(t *testing.T) {
	t.Run("single slot", func(t *testing.T) {
		slots := []models.Slot{slot(1, 1, 5, 540, 600)}
		require.NoError(t, ValidateChain(slots, friday))
	})

	t.Run("contiguous pair in any input order", func(t *testing.T) {
		slots := []models.Slot{
			slot(2, 1, 5, 600, 660),
			slot(1, 1, 5, 540, 600),
		}
		require.NoError(t, ValidateChain(slots, friday))
		// sorted in place by open time
		assert.Equal(t, uint(1), slots[0].ID)
	})

	t.Run("gap", func(t *testing.T) {
		slots := []models.Slot{
			slot(1, 1, 5, 540, 600),
			slot(2, 1, 5, 660, 720),
		}
		err := ValidateChain(slots, friday)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "slots_not_contiguous"))
	})

	t.Run("overlapping entries", func(t *testing.T) {
		slots := []models.Slot{
			slot(1, 1, 5, 540, 630),
			slot(2, 1, 5, 600, 660),
		}
		err := ValidateChain(slots, friday)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "slots_not_contiguous"))
	})

	t.Run("unit mismatch", func(t *testing.T) {
		slots := []models.Slot{
			slot(1, 1, 5, 540, 600),
			slot(2, 2, 5, 600, 660),
		}
		err := ValidateChain(slots, friday)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "slots_unit_mismatch"))
	})

	t.Run("weekday mismatch with date", func(t *testing.T) {
		slots := []models.Slot{slot(1, 1, 4, 540, 600)}
		err := ValidateChain(slots, friday)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "weekday_mismatch"))
	})

	t.Run("mixed weekdays", func(t *testing.T) {
		slots := []models.Slot{
			slot(1, 1, 5, 540, 600),
			slot(2, 1, 4, 600, 660),
		}
		err := ValidateChain(slots, friday)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "weekday_mismatch"))
	})

	t.Run("empty", func(t *testing.T) {
		err := ValidateChain(nil, friday)
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument))
	})
}
