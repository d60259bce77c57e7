package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtspace/court-scheduler/internal/httperr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    MinuteOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"09-30", 0, true},
		{"09:3a", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
		{"09:300", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "00:01", "08:00", "12:34", "23:59"} {
		m, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.Format())
	}
}

func TestOverlaps(t *testing.T) {
	iv := func(day int, open, close string) Interval {
		o, err := Parse(open)
		require.NoError(t, err)
		c, err := Parse(close)
		require.NoError(t, err)
		return Interval{DayOfWeek: day, Open: o, Close: c}
	}

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", iv(1, "09:00", "10:00"), iv(1, "09:00", "10:00"), true},
		{"partial overlap", iv(1, "08:00", "09:30"), iv(1, "09:00", "10:00"), true},
		{"containment", iv(1, "08:00", "12:00"), iv(1, "09:00", "10:00"), true},
		{"touching is not overlap", iv(1, "09:00", "10:00"), iv(1, "10:00", "11:00"), false},
		{"touching reversed", iv(1, "10:00", "11:00"), iv(1, "09:00", "10:00"), false},
		{"disjoint", iv(1, "08:00", "09:00"), iv(1, "10:00", "11:00"), false},
		{"different days", iv(1, "09:00", "10:00"), iv(2, "09:00", "10:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestContiguous(t *testing.T) {
	iv := func(open, close string) Interval {
		o, _ := Parse(open)
		c, _ := Parse(close)
		return Interval{DayOfWeek: 5, Open: o, Close: c}
	}

	assert.True(t, Contiguous(iv("09:00", "10:00"), iv("10:00", "11:00")))
	assert.False(t, Contiguous(iv("10:00", "11:00"), iv("09:00", "10:00")), "contiguity is directional")
	assert.False(t, Contiguous(iv("09:00", "10:00"), iv("11:00", "12:00")))
}
