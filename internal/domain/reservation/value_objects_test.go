//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"adspace-backend/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := reservation.NewDateRange(day(2026, 9, 1), day(2026, 9, 7))
		require.NoError(t, err)
		assert.Equal(t, day(2026, 9, 1), r.Start())
		assert.Equal(t, day(2026, 9, 7), r.End())
		assert.Equal(t, 7, r.Days())
	})

	t.Run("single day range", func(t *testing.T) {
		r, err := reservation.NewDateRange(day(2026, 9, 1), day(2026, 9, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := reservation.NewDateRange(day(2026, 9, 7), day(2026, 9, 1))
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		r, err := reservation.NewDateRange(
			time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 0, 1, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, day(2026, 9, 1), r.Start())
		assert.Equal(t, day(2026, 9, 1), r.End())
	})

	t.Run("non-UTC input normalizes to UTC date", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*3600)
		r, err := reservation.NewDateRange(
			time.Date(2026, 9, 2, 3, 0, 0, 0, loc), // 2026-09-01T18:00Z
			time.Date(2026, 9, 5, 3, 0, 0, 0, loc),
		)
		require.NoError(t, err)
		assert.Equal(t, day(2026, 9, 1), r.Start())
		assert.Equal(t, day(2026, 9, 4), r.End())
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := func(t *testing.T) reservation.DateRange {
		return mustRange(t, day(2026, 9, 10), day(2026, 9, 20))
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical", day(2026, 9, 10), day(2026, 9, 20), true},
		{"fully inside", day(2026, 9, 12), day(2026, 9, 15), true},
		{"fully containing", day(2026, 9, 1), day(2026, 9, 30), true},
		{"partial front", day(2026, 9, 5), day(2026, 9, 10), true},
		{"partial back", day(2026, 9, 20), day(2026, 9, 25), true},
		{"shared boundary day at start", day(2026, 9, 1), day(2026, 9, 10), true},
		{"shared boundary day at end", day(2026, 9, 20), day(2026, 9, 28), true},
		{"adjacent before", day(2026, 9, 1), day(2026, 9, 9), false},
		{"adjacent after", day(2026, 9, 21), day(2026, 9, 28), false},
		{"disjoint before", day(2026, 9, 1), day(2026, 9, 5), false},
		{"disjoint after", day(2026, 9, 25), day(2026, 9, 28), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mustRange(t, tt.start, tt.end)
			assert.Equal(t, tt.want, base(t).Overlaps(other))
			// Overlap is symmetric
			assert.Equal(t, tt.want, other.Overlaps(base(t)))
		})
	}
}

func TestDateRangeActiveOn(t *testing.T) {
	r := mustRange(t, day(2026, 9, 10), day(2026, 9, 20))

	assert.True(t, r.ActiveOn(day(2026, 9, 10)))
	assert.True(t, r.ActiveOn(day(2026, 9, 15)))
	assert.True(t, r.ActiveOn(day(2026, 9, 20)))
	assert.False(t, r.ActiveOn(day(2026, 9, 9)))
	assert.False(t, r.ActiveOn(day(2026, 9, 21)))

	t.Run("reference time of day is ignored", func(t *testing.T) {
		assert.True(t, r.ActiveOn(time.Date(2026, 9, 20, 23, 30, 0, 0, time.UTC)))
	})
}

func TestDateRangeString(t *testing.T) {
	r := mustRange(t, day(2026, 9, 1), day(2026, 9, 7))
	assert.Equal(t, "[2026-09-01,2026-09-07]", r.String())
}
