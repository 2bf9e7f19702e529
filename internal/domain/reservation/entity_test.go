//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"adspace-backend/internal/domain/reservation"
	"adspace-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.TenantID, actual.TenantID())
		assert.Equal(t, b.ResourceID, actual.ResourceID())
		assert.Equal(t, b.ClientID, actual.ClientID())
		assert.Equal(t, 7, actual.Period().Days())
	})

	t.Run("missing identifiers", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ReservationBuilder)
			errIs  error
		}{
			{
				name:   "nil tenant",
				mutate: func(b *builder.ReservationBuilder) { b.TenantID = uuid.Nil },
				errIs:  reservation.ErrMissingTenant,
			},
			{
				name:   "nil resource",
				mutate: func(b *builder.ReservationBuilder) { b.ResourceID = uuid.Nil },
				errIs:  reservation.ErrMissingResource,
			},
			{
				name:   "nil client",
				mutate: func(b *builder.ReservationBuilder) { b.ClientID = uuid.Nil },
				errIs:  reservation.ErrMissingClient,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()
				assert.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r1, err1 := b.BuildDomain()
		r2, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, r1.ID(), r2.ID())
	})
}

func TestReservationConflictsWith(t *testing.T) {
	tenantID := uuid.New()
	resourceID := uuid.New()

	build := func(t *testing.T, start, end time.Time) *reservation.Reservation {
		t.Helper()
		r, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.TenantID = tenantID
				b.ResourceID = resourceID
			}).
			WithDates(start, end).
			BuildDomain()
		require.NoError(t, err)
		return r
	}

	base := build(t, day(2026, 9, 10), day(2026, 9, 20))

	t.Run("overlapping same resource", func(t *testing.T) {
		other := build(t, day(2026, 9, 20), day(2026, 9, 25))
		assert.True(t, base.ConflictsWith(other))
	})

	t.Run("adjacent same resource", func(t *testing.T) {
		other := build(t, day(2026, 9, 21), day(2026, 9, 25))
		assert.False(t, base.ConflictsWith(other))
	})

	t.Run("overlapping dates on different resource", func(t *testing.T) {
		other, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.TenantID = tenantID }).
			WithDates(day(2026, 9, 10), day(2026, 9, 20)).
			BuildDomain()
		require.NoError(t, err)
		assert.False(t, base.ConflictsWith(other))
	})

	t.Run("overlapping dates on same resource id in another tenant", func(t *testing.T) {
		other, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ResourceID = resourceID }).
			WithDates(day(2026, 9, 10), day(2026, 9, 20)).
			BuildDomain()
		require.NoError(t, err)
		assert.False(t, base.ConflictsWith(other))
	})
}

func TestReservationActiveOn(t *testing.T) {
	r, err := builder.NewReservationBuilder().
		WithDates(day(2026, 9, 10), day(2026, 9, 20)).
		BuildDomain()
	require.NoError(t, err)

	assert.True(t, r.ActiveOn(day(2026, 9, 10)))
	assert.True(t, r.ActiveOn(day(2026, 9, 20)))
	assert.False(t, r.ActiveOn(day(2026, 9, 21)))
}
