//go:build unit

package resource_test

import (
	"testing"

	"adspace-backend/internal/domain/resource"
	"adspace-backend/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name        string
		available   bool
		bookedToday bool
		want        resource.Status
	}{
		{"available and free", true, false, resource.StatusAvailable},
		{"booked today", true, true, resource.StatusBooked},
		{"maintenance", false, false, resource.StatusMaintenance},
		{"booked wins over maintenance flag", false, true, resource.StatusBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resource.DeriveStatus(tt.available, tt.bookedToday))
		})
	}
}

func TestToggleMaintenance(t *testing.T) {
	t.Run("enter maintenance when free", func(t *testing.T) {
		r := builder.NewResourceBuilder().BuildDomain()
		require.True(t, r.Available())

		err := r.ToggleMaintenance(false)
		require.NoError(t, err)
		assert.False(t, r.Available())
		assert.Equal(t, resource.StatusMaintenance, r.Status(false))
	})

	t.Run("enter maintenance rejected while booked", func(t *testing.T) {
		r := builder.NewResourceBuilder().BuildDomain()

		err := r.ToggleMaintenance(true)
		assert.ErrorIs(t, err, resource.ErrCurrentlyBooked)
		assert.True(t, r.Available())
	})

	t.Run("booked resource cannot be released by toggling", func(t *testing.T) {
		// available=false because a reservation is active today
		r := builder.NewResourceBuilder().
			With(func(b *builder.ResourceBuilder) { b.Available = false }).
			BuildDomain()

		err := r.ToggleMaintenance(true)
		assert.ErrorIs(t, err, resource.ErrCurrentlyBooked)
		assert.False(t, r.Available())
		assert.Equal(t, resource.StatusBooked, r.Status(true))
	})

	t.Run("leave maintenance", func(t *testing.T) {
		r := builder.NewResourceBuilder().
			With(func(b *builder.ResourceBuilder) { b.Available = false }).
			BuildDomain()

		err := r.ToggleMaintenance(false)
		require.NoError(t, err)
		assert.True(t, r.Available())
		assert.Equal(t, resource.StatusAvailable, r.Status(false))
	})

	t.Run("toggle is its own inverse", func(t *testing.T) {
		r := builder.NewResourceBuilder().BuildDomain()

		require.NoError(t, r.ToggleMaintenance(false))
		require.NoError(t, r.ToggleMaintenance(false))
		assert.True(t, r.Available())
	})
}
