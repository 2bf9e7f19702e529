package resource

import (
	"errors"

	"github.com/google/uuid"
)

var ErrCurrentlyBooked = errors.New("resource is currently booked")

// Status is the externally visible availability state. Only the boolean
// flag is persisted; the three-state view is derived from the flag plus
// whether any reservation is active today.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusMaintenance Status = "maintenance"
)

// DeriveStatus computes the visible state. An active reservation always
// wins: a resource cannot be in maintenance while booked.
func DeriveStatus(available, bookedToday bool) Status {
	switch {
	case bookedToday:
		return StatusBooked
	case !available:
		return StatusMaintenance
	default:
		return StatusAvailable
	}
}

// Resource is the rentable entity (a billboard face). The available flag is
// derived state: false iff a reservation is active today or the resource is
// under manual maintenance.
type Resource struct {
	id        uuid.UUID
	tenantID  uuid.UUID
	name      string
	available bool
}

func ReconstructResource(id, tenantID uuid.UUID, name string, available bool) *Resource {
	return &Resource{
		id:        id,
		tenantID:  tenantID,
		name:      name,
		available: available,
	}
}

// ToggleMaintenance flips the manual override. Any toggle is rejected while
// a reservation occupies the resource today: a booked resource can neither
// enter maintenance nor be released early.
func (r *Resource) ToggleMaintenance(bookedToday bool) error {
	if bookedToday {
		return ErrCurrentlyBooked
	}
	r.available = !r.available
	return nil
}

func (r *Resource) Status(bookedToday bool) Status {
	return DeriveStatus(r.available, bookedToday)
}

func (r *Resource) ID() uuid.UUID       { return r.id }
func (r *Resource) TenantID() uuid.UUID { return r.tenantID }
func (r *Resource) Name() string        { return r.name }
func (r *Resource) Available() bool     { return r.available }
