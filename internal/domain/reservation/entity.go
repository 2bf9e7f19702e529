package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingTenant   = errors.New("tenant id is required")
	ErrMissingResource = errors.New("resource id is required")
	ErrMissingClient   = errors.New("client id is required")
)

// Reservation binds a client to a resource for a closed date range within
// one tenant. Immutable after creation; the only lifecycle transition is
// deletion through cancellation.
type Reservation struct {
	id         uuid.UUID
	tenantID   uuid.UUID
	resourceID uuid.UUID
	clientID   uuid.UUID
	period     DateRange
	createdAt  time.Time
}

func NewReservation(tenantID, resourceID, clientID uuid.UUID, period DateRange) (*Reservation, error) {
	if tenantID == uuid.Nil {
		return nil, ErrMissingTenant
	}
	if resourceID == uuid.Nil {
		return nil, ErrMissingResource
	}
	if clientID == uuid.Nil {
		return nil, ErrMissingClient
	}

	return &Reservation{
		id:         uuid.New(),
		tenantID:   tenantID,
		resourceID: resourceID,
		clientID:   clientID,
		period:     period,
	}, nil
}

func ReconstructReservation(
	id, tenantID, resourceID, clientID uuid.UUID,
	period DateRange,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		tenantID:   tenantID,
		resourceID: resourceID,
		clientID:   clientID,
		period:     period,
		createdAt:  createdAt,
	}
}

// ActiveOn reports whether the reservation occupies its resource on ref's date.
func (r *Reservation) ActiveOn(ref time.Time) bool {
	return r.period.ActiveOn(ref)
}

// ConflictsWith reports whether two reservations compete for the same
// resource on at least one day.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.tenantID != other.tenantID || r.resourceID != other.resourceID {
		return false
	}
	return r.period.Overlaps(other.period)
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) TenantID() uuid.UUID   { return r.tenantID }
func (r *Reservation) ResourceID() uuid.UUID { return r.resourceID }
func (r *Reservation) ClientID() uuid.UUID   { return r.clientID }
func (r *Reservation) Period() DateRange     { return r.period }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
