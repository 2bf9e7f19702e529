package shared

import (
	"context"
	"time"

	"adspace-backend/internal/domain/reservation"

	"github.com/google/uuid"
)

// UnitOfWork is the transaction boundary the coordinator runs inside.
// Implementations decide isolation, timeout and retry policy; business
// logic never branches on the environment.
type UnitOfWork interface {
	// Within: full transaction for multi-step writes. The function's error
	// aborts the transaction; nil commits it.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Resources() ResourceRepository
}

// ReservationRepository is the write-side reservation store. Every method
// is tenant-scoped and runs inside the transaction the Tx was opened with.
type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*ReservationSnapshot, error)
	// FindConflicting returns any one reservation on the resource whose
	// closed date range overlaps period, or nil when the slot is free.
	FindConflicting(ctx context.Context, tenantID, resourceID uuid.UUID, period reservation.DateRange) (*ReservationSnapshot, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
	// FindOtherActiveOnResource returns a reservation other than excludingID
	// active on ref's date, or nil. Used during cancellation to decide
	// whether the resource flips back to available.
	FindOtherActiveOnResource(ctx context.Context, tenantID, resourceID, excludingID uuid.UUID, ref time.Time) (*ReservationSnapshot, error)
}

// ResourceRepository is the write-side availability store.
type ResourceRepository interface {
	// FindByIDForUpdate locks the resource row for the rest of the
	// transaction, serializing concurrent bookings per resource.
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*ResourceSnapshot, error)
	SetAvailable(ctx context.Context, tenantID, id uuid.UUID, available bool) (bool, error)
	IsCurrentlyBooked(ctx context.Context, tenantID, id uuid.UUID, ref time.Time) (bool, error)
}
