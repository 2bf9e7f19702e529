package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	ClientID   uuid.UUID `json:"client_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ReservationView, error)
	// ListByResource re-queries on every call and returns reservations
	// ordered by start date, most recent first.
	ListByResource(ctx context.Context, tenantID, resourceID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*ReservationView, error)
	FindByResource(ctx context.Context, tenantID, resourceID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ReservationView, error) {
	return q.store.FindByID(ctx, tenantID, id)
}

func (q *reservationQueriesImpl) ListByResource(ctx context.Context, tenantID, resourceID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByResource(ctx, tenantID, resourceID)
}
