package queries

import (
	"context"
	"time"

	"adspace-backend/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID        uuid.UUID       `json:"id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	Name      string          `json:"name"`
	Available bool            `json:"available"`
	Status    resource.Status `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ResourceRow is what the read store returns before status derivation.
type ResourceRow struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Name        string
	Available   bool
	BookedToday bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ResourceQueries interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ResourceView, error)
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*ResourceRow, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ResourceView, error) {
	row, err := q.store.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return &ResourceView{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Name:      row.Name,
		Available: row.Available,
		Status:    resource.DeriveStatus(row.Available, row.BookedToday),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
