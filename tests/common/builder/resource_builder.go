//go:build unit || e2e

package builder

import (
	"time"

	domresource "adspace-backend/internal/domain/resource"
	"adspace-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Name        string
	Available   bool
	BookedToday bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	now := time.Now()
	return &ResourceBuilder{
		ID:          uuid.New(),
		TenantID:    uuid.New(),
		Name:        "Downtown Billboard A",
		Available:   true,
		BookedToday: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ResourceBuilder) BuildDomain() *domresource.Resource {
	return domresource.ReconstructResource(r.ID, r.TenantID, r.Name, r.Available)
}

func (r *ResourceBuilder) BuildRow() *queries.ResourceRow {
	return &queries.ResourceRow{
		ID:          r.ID,
		TenantID:    r.TenantID,
		Name:        r.Name,
		Available:   r.Available,
		BookedToday: r.BookedToday,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	return &queries.ResourceView{
		ID:        r.ID,
		TenantID:  r.TenantID,
		Name:      r.Name,
		Available: r.Available,
		Status:    domresource.DeriveStatus(r.Available, r.BookedToday),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
