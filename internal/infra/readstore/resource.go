package readstore

import (
	"context"

	"adspace-backend/internal/infra"
	"adspace-backend/internal/infra/db"
	"adspace-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(dbtx db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: dbtx}
}

// FindByID reads the flag together with whether any reservation is active
// today, so callers can derive the three-state status from one snapshot.
func (r *ResourceReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*queries.ResourceRow, error) {
	const query = `
		SELECT r.id, r.tenant_id, r.name, r.available,
		       EXISTS (
		           SELECT 1 FROM reservations b
		           WHERE b.tenant_id = r.tenant_id
		             AND b.resource_id = r.id
		             AND b.start_date <= (now() AT TIME ZONE 'utc')::date
		             AND b.end_date >= (now() AT TIME ZONE 'utc')::date
		       ) AS booked_today,
		       r.created_at, r.updated_at
		FROM resources r
		WHERE r.tenant_id = $1 AND r.id = $2`

	var row queries.ResourceRow
	err := r.db.QueryRow(ctx, query, tenantID, id).Scan(
		&row.ID, &row.TenantID, &row.Name, &row.Available,
		&row.BookedToday, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return &row, nil
}
