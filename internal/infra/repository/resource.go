package repository

import (
	"context"
	"time"

	"adspace-backend/internal/infra"
	"adspace-backend/internal/infra/db"
	"adspace-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceRepository struct {
	db db.DBTX
}

func NewResourceRepository(dbtx db.DBTX) *ResourceRepository {
	return &ResourceRepository{db: dbtx}
}

// FindByIDForUpdate locks the resource row until the enclosing transaction
// ends. All coordinator commands take this lock first, so writes on one
// resource serialize without affecting other resources.
func (r *ResourceRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	const query = `
		SELECT id, tenant_id, name, available
		FROM resources
		WHERE tenant_id = $1 AND id = $2
		FOR UPDATE`

	var snap shared.ResourceSnapshot
	err := r.db.QueryRow(ctx, query, tenantID, id).Scan(&snap.ID, &snap.TenantID, &snap.Name, &snap.Available)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock resource row", err)
	}
	return &snap, nil
}

func (r *ResourceRepository) SetAvailable(ctx context.Context, tenantID, id uuid.UUID, available bool) (bool, error) {
	const query = `
		UPDATE resources
		SET available = $3, updated_at = now()
		WHERE tenant_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, tenantID, id, available)
	if err != nil {
		return false, infra.WrapRepoErr("failed to set resource availability", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ResourceRepository) IsCurrentlyBooked(ctx context.Context, tenantID, id uuid.UUID, ref time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE tenant_id = $1
			  AND resource_id = $2
			  AND start_date <= $3
			  AND end_date >= $3
		)`

	var booked bool
	if err := r.db.QueryRow(ctx, query, tenantID, id, ref).Scan(&booked); err != nil {
		return false, infra.WrapRepoErr("failed to check current booking", err)
	}
	return booked, nil
}
