package readstore

import (
	"context"

	"adspace-backend/internal/infra"
	"adspace-backend/internal/infra/db"
	"adspace-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT id, tenant_id, resource_id, client_id, start_date, end_date, created_at
		FROM reservations
		WHERE tenant_id = $1 AND id = $2`

	var view queries.ReservationView
	err := r.db.QueryRow(ctx, query, tenantID, id).Scan(
		&view.ID, &view.TenantID, &view.ResourceID, &view.ClientID,
		&view.StartDate, &view.EndDate, &view.CreatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &view, nil
}

func (r *ReservationReadStore) FindByResource(ctx context.Context, tenantID, resourceID uuid.UUID) ([]*queries.ReservationView, error) {
	const query = `
		SELECT id, tenant_id, resource_id, client_id, start_date, end_date, created_at
		FROM reservations
		WHERE tenant_id = $1 AND resource_id = $2
		ORDER BY start_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, tenantID, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by resource", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var view queries.ReservationView
		if err := rows.Scan(
			&view.ID, &view.TenantID, &view.ResourceID, &view.ClientID,
			&view.StartDate, &view.EndDate, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}
