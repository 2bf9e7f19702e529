package repository

import (
	"context"
	"time"

	"adspace-backend/internal/domain/reservation"
	"adspace-backend/internal/infra"
	"adspace-backend/internal/infra/db"
	"adspace-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, tenant_id, resource_id, client_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		res.ID(), res.TenantID(), res.ResourceID(), res.ClientID(),
		res.Period().Start(), res.Period().End(),
	).Scan(&id)
	if err != nil {
		if db.IsExclusionViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation period overlaps an existing one", err, infra.KindConflict)
		}
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("duplicate reservation id", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT id, tenant_id, resource_id, client_id, start_date, end_date, created_at
		FROM reservations
		WHERE tenant_id = $1 AND id = $2`

	snap, err := scanReservation(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return snap, nil
}

// FindConflicting uses the same closed-interval comparison the domain does:
// a.start <= b.end AND a.end >= b.start.
func (r *ReservationRepository) FindConflicting(
	ctx context.Context,
	tenantID, resourceID uuid.UUID,
	period reservation.DateRange,
) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT id, tenant_id, resource_id, client_id, start_date, end_date, created_at
		FROM reservations
		WHERE tenant_id = $1
		  AND resource_id = $2
		  AND start_date <= $4
		  AND end_date >= $3
		LIMIT 1`

	snap, err := scanReservation(r.db.QueryRow(ctx, query, tenantID, resourceID, period.Start(), period.End()))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find conflicting reservation", err)
	}
	return snap, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM reservations WHERE tenant_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReservationRepository) FindOtherActiveOnResource(
	ctx context.Context,
	tenantID, resourceID, excludingID uuid.UUID,
	ref time.Time,
) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT id, tenant_id, resource_id, client_id, start_date, end_date, created_at
		FROM reservations
		WHERE tenant_id = $1
		  AND resource_id = $2
		  AND id <> $3
		  AND start_date <= $4
		  AND end_date >= $4
		LIMIT 1`

	snap, err := scanReservation(r.db.QueryRow(ctx, query, tenantID, resourceID, excludingID, ref))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find other active reservation", err)
	}
	return snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*shared.ReservationSnapshot, error) {
	var snap shared.ReservationSnapshot
	err := row.Scan(
		&snap.ID, &snap.TenantID, &snap.ResourceID, &snap.ClientID,
		&snap.StartDate, &snap.EndDate, &snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
