package usecase

import (
	"context"
	"errors"
	"time"

	"adspace-backend/internal/domain/reservation"
	"adspace-backend/internal/domain/resource"
	"adspace-backend/internal/infra"
	"adspace-backend/internal/pkg/clock"
	"adspace-backend/internal/pkg/errs"
	"adspace-backend/internal/usecase/queries"
	"adspace-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrReservationConflict = errors.New("overlapping reservation")
	ErrResourceBooked      = errors.New("resource currently booked")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CreateReservationParams struct {
	ResourceID uuid.UUID
	ClientID   uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

// BookingCoordinator is the reservation/availability consistency engine.
// Each command runs the conflict check, the reservation write and the
// availability-flag write as one atomic unit; the available flag is never
// observable in a state inconsistent with the reservation set.
type BookingCoordinator interface {
	CreateReservation(ctx context.Context, tenantID uuid.UUID, p CreateReservationParams) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, tenantID, reservationID uuid.UUID) error
	ToggleMaintenance(ctx context.Context, tenantID, resourceID uuid.UUID) (*queries.ResourceView, error)
	ListReservationsForResource(ctx context.Context, tenantID, resourceID uuid.UUID) ([]*queries.ReservationView, error)
}

type bookingCoordinatorImpl struct {
	uow              shared.UnitOfWork
	reservationViews queries.ReservationQueries
	resourceViews    queries.ResourceQueries
	clock            clock.Clock
}

func NewBookingCoordinator(
	uow shared.UnitOfWork,
	reservationViews queries.ReservationQueries,
	resourceViews queries.ResourceQueries,
	clk clock.Clock,
) BookingCoordinator {
	return &bookingCoordinatorImpl{
		uow:              uow,
		reservationViews: reservationViews,
		resourceViews:    resourceViews,
		clock:            clk,
	}
}

func (c *bookingCoordinatorImpl) CreateReservation(
	ctx context.Context,
	tenantID uuid.UUID,
	p CreateReservationParams,
) (*queries.ReservationView, error) {
	period, err := reservation.NewDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	entity, err := reservation.NewReservation(tenantID, p.ResourceID, p.ClientID, period)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Row lock serializes all bookings on this resource for the rest of
		// the transaction and doubles as the existence check.
		if _, lockErr := tx.Resources().FindByIDForUpdate(ctx, tenantID, p.ResourceID); lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		conflict, findErr := tx.Reservations().FindConflicting(ctx, tenantID, p.ResourceID, period)
		if findErr != nil {
			return errs.Mark(findErr, ErrDatabaseOperationFailed)
		}
		if conflict != nil {
			return ErrReservationConflict
		}

		id, createErr := tx.Reservations().Create(ctx, entity)
		if createErr != nil {
			// The exclusion constraint is the backstop for races the row
			// lock did not cover (e.g. a concurrent insert committed between
			// our check and write under a lost lock).
			if infra.IsKind(createErr, infra.KindConflict) || infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrReservationConflict
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		createdID = id

		if period.ActiveOn(clock.Today(c.clock)) {
			matched, setErr := tx.Resources().SetAvailable(ctx, tenantID, p.ResourceID, false)
			if setErr != nil {
				return errs.Mark(setErr, ErrDatabaseOperationFailed)
			}
			if !matched {
				return ErrResourceNotFound
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: serve the committed row from the read store.
	view, err := c.reservationViews.GetByID(ctx, tenantID, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCoordinatorImpl) CancelReservation(ctx context.Context, tenantID, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindByID(ctx, tenantID, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Same lock order as CreateReservation so concurrent create/cancel
		// on one resource serialize instead of deadlocking.
		if _, err := tx.Resources().FindByIDForUpdate(ctx, tenantID, snap.ResourceID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		deleted, err := tx.Reservations().Delete(ctx, tenantID, reservationID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !deleted {
			return ErrReservationNotFound
		}

		period, err := snap.Period()
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		today := clock.Today(c.clock)
		if !period.ActiveOn(today) {
			return nil
		}

		other, err := tx.Reservations().FindOtherActiveOnResource(ctx, tenantID, snap.ResourceID, reservationID, today)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if other != nil {
			// Another active reservation still occupies the resource.
			return nil
		}

		if _, err := tx.Resources().SetAvailable(ctx, tenantID, snap.ResourceID, true); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCoordinatorImpl) ToggleMaintenance(ctx context.Context, tenantID, resourceID uuid.UUID) (*queries.ResourceView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Resources().FindByIDForUpdate(ctx, tenantID, resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		booked, err := tx.Resources().IsCurrentlyBooked(ctx, tenantID, resourceID, clock.Today(c.clock))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := resource.ReconstructResource(snap.ID, snap.TenantID, snap.Name, snap.Available)
		if err := entity.ToggleMaintenance(booked); err != nil {
			return errs.Mark(err, ErrResourceBooked)
		}

		matched, err := tx.Resources().SetAvailable(ctx, tenantID, resourceID, entity.Available())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !matched {
			return ErrResourceNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.resourceViews.GetByID(ctx, tenantID, resourceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCoordinatorImpl) ListReservationsForResource(ctx context.Context, tenantID, resourceID uuid.UUID) ([]*queries.ReservationView, error) {
	views, err := c.reservationViews.ListByResource(ctx, tenantID, resourceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
