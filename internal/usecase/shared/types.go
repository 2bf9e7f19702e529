package shared

import (
	"time"

	"adspace-backend/internal/domain/reservation"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.

type ReservationSnapshot struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	ResourceID uuid.UUID
	ClientID   uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

func (s *ReservationSnapshot) Period() (reservation.DateRange, error) {
	return reservation.NewDateRange(s.StartDate, s.EndDate)
}

type ResourceSnapshot struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Available bool
}
