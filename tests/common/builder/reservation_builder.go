//go:build unit || e2e

package builder

import (
	"time"

	domreservation "adspace-backend/internal/domain/reservation"
	reqdto "adspace-backend/internal/handler/dto/request"
	"adspace-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	TenantID   uuid.UUID
	ResourceID uuid.UUID
	ClientID   uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		TenantID:   uuid.New(),
		ResourceID: uuid.New(),
		ClientID:   uuid.New(),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 6),
		CreatedAt:  time.Now(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithDates(start, end time.Time) *ReservationBuilder {
	r.StartDate = start
	r.EndDate = end
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	period, err := domreservation.NewDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(r.TenantID, r.ResourceID, r.ClientID, period)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         uuid.New(),
		TenantID:   r.TenantID,
		ResourceID: r.ResourceID,
		ClientID:   r.ClientID,
		StartDate:  domreservation.Midnight(r.StartDate),
		EndDate:    domreservation.Midnight(r.EndDate),
		CreatedAt:  r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ResourceID: r.ResourceID,
		ClientID:   r.ClientID,
		StartDate:  r.StartDate.Format(time.DateOnly),
		EndDate:    r.EndDate.Format(time.DateOnly),
	}
}
