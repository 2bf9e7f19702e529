package request

import (
	"errors"
	"time"

	"adspace-backend/internal/usecase"

	"github.com/google/uuid"
)

var errInvalidDate = errors.New("invalid date format")

type CreateReservationRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	ClientID   uuid.UUID `json:"client_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
}

// parseDate accepts a bare calendar date or a full timestamp; timestamps
// are truncated to their UTC calendar day downstream.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidDate
}

func (r CreateReservationRequest) ToParams() (usecase.CreateReservationParams, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return usecase.CreateReservationParams{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return usecase.CreateReservationParams{}, err
	}
	return usecase.CreateReservationParams{
		ResourceID: r.ResourceID,
		ClientID:   r.ClientID,
		StartDate:  start,
		EndDate:    end,
	}, nil
}
