package response

import (
	"time"

	"adspace-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenantId"`
	ResourceID uuid.UUID `json:"resourceId"`
	ClientID   uuid.UUID `json:"clientId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         rm.ID,
		TenantID:   rm.TenantID,
		ResourceID: rm.ResourceID,
		ClientID:   rm.ClientID,
		StartDate:  rm.StartDate.Format(time.DateOnly),
		EndDate:    rm.EndDate.Format(time.DateOnly),
		CreatedAt:  rm.CreatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReservationView(rm)
	}
	return out
}
