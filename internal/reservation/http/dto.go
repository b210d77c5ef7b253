package http

import (
	"time"

	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
	"github.com/emreyalim/stayhub-backend/internal/pkg/request"
	propHttp "github.com/emreyalim/stayhub-backend/internal/property/http"
	"github.com/emreyalim/stayhub-backend/internal/reservation"
	userHttp "github.com/emreyalim/stayhub-backend/internal/user/http"
)

type CreateReservationRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

// ListReservationsRequest defines query parameters for listing reservations.
// view=guest lists the caller's own bookings; view=host lists bookings on
// the caller's properties.
type ListReservationsRequest struct {
	request.ListParams
	View       string `form:"view,default=guest" binding:"omitempty,oneof=guest host"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected canceled"`
}

type ReservationResponse struct {
	ID           string               `json:"id"`
	Property     propHttp.PropertyTag `json:"property"`
	User         userHttp.UserTag     `json:"user"`
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Status       string               `json:"status"`
	CancelReason *string              `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		Property:     propHttp.PropertyTag{ID: r.PropertyID, Title: r.PropertyTitle},
		User:         userHttp.UserTag{ID: r.UserID, Name: r.UserName},
		StartDate:    r.Range.Start.Format(daterange.Layout),
		EndDate:      r.Range.End.Format(daterange.Layout),
		Status:       string(r.Status),
		CancelReason: r.CancelReason,
		CreatedAt:    r.CreatedAt,
	}
}
