package http

import (
	"github.com/emreyalim/stayhub-backend/internal/availability"
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

// DateRangePayload is the wire form of an inclusive date range.
type DateRangePayload struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (p DateRangePayload) ToRange() (daterange.Range, error) {
	return daterange.Parse(p.StartDate, p.EndDate)
}

func NewDateRangePayload(r daterange.Range) DateRangePayload {
	return DateRangePayload{
		StartDate: r.Start.Format(daterange.Layout),
		EndDate:   r.End.Format(daterange.Layout),
	}
}

// SubmitAvailabilityRequest replaces a property's whole window set.
// An empty list is allowed and cancels every active reservation.
type SubmitAvailabilityRequest struct {
	Windows []DateRangePayload `json:"windows"`
}

type WindowResponse struct {
	ID string `json:"id"`
	DateRangePayload
}

type AvailabilityResponse struct {
	PropertyID     string             `json:"property_id"`
	Windows        []WindowResponse   `json:"windows"`
	ReservedRanges []DateRangePayload `json:"reserved_ranges"`
}

type ReplaceResponse struct {
	PropertyID           string   `json:"property_id"`
	WindowCount          int      `json:"window_count"`
	CanceledReservations []string `json:"canceled_reservations"`
}

func NewAvailabilityResponse(propertyID string, windows []availability.Window, reserved []daterange.Range) AvailabilityResponse {
	resp := AvailabilityResponse{
		PropertyID:     propertyID,
		Windows:        make([]WindowResponse, len(windows)),
		ReservedRanges: make([]DateRangePayload, len(reserved)),
	}
	for i, w := range windows {
		resp.Windows[i] = WindowResponse{ID: w.ID, DateRangePayload: NewDateRangePayload(w.Range)}
	}
	for i, r := range reserved {
		resp.ReservedRanges[i] = NewDateRangePayload(r)
	}
	return resp
}
