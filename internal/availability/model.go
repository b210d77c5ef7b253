package availability

import (
	"net/http"

	"github.com/emreyalim/stayhub-backend/internal/pkg/apperror"
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

var (
	ErrPropertyNotFound = apperror.New(http.StatusNotFound, "property not found")
	ErrInvalidRange     = apperror.New(http.StatusBadRequest, "invalid date range")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Window is a host-declared date range during which a property may be
// booked. Windows are replaced wholesale by host edits and may overlap;
// no merging is performed at rest.
type Window struct {
	ID         string
	PropertyID string
	Range      daterange.Range
}

// Color is the three-valued bookability status shown on property markers.
type Color string

const (
	// ColorGreen means at least one future day is free to book.
	ColorGreen Color = "green"
	// ColorYellow means future days are held but only provisionally
	// (pending, possibly mixed with approved).
	ColorYellow Color = "yellow"
	// ColorRed means no future availability, or all of it is approved.
	ColorRed Color = "red"
)
