package reservation

import (
	"net/http"
	"time"

	"github.com/emreyalim/stayhub-backend/internal/pkg/apperror"
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "reservation not found")
	ErrPropertyNotFound  = apperror.New(http.StatusNotFound, "property not found")
	ErrNotAvailable      = apperror.New(http.StatusConflict, "property is not available for the requested dates")
	ErrInvalidRange      = apperror.New(http.StatusBadRequest, "invalid date range")
	ErrStartInPast       = apperror.New(http.StatusBadRequest, "cannot book dates in the past")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "reservation status cannot change that way")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

// Status is the lifecycle state of a reservation.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

// transitions is the full state machine. Rejected and canceled are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCanceled},
	StatusApproved: {StatusCanceled},
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCanceled:
		return true
	}
	return false
}

// Active reports whether the reservation still holds its dates.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

// CanTransitionTo reports whether the state machine allows moving from s to
// next. No transition is reversible.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Cancellation reasons recorded on canceled reservations.
const (
	CancelReasonUser                = "user-initiated"
	CancelReasonAvailabilityRemoved = "host removed all availability"
	CancelReasonAvailabilityChanged = "host changed property availability"
)

// Reservation is a guest's request to book a property for a date range.
// Range is always set on new records; rows predating range tracking may
// leave it zero.
type Reservation struct {
	ID            string
	PropertyID    string
	PropertyTitle string
	HostID        string
	UserID        string
	UserName      string
	Range         daterange.Range
	Status        Status
	CancelReason  *string
	CreatedAt     time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	PropertyID string
	UserID     string
	HostID     string
	Status     string
	Page       int
	PageSize   int
}
