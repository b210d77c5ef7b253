package property

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("property not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyLocation    = errors.New("location cannot be empty")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrInvalidCoords    = errors.New("invalid coordinates")
	ErrPermissionDenied = errors.New("permission denied")
)

// Property is a host-owned listing. It owns its availability windows,
// reservations and photos: deleting a property removes all of them in the
// same transaction.
type Property struct {
	ID          string
	HostID      string
	HostName    string
	Title       string
	Description string
	Location    string
	Price       float64
	Latitude    float64
	Longitude   float64
	CreatedAt   time.Time
}

// Filter defines parameters for listing properties.
type Filter struct {
	HostID   string
	Location string
	Page     int
	PageSize int
}
