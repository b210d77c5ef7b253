package http

import (
	"time"

	"github.com/emreyalim/stayhub-backend/internal/availability"
	"github.com/emreyalim/stayhub-backend/internal/pkg/request"
	"github.com/emreyalim/stayhub-backend/internal/property"
	userHttp "github.com/emreyalim/stayhub-backend/internal/user/http"
)

// ListPropertiesRequest defines query parameters for listing properties.
type ListPropertiesRequest struct {
	request.ListParams
	HostID   string `form:"host_id" binding:"omitempty,uuid"`
	Location string `form:"location"`
}

type CreatePropertyRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Latitude    float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"min=-180,max=180"`
}

type UpdatePropertyRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

type PropertyResponse struct {
	ID          string           `json:"id"`
	Host        userHttp.UserTag `json:"host"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Price       float64          `json:"price"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	MarkerColor string           `json:"marker_color,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func NewPropertyResponse(p *property.Property, color availability.Color) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Host:        userHttp.UserTag{ID: p.HostID, Name: p.HostName},
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		MarkerColor: string(color),
		CreatedAt:   p.CreatedAt,
	}
}

// PropertyTag is the minimal property reference embedded in other responses.
type PropertyTag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
