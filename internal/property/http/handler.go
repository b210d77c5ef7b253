package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emreyalim/stayhub-backend/internal/auth"
	"github.com/emreyalim/stayhub-backend/internal/availability"
	"github.com/emreyalim/stayhub-backend/internal/pkg/response"
	"github.com/emreyalim/stayhub-backend/internal/property"
)

type Handler struct {
	service      property.Service
	availService availability.Service
}

func NewHandler(service property.Service, availService availability.Service) *Handler {
	return &Handler{
		service:      service,
		availService: availService,
	}
}

// markerColor annotates a listing with its bookability color. A failed
// classification downgrades to an empty color rather than failing the list.
func (h *Handler) markerColor(c *gin.Context, propertyID string) availability.Color {
	color, err := h.availService.MarkerColorFor(c.Request.Context(), propertyID)
	if err != nil {
		log.Printf("failed to classify property %s: %v", propertyID, err)
		return ""
	}
	return color
}

func (h *Handler) List(c *gin.Context) {
	var req ListPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := property.Filter{
		HostID:   req.HostID,
		Location: req.Location,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	properties, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list properties"})
		return
	}

	items := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		items[i] = NewPropertyResponse(p, h.markerColor(c, p.ID))
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get property"})
		return
	}

	c.JSON(http.StatusOK, NewPropertyResponse(p, h.markerColor(c, p.ID)))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePropertyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	hostID := auth.GetUserID(c)

	p, err := h.service.Create(c.Request.Context(), property.CreateRequest{
		HostID:      hostID,
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Price:       body.Price,
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, property.ErrEmptyTitle),
			errors.Is(err, property.ErrEmptyLocation),
			errors.Is(err, property.ErrInvalidPrice),
			errors.Is(err, property.ErrInvalidCoords):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewPropertyResponse(p, availability.ColorRed))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdatePropertyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, property.UpdateRequest{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Price:       body.Price,
	}, auth.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, property.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		case errors.Is(err, property.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		case errors.Is(err, property.ErrEmptyTitle),
			errors.Is(err, property.ErrEmptyLocation),
			errors.Is(err, property.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update property"})
		}
		return
	}

	c.JSON(http.StatusOK, NewPropertyResponse(p, h.markerColor(c, p.ID)))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, property.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		case errors.Is(err, property.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete property"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
