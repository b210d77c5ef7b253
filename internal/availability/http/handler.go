package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emreyalim/stayhub-backend/internal/auth"
	"github.com/emreyalim/stayhub-backend/internal/availability"
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
	"github.com/emreyalim/stayhub-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// Replace handles the host editing a property's availability. The window
// set is swapped wholesale and invalidated reservations are canceled in
// the same transaction.
func (h *Handler) Replace(c *gin.Context) {
	propertyID := c.Param("id")
	if _, err := uuid.Parse(propertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body SubmitAvailabilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	// All ranges must parse before anything is touched.
	ranges := make([]daterange.Range, len(body.Windows))
	for i, w := range body.Windows {
		rng, err := w.ToRange()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ranges[i] = rng
	}

	canceled, err := h.service.Replace(c.Request.Context(), propertyID, auth.GetUserID(c), ranges)
	if err != nil {
		response.Error(c, err)
		return
	}

	if canceled == nil {
		canceled = []string{}
	}
	c.JSON(http.StatusOK, ReplaceResponse{
		PropertyID:           propertyID,
		WindowCount:          len(ranges),
		CanceledReservations: canceled,
	})
}

// Get returns the property's windows together with the currently reserved
// ranges, the data the booking calendar renders.
func (h *Handler) Get(c *gin.Context) {
	propertyID := c.Param("id")
	if _, err := uuid.Parse(propertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	windows, err := h.service.Windows(c.Request.Context(), propertyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	reserved, err := h.service.ReservedRanges(c.Request.Context(), propertyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(propertyID, windows, reserved))
}
