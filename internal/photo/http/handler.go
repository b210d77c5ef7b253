package http

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emreyalim/stayhub-backend/internal/auth"
	"github.com/emreyalim/stayhub-backend/internal/photo"
	"github.com/emreyalim/stayhub-backend/internal/pkg/response"
)

type Handler struct {
	service photo.Service
}

func NewHandler(service photo.Service) *Handler {
	return &Handler{service: service}
}

// Upload attaches a listing photo to a property.
func (h *Handler) Upload(c *gin.Context) {
	propertyID := c.Param("id")
	if _, err := uuid.Parse(propertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	p, err := h.service.Upload(c.Request.Context(), header, propertyID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

// ListByProperty returns all photos attached to a property.
func (h *Handler) ListByProperty(c *gin.Context) {
	propertyID := c.Param("id")
	if _, err := uuid.Parse(propertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	photos, err := h.service.ListByProperty(c.Request.Context(), propertyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"photos": items})
}

// ServePhoto streams the full-size image.
func (h *Handler) ServePhoto(c *gin.Context) {
	h.serve(c, h.service.Download, "")
}

// ServeThumbnail streams the thumbnail. Thumbnails are always JPEG.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	h.serve(c, h.service.DownloadThumbnail, "image/jpeg")
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) serve(c *gin.Context, download func(ctx context.Context, id string) (io.ReadCloser, *photo.Photo, error), contentType string) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, p, err := download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	if contentType == "" {
		contentType = p.ContentType
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started, nothing left to report.
		return
	}
}
