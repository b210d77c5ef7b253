package photo

import (
	"net/http"
	"time"

	"github.com/emreyalim/stayhub-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "photo not found")
	ErrPropertyNotFound = apperror.New(http.StatusNotFound, "property not found")
	ErrNotAnImage       = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrNoThumbnail      = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Photo is an image attached to a property listing.
type Photo struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property_id"`
	UploaderID    string    `json:"uploader_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"`
	ThumbnailPath *string   `json:"-"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// URL returns the public path for the full-size image.
func URL(id string) string {
	return "/photos/" + id
}

// ThumbnailURL returns the public path for the photo's thumbnail.
func ThumbnailURL(id string) string {
	return "/photos/" + id + "/thumbnail"
}
