package http

import (
	"time"

	"github.com/emreyalim/stayhub-backend/internal/photo"
)

type PhotoResponse struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		PropertyID:  p.PropertyID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		thumbURL := photo.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &thumbURL
	}
	return resp
}
