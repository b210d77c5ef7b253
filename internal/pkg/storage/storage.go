package storage

import (
	"context"
	"io"
)

// Storage abstracts blob storage for uploaded listing photos.
// Paths are relative to the storage root.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
