package storage

import (
	"context"
	"io"
)

// StorageService defines the interface for object storage operations.
type StorageService interface {
	// Upload writes the object and returns its durable download URL.
	Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error)
	// Delete removes an object from the bucket.
	Delete(ctx context.Context, objectPath string) error
	// DownloadURL constructs the public URL for an object.
	DownloadURL(objectPath string) string
}
