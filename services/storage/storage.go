package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// FirebaseStorageService implements StorageService using the Firebase
// Storage bucket (GCS underneath).
type FirebaseStorageService struct {
	client     *storage.Client
	bucketName string
}

// NewFirebaseStorageService creates a new FirebaseStorageService.
func NewFirebaseStorageService(serviceAccountJSONPath, bucketName string) (*FirebaseStorageService, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &FirebaseStorageService{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Upload writes the object with a public-read ACL and returns its durable
// download URL.
func (s *FirebaseStorageService) Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error) {
	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	w := obj.NewWriter(ctx)

	w.ACL = []storage.ACLRule{{Entity: storage.AllUsers, Role: storage.RoleReader}}
	if contentType != "" {
		w.ObjectAttrs.ContentType = contentType
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to copy file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return s.DownloadURL(objectPath), nil
}

// Delete deletes an object from the bucket.
func (s *FirebaseStorageService) Delete(ctx context.Context, objectPath string) error {
	if err := s.client.Bucket(s.bucketName).Object(objectPath).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectPath, err)
	}
	return nil
}

// DownloadURL returns a public URL assuming the object is publicly
// accessible.
func (s *FirebaseStorageService) DownloadURL(objectPath string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		s.bucketName, url.PathEscape(objectPath))
}
