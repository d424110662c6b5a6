package profile

import (
	"context"
	"io"

	profileRepo "labura/database/repository/profile"
	"labura/models"
	"labura/services/identity"
	"labura/services/session"
	"labura/services/storage"
)

// ProfileService defines the profile data flow: fetch, partial merge
// updates, offering submission and photo upload.
type ProfileService interface {
	// GetProfile returns the profile document, or nil when absent.
	GetProfile(id string) (*models.Profile, error)
	// UpdateProfile merges the partial fields onto the document and
	// returns the updated profile.
	UpdateProfile(id string, update models.ProfileUpdate) (*models.Profile, error)
	// SubmitOffering validates the offering against the catalog and
	// stores it on the identity's document.
	SubmitOffering(identityID string, offering models.ServiceOffering) error
	// UploadPhoto validates the file locally, uploads it and writes the
	// photo reference onto both the identity and the profile document.
	// Returns the durable download URL.
	UploadPhoto(ctx context.Context, identityID, filename, contentType string, size int64, r io.Reader) (string, error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo     profileRepo.ProfileRepository
	Provider identity.Provider
	Storage  storage.StorageService
	Session  *session.Cell
}
