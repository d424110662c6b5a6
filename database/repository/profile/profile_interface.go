package profileRepo

import (
	"labura/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository defines methods for usuarios document access.
type ProfileRepository interface {
	// GetByID retrieves a profile by its identity id. Returns (nil, nil)
	// when no document exists: absence is not an error.
	GetByID(id string) (*models.Profile, error)
	// GetByEmail retrieves a profile by email. Returns (nil, nil) when
	// no document exists.
	GetByEmail(email string) (*models.Profile, error)
	// Create inserts a new profile document.
	Create(profile *models.Profile) error
	// Update replaces the stored document fields with the given profile.
	Update(profile *models.Profile) error
	// SetFields applies a partial merge write onto the document.
	SetFields(id string, fields bson.M) error
	// SetOffering stores the given offering as the document's single-element
	// servicios_ofrecidos array, replacing whatever was there, and records
	// the service display name in the profile's servicios list.
	SetOffering(id string, offering models.ServiceOffering, serviceName string) error
	// FindByOffering returns the profiles whose servicios_ofrecidos list
	// contains a matching (categoria, tipo_servicio) pair. An empty result
	// is an empty slice, not an error.
	FindByOffering(categoria, tipoServicio string) ([]models.Profile, error)
	// GetByIDWithProjection retrieves a profile by id with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Profile, error)
	// GetByEmailWithProjection retrieves a profile by email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.Profile, error)
}
