package profile

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"labura/catalog"
	"labura/models"

	"go.mongodb.org/mongo-driver/bson"
)

// maxPhotoSize is the local upload cap (5 MB), checked before any network
// call.
const maxPhotoSize = 5 * 1024 * 1024

// GetProfile returns the profile document. Absence is not an error: a nil
// profile with nil error means no document exists.
func (s *DefaultProfileService) GetProfile(id string) (*models.Profile, error) {
	p, err := s.Repo.GetByIDWithProjection(id, bson.M{"password_hash": 0, "token_hash": 0})
	if err != nil {
		return nil, models.NewBackendError("fetchProfile", err)
	}
	return p, nil
}

// UpdateProfile applies a partial merge write. Zero-valued fields are left
// unchanged.
func (s *DefaultProfileService) UpdateProfile(id string, update models.ProfileUpdate) (*models.Profile, error) {
	fields := bson.M{}
	if update.Nombre != "" {
		fields["nombre"] = update.Nombre
	}
	if update.NumeroTelefono != "" {
		fields["numero_telefono"] = update.NumeroTelefono
	}
	if update.Direccion != "" {
		fields["direccion"] = update.Direccion
	}
	if update.Profesion != "" {
		fields["profesion"] = update.Profesion
	}
	if update.Servicios != nil {
		fields["servicios"] = update.Servicios
	}
	if update.Ubicacion != "" {
		fields["ubicacion"] = update.Ubicacion
	}
	if update.Descripcion != "" {
		fields["descripcion"] = update.Descripcion
	}
	if update.FotoPerfil != "" {
		fields["foto_perfil"] = update.FotoPerfil
	}

	if len(fields) > 0 {
		if err := s.Repo.SetFields(id, fields); err != nil {
			return nil, models.NewBackendError("updateProfile", err)
		}
		if update.Nombre != "" {
			if err := s.Provider.UpdateDisplayName(context.Background(), id, update.Nombre); err != nil {
				return nil, models.NewBackendError("updateProfile", err)
			}
		}
	}
	return s.GetProfile(id)
}

// SubmitOffering validates the offering and stores it on the document. The
// write replaces the stored single-element offering list; on failure the
// caller keeps the entered data for retry.
func (s *DefaultProfileService) SubmitOffering(identityID string, offering models.ServiceOffering) error {
	if identityID == "" {
		return models.ErrAuthRequired
	}
	if !catalog.Valid(offering.Categoria, offering.TipoServicio) {
		return models.NewValidationError("servicio", "La categoría o el servicio no existen en el catálogo")
	}
	if offering.Descripcion == "" {
		return models.NewValidationError("descripcion", "La descripción es obligatoria")
	}
	if offering.Ubicacion == "" {
		return models.NewValidationError("ubicacion", "La ubicación es obligatoria")
	}
	if offering.Horarios == "" {
		return models.NewValidationError("horarios", "Los horarios son obligatorios")
	}

	offering.RadioCobertura = ClampRadius(offering.RadioCobertura)
	offering.FechaRegistro = time.Now()
	offering.Calificacion = 0
	offering.Reviews = 0
	offering.Verified = false
	offering.PortfolioURLs = []string{}

	name := catalog.ServiceName(offering.Categoria, offering.TipoServicio)
	if err := s.Repo.SetOffering(identityID, offering, name); err != nil {
		return models.NewBackendError("submitOffering", err)
	}
	return nil
}

// ClampRadius forces a coverage radius into the [1,100] km range.
func ClampRadius(km int) int {
	if km < 1 {
		return 1
	}
	if km > 100 {
		return 100
	}
	return km
}

// UploadPhoto validates type and size locally, uploads the object, then
// writes the photo reference onto the identity record and the profile
// document. The two writes are not transactional; a partial failure is
// surfaced and may leave them inconsistent.
func (s *DefaultProfileService) UploadPhoto(ctx context.Context, identityID, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", models.NewValidationError("file", "El archivo debe ser una imagen")
	}
	if size > maxPhotoSize {
		return "", models.NewValidationError("file", "La imagen no puede superar los 5 MB")
	}

	objectPath := fmt.Sprintf("profile-photos/%s/%d-%s", identityID, time.Now().UnixMilli(), filename)
	downloadURL, err := s.Storage.Upload(ctx, objectPath, r, contentType)
	if err != nil {
		return "", models.NewBackendError("uploadPhoto", err)
	}

	if err := s.Provider.UpdatePhoto(ctx, identityID, downloadURL); err != nil {
		return "", models.NewBackendError("uploadPhoto", err)
	}
	if err := s.Repo.SetFields(identityID, bson.M{"foto_perfil": downloadURL}); err != nil {
		return "", models.NewBackendError("uploadPhoto", err)
	}

	// Keep the session cell's identity in sync with the new photo.
	if current := s.Session.Current(); current != nil && current.ID == identityID {
		updated := *current
		updated.FotoPerfil = downloadURL
		s.Session.Set(&updated)
	}

	return downloadURL, nil
}
