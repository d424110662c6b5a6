// Package provider serves the provider lookup behind the service detail
// view.
package provider

import (
	profileRepo "labura/database/repository/profile"
	"labura/models"
	"labura/utils"

	"go.uber.org/zap"
)

// LookupService lists the providers advertising a (category, service) pair.
type LookupService interface {
	// ListProviders returns matching profiles in backend order. No match
	// is an empty slice, never an error. Lookup failures also degrade to
	// an empty slice and are only logged; the detail view renders its
	// "no providers" state instead of an error banner.
	ListProviders(categoria, tipoServicio string) []models.Profile
}

// DefaultLookupService is the production implementation.
type DefaultLookupService struct {
	Repo profileRepo.ProfileRepository
}

// ListProviders queries the document store once per view mount.
func (s *DefaultLookupService) ListProviders(categoria, tipoServicio string) []models.Profile {
	providers, err := s.Repo.FindByOffering(categoria, tipoServicio)
	if err != nil {
		utils.GetLogger().Error("provider lookup failed",
			zap.String("categoria", categoria),
			zap.String("tipo_servicio", tipoServicio),
			zap.Error(err))
		return []models.Profile{}
	}
	return providers
}
