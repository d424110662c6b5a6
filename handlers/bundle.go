package handlers

import (
	profileRepo "labura/database/repository/profile"
)

// HandlerBundle groups the wired handlers and the repository the auth
// middleware checks tokens against. Assembled once in main.
type HandlerBundle struct {
	ProfileRepo profileRepo.ProfileRepository

	Auth     *AuthHandler
	Profile  *ProfileHandler
	Provider *ProviderHandler
	Catalog  *CatalogHandler
	View     *ViewHandler
	Wizard   *WizardHandler
	Servicio *ServicioHandler
}
