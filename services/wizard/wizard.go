// Package wizard implements the three-step offer-a-service submission
// flow: category, service type, details. Steps are strictly linear; there
// is no skipping, and a failed submission keeps every entered field.
package wizard

import (
	"labura/catalog"
	"labura/models"
	"labura/services/profile"
)

// Step numbers.
const (
	StepCategory = 1
	StepService  = 2
	StepDetails  = 3
)

// DefaultRadius is the coverage slider default, in km.
const DefaultRadius = 10

// Wizard holds the submission flow state for one session.
type Wizard struct {
	Step           int    `json:"step"`
	Categoria      string `json:"categoria,omitempty"`
	TipoServicio   string `json:"tipo_servicio,omitempty"`
	Descripcion    string `json:"descripcion"`
	Ubicacion      string `json:"ubicacion"`
	RadioCobertura int    `json:"radio_cobertura"`
	Horarios       string `json:"horarios"`
}

// New starts the wizard at the category step.
func New() *Wizard {
	return &Wizard{Step: StepCategory, RadioCobertura: DefaultRadius}
}

// SelectCategory picks a catalog category and advances to the service
// step. Only catalog categories are selectable.
func (w *Wizard) SelectCategory(categoryID string) error {
	if w.Step != StepCategory {
		return models.NewValidationError("step", "Selecciona la categoría en el primer paso")
	}
	if !catalog.ValidCategory(categoryID) {
		return models.NewValidationError("categoria", "La categoría no existe en el catálogo")
	}
	w.Categoria = categoryID
	w.Step = StepService
	return nil
}

// SelectService picks a service type from the selected category's sublist
// and advances to the details step. Pairs outside the catalog are not
// selectable, so step 3 is unreachable for them.
func (w *Wizard) SelectService(serviceID string) error {
	if w.Step != StepService {
		return models.NewValidationError("step", "Selecciona el servicio en el segundo paso")
	}
	if !catalog.Valid(w.Categoria, serviceID) {
		return models.NewValidationError("tipo_servicio", "El servicio no existe en el catálogo")
	}
	w.TipoServicio = serviceID
	w.Step = StepDetails
	return nil
}

// Back returns one step, preserving the category/service selection and
// any entered details.
func (w *Wizard) Back() {
	if w.Step > StepCategory {
		w.Step--
	}
}

// SetDetails records the free-text fields and the coverage radius. The
// radius is clamped to an integer in [1,100] regardless of the raw slider
// input.
func (w *Wizard) SetDetails(descripcion, ubicacion string, radioCobertura int, horarios string) {
	w.Descripcion = descripcion
	w.Ubicacion = ubicacion
	w.RadioCobertura = profile.ClampRadius(radioCobertura)
	w.Horarios = horarios
}

// Offering builds the service offering from the entered data.
func (w *Wizard) Offering() models.ServiceOffering {
	return models.ServiceOffering{
		Categoria:      w.Categoria,
		TipoServicio:   w.TipoServicio,
		Descripcion:    w.Descripcion,
		Ubicacion:      w.Ubicacion,
		RadioCobertura: w.RadioCobertura,
		Horarios:       w.Horarios,
	}
}

// Submit publishes the offering for the authenticated identity. Without a
// session it fails with models.ErrAuthRequired; on any failure the wizard
// keeps its entered data so a retry needs no re-entry.
func (w *Wizard) Submit(identityID string, svc profile.ProfileService) error {
	if w.Step != StepDetails {
		return models.NewValidationError("step", "Completa los detalles antes de enviar")
	}
	if identityID == "" {
		return models.ErrAuthRequired
	}
	return svc.SubmitOffering(identityID, w.Offering())
}
