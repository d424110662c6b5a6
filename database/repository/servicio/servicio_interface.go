package servicioRepo

import "labura/models"

// ServicioRepository defines methods for servicios document access.
// Documents are never deleted; an estado update is the only retirement
// path.
type ServicioRepository interface {
	// Create inserts a new servicio record.
	Create(servicio *models.Servicio) error
	// GetByID retrieves a servicio by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Servicio, error)
	// ListByCliente returns a client's servicios ordered by fecha_inicio
	// ascending.
	ListByCliente(clienteID string) ([]models.Servicio, error)
	// ListByTipoServicio returns servicios of a service type ordered by
	// fecha_inicio descending.
	ListByTipoServicio(tipoServicio string) ([]models.Servicio, error)
	// UpdateEstado sets the record's estado and bumps the update timestamp.
	UpdateEstado(id, estado string) error
}
