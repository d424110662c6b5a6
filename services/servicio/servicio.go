// Package servicio manages booked service records in the servicios
// collection. Records belong to the client that created them and are
// retired by estado updates, never deleted.
package servicio

import (
	"errors"
	"time"

	servicioRepo "labura/database/repository/servicio"
	"labura/models"

	"github.com/google/uuid"
)

// ErrNotOwner blocks writes to a record by anyone but its client.
var ErrNotOwner = errors.New("el servicio pertenece a otro usuario")

// ErrDeleteDenied is returned for any delete attempt; retirement goes
// through an estado update.
var ErrDeleteDenied = errors.New("los servicios no se pueden eliminar")

// ServicioService defines the booked-service operations.
type ServicioService interface {
	// CreateServicio books a service for the authenticated client. The
	// record starts in estado pendiente.
	CreateServicio(clienteID, tipoServicio string, fechaInicio time.Time, duracion int, precio float64) (*models.Servicio, error)
	// GetServicio fetches one record. Absent records are (nil, nil).
	GetServicio(id string) (*models.Servicio, error)
	// ListForCliente returns a client's records, soonest first.
	ListForCliente(clienteID string) ([]models.Servicio, error)
	// ListForTipo returns records of one service type, newest first.
	ListForTipo(tipoServicio string) ([]models.Servicio, error)
	// UpdateEstado transitions a record's estado. Only the owning client
	// may update, and estado is the only mutable field.
	UpdateEstado(clienteID, id, estado string) (*models.Servicio, error)
	// DeleteServicio always fails with ErrDeleteDenied.
	DeleteServicio(clienteID, id string) error
}

// DefaultServicioService is the production implementation.
type DefaultServicioService struct {
	Repo servicioRepo.ServicioRepository
}

func (s *DefaultServicioService) CreateServicio(clienteID, tipoServicio string, fechaInicio time.Time, duracion int, precio float64) (*models.Servicio, error) {
	if clienteID == "" {
		return nil, models.ErrNoSession
	}
	if tipoServicio == "" {
		return nil, models.NewValidationError("tipo_servicio", "El tipo de servicio es obligatorio")
	}
	if fechaInicio.IsZero() {
		return nil, models.NewValidationError("fecha_inicio", "La fecha de inicio es obligatoria")
	}
	if duracion <= 0 {
		return nil, models.NewValidationError("duracion", "La duración debe ser mayor a cero")
	}
	if precio < 0 {
		return nil, models.NewValidationError("precio", "El precio no puede ser negativo")
	}

	now := time.Now().UTC()
	record := &models.Servicio{
		ID:           uuid.New().String(),
		ClienteID:    clienteID,
		TipoServicio: tipoServicio,
		FechaInicio:  fechaInicio,
		Duracion:     duracion,
		Precio:       precio,
		Estado:       models.ServicioPendiente,
		Metadata: models.ServicioMetadata{
			Creado:      now,
			Actualizado: now,
		},
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, models.NewBackendError("create servicio", err)
	}
	return record, nil
}

func (s *DefaultServicioService) GetServicio(id string) (*models.Servicio, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultServicioService) ListForCliente(clienteID string) ([]models.Servicio, error) {
	if clienteID == "" {
		return nil, models.ErrNoSession
	}
	return s.Repo.ListByCliente(clienteID)
}

func (s *DefaultServicioService) ListForTipo(tipoServicio string) ([]models.Servicio, error) {
	return s.Repo.ListByTipoServicio(tipoServicio)
}

func (s *DefaultServicioService) UpdateEstado(clienteID, id, estado string) (*models.Servicio, error) {
	if clienteID == "" {
		return nil, models.ErrNoSession
	}
	if !models.ValidEstado(estado) {
		return nil, models.NewValidationError("estado", "Estado desconocido")
	}
	record, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, models.NewBackendError("get servicio", err)
	}
	if record == nil {
		return nil, models.NewValidationError("id", "El servicio no existe")
	}
	if record.ClienteID != clienteID {
		return nil, ErrNotOwner
	}
	if err := s.Repo.UpdateEstado(id, estado); err != nil {
		return nil, models.NewBackendError("update servicio estado", err)
	}
	record.Estado = estado
	record.Metadata.Actualizado = time.Now().UTC()
	return record, nil
}

func (s *DefaultServicioService) DeleteServicio(clienteID, id string) error {
	return ErrDeleteDenied
}
