package models

import "time"

// Servicio estado values. Estado updates are the only retirement path;
// documents are never deleted.
const (
	ServicioPendiente  = "pendiente"
	ServicioConfirmado = "confirmado"
	ServicioCompletado = "completado"
	ServicioCancelado  = "cancelado"
)

// ServicioMetadata holds creation/update timestamps for a servicio record.
type ServicioMetadata struct {
	Creado      time.Time `bson:"creado" json:"creado"`
	Actualizado time.Time `bson:"actualizado" json:"actualizado"`
}

// Servicio is an appointment-style record in the servicios collection:
// a booked service instance between a client and a provider offering.
type Servicio struct {
	ID           string           `bson:"id" json:"id"`
	ClienteID    string           `bson:"cliente_id" json:"cliente_id"`
	TipoServicio string           `bson:"tipo_servicio" json:"tipo_servicio"`
	FechaInicio  time.Time        `bson:"fecha_inicio" json:"fecha_inicio"`
	Duracion     int              `bson:"duracion" json:"duracion"` // minutes
	Precio       float64          `bson:"precio" json:"precio"`
	Estado       string           `bson:"estado" json:"estado"`
	Metadata     ServicioMetadata `bson:"metadata" json:"metadata"`
}

// ValidEstado reports whether estado is one of the defined states.
func ValidEstado(estado string) bool {
	switch estado {
	case ServicioPendiente, ServicioConfirmado, ServicioCompletado, ServicioCancelado:
		return true
	}
	return false
}
