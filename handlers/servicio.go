package handlers

import (
	"net/http"
	"time"

	"labura/services/servicio"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServicioHandler exposes the booked-service records.
type ServicioHandler struct {
	Service servicio.ServicioService
}

// NewServicioHandler wires the servicio service.
func NewServicioHandler(svc servicio.ServicioService) *ServicioHandler {
	return &ServicioHandler{Service: svc}
}

// CreateServicioHandler books a service for the authenticated client.
func (h *ServicioHandler) CreateServicioHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		TipoServicio string    `json:"tipo_servicio"`
		FechaInicio  time.Time `json:"fecha_inicio"`
		Duracion     int       `json:"duracion"`
		Precio       float64   `json:"precio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid servicio request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record, err := h.Service.CreateServicio(id, req.TipoServicio, req.FechaInicio, req.Duracion, req.Precio)
	if err != nil {
		logger.Warn("Servicio creation failed", zap.String("userID", id), zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListMyServiciosHandler returns the client's records, soonest first.
func (h *ServicioHandler) ListMyServiciosHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.Service.ListForCliente(id)
	if err != nil {
		logger.Error("Failed to list servicios", zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"servicios": records})
}

// ListByTipoHandler returns records of one service type, newest first.
func (h *ServicioHandler) ListByTipoHandler(c *gin.Context) {
	logger := getLogger(c)

	records, err := h.Service.ListForTipo(c.Param("tipo"))
	if err != nil {
		logger.Error("Failed to list servicios by tipo", zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"servicios": records})
}

// GetServicioHandler fetches one record.
func (h *ServicioHandler) GetServicioHandler(c *gin.Context) {
	logger := getLogger(c)

	record, err := h.Service.GetServicio(c.Param("id"))
	if err != nil {
		logger.Error("Failed to get servicio", zap.Error(err))
		writeError(c, logger, err)
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Servicio no encontrado"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateEstadoHandler transitions a record's estado.
func (h *ServicioHandler) UpdateEstadoHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Estado string `json:"estado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid estado request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record, err := h.Service.UpdateEstado(id, c.Param("id"), req.Estado)
	if err != nil {
		logger.Warn("Estado update failed", zap.String("servicioID", c.Param("id")), zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteServicioHandler always refuses; records retire via estado updates.
func (h *ServicioHandler) DeleteServicioHandler(c *gin.Context) {
	logger := getLogger(c)

	id, _ := authenticatedID(c)
	if err := h.Service.DeleteServicio(id, c.Param("id")); err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}
