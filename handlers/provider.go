package handlers

import (
	"net/http"

	"labura/services/provider"

	"github.com/gin-gonic/gin"
)

// ProviderHandler serves the provider lists behind the detail view.
type ProviderHandler struct {
	Service provider.LookupService
}

// NewProviderHandler wires the lookup service.
func NewProviderHandler(svc provider.LookupService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// ListProvidersHandler returns the providers advertising the requested
// (categoria, tipo_servicio) pair. Always 200; no match or a lookup
// failure is an empty list.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	categoria := c.Query("categoria")
	tipoServicio := c.Query("tipo_servicio")

	providers := h.Service.ListProviders(categoria, tipoServicio)
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}
