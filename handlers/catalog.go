package handlers

import (
	"net/http"

	"labura/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static category/service tables.
type CatalogHandler struct{}

// NewCatalogHandler returns the stateless catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListCategoriesHandler returns the six categories in display order.
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// ListServicesHandler returns the service types of one category.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	id := c.Param("id")
	services := catalog.ServicesFor(id)
	if services == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": id, "services": services})
}
