package handlers

import (
	"errors"
	"net/http"

	"labura/models"
	"labura/services/servicio"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps a service error to an HTTP status and JSON body. Local
// validation failures are 400, auth failures 401 (409 for the duplicate
// email code), ownership failures 403; everything else is a 500.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}

	var ae *models.AuthError
	if errors.As(err, &ae) {
		status := http.StatusUnauthorized
		if ae.Code == models.AuthCodeEmailInUse {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": ae.Error(), "code": ae.Code})
		return
	}

	switch {
	case errors.Is(err, models.ErrNoSession), errors.Is(err, models.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, servicio.ErrNotOwner), errors.Is(err, servicio.ErrDeleteDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": models.DefaultAuthMessage})
	}
}

// authenticatedID returns the identity id set by the auth middleware.
func authenticatedID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
