package handlers

import (
	"net/http"

	"labura/models"
	"labura/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes the authenticated user's profile document.
type ProfileHandler struct {
	Service profile.ProfileService
}

// NewProfileHandler wires the profile service.
func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// GetProfileHandler returns the authenticated user's profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	prof, err := h.Service.GetProfile(id)
	if err != nil {
		logger.Error("Failed to get profile", zap.Error(err))
		writeError(c, logger, err)
		return
	}
	if prof == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado"})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UpdateProfileHandler merges a partial update onto the profile document.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	prof, err := h.Service.UpdateProfile(id, update)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UploadPhotoHandler receives a multipart profile photo, validates it and
// stores it. The response carries the durable download URL.
func (h *ProfileHandler) UploadPhotoHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		logger.Error("Missing photo file", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selecciona una imagen"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer la imagen"})
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.Service.UploadPhoto(c.Request.Context(), id, fileHeader.Filename, contentType, fileHeader.Size, f)
	if err != nil {
		logger.Warn("Photo upload failed", zap.String("userID", id), zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foto_perfil": url})
}

// SubmitOfferingHandler publishes a service offering directly, outside the
// step-by-step wizard.
func (h *ProfileHandler) SubmitOfferingHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrAuthRequired.Error()})
		return
	}

	var offering models.ServiceOffering
	if err := c.ShouldBindJSON(&offering); err != nil {
		logger.Error("Invalid offering request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.SubmitOffering(id, offering); err != nil {
		logger.Warn("Offering submission failed", zap.String("userID", id), zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Servicio publicado"})
}
