package handlers

import (
	"net/http"
	"strings"

	"labura/services/profile"
	"labura/services/wizard"
	"labura/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler drives the three-step offering flow. The steps are usable
// signed out; only the final submit needs an authenticated identity.
type WizardHandler struct {
	Store    *wizard.Store
	Profiles profile.ProfileService
}

// NewWizardHandler wires the wizard store and the profile service used on
// submit.
func NewWizardHandler(store *wizard.Store, profiles profile.ProfileService) *WizardHandler {
	return &WizardHandler{Store: store, Profiles: profiles}
}

// optionalUserID extracts the identity from a Bearer token when one is
// present. Anonymous callers get "".
func optionalUserID(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	id, err := utils.ExtractIDFromToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return ""
	}
	return id
}

// withWizard loads the session's wizard, applies fn and saves. fn returning
// an error leaves the stored wizard untouched.
func (h *WizardHandler) withWizard(c *gin.Context, fn func(*wizard.Wizard) error) {
	logger := getLogger(c)

	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + sessionKey + " header"})
		return
	}

	ctx := c.Request.Context()
	w, err := h.Store.Get(ctx, sid)
	if err != nil {
		logger.Error("Failed to load wizard state", zap.Error(err))
		writeError(c, logger, err)
		return
	}

	if fn != nil {
		if err := fn(w); err != nil {
			writeError(c, logger, err)
			return
		}
		if err := h.Store.Save(ctx, sid, w); err != nil {
			logger.Error("Failed to save wizard state", zap.Error(err))
			writeError(c, logger, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"wizard": w})
}

// GetWizardHandler returns the session's wizard state.
func (h *WizardHandler) GetWizardHandler(c *gin.Context) {
	h.withWizard(c, nil)
}

// SelectCategoryHandler handles step 1.
func (h *WizardHandler) SelectCategoryHandler(c *gin.Context) {
	var req struct {
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.withWizard(c, func(w *wizard.Wizard) error { return w.SelectCategory(req.Category) })
}

// SelectServiceHandler handles step 2.
func (h *WizardHandler) SelectServiceHandler(c *gin.Context) {
	var req struct {
		Service string `json:"service"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.withWizard(c, func(w *wizard.Wizard) error { return w.SelectService(req.Service) })
}

// BackHandler steps backwards, keeping selections and entered details.
func (h *WizardHandler) BackHandler(c *gin.Context) {
	h.withWizard(c, func(w *wizard.Wizard) error {
		w.Back()
		return nil
	})
}

// SetDetailsHandler records the step 3 fields.
func (h *WizardHandler) SetDetailsHandler(c *gin.Context) {
	var req struct {
		Descripcion    string `json:"descripcion"`
		Ubicacion      string `json:"ubicacion"`
		RadioCobertura int    `json:"radio_cobertura"`
		Horarios       string `json:"horarios"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.withWizard(c, func(w *wizard.Wizard) error {
		w.SetDetails(req.Descripcion, req.Ubicacion, req.RadioCobertura, req.Horarios)
		return nil
	})
}

// SubmitHandler publishes the offering. A failed submit keeps the stored
// wizard intact so the client can retry without re-entering anything.
func (h *WizardHandler) SubmitHandler(c *gin.Context) {
	logger := getLogger(c)

	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + sessionKey + " header"})
		return
	}

	ctx := c.Request.Context()
	w, err := h.Store.Get(ctx, sid)
	if err != nil {
		logger.Error("Failed to load wizard state", zap.Error(err))
		writeError(c, logger, err)
		return
	}

	if err := w.Submit(optionalUserID(c), h.Profiles); err != nil {
		logger.Warn("Wizard submit failed", zap.Error(err))
		writeError(c, logger, err)
		return
	}

	if err := h.Store.Delete(ctx, sid); err != nil {
		logger.Warn("Failed to clear wizard state", zap.Error(err))
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Servicio publicado"})
}

// CancelHandler drops the session's wizard.
func (h *WizardHandler) CancelHandler(c *gin.Context) {
	logger := getLogger(c)

	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + sessionKey + " header"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), sid); err != nil {
		logger.Error("Failed to clear wizard state", zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Formulario descartado"})
}
