package handlers

import (
	"net/http"

	"labura/services/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionKey identifies the browsing session for view and wizard state.
// Browsing works signed out, so this is a client-generated header, not an
// auth token.
const sessionKey = "X-Session-ID"

// sessionID returns the browsing session id, falling back to the
// authenticated identity when the header is absent.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader(sessionKey); sid != "" {
		return sid
	}
	if id, ok := authenticatedID(c); ok {
		return id
	}
	return ""
}

// ViewHandler drives the navigation state machine over its Redis store.
type ViewHandler struct {
	Store *view.Store
}

// NewViewHandler wires the view-state store.
func NewViewHandler(store *view.Store) *ViewHandler {
	return &ViewHandler{Store: store}
}

// withState loads the session's state, applies fn, saves and responds with
// the state and the resolved view.
func (h *ViewHandler) withState(c *gin.Context, fn func(*view.State)) {
	logger := getLogger(c)

	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + sessionKey + " header"})
		return
	}

	ctx := c.Request.Context()
	state, err := h.Store.Get(ctx, sid)
	if err != nil {
		logger.Error("Failed to load view state", zap.Error(err))
		writeError(c, logger, err)
		return
	}

	if fn != nil {
		fn(state)
		if err := h.Store.Save(ctx, sid, state); err != nil {
			logger.Error("Failed to save view state", zap.Error(err))
			writeError(c, logger, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"state": state, "view": state.Render()})
}

// GetViewHandler returns the current state and resolved view.
func (h *ViewHandler) GetViewHandler(c *gin.Context) {
	h.withState(c, nil)
}

// SelectHomeHandler resets to the home grid.
func (h *ViewHandler) SelectHomeHandler(c *gin.Context) {
	h.withState(c, func(s *view.State) { s.SelectHome() })
}

// SelectCategoryHandler switches the selected category.
func (h *ViewHandler) SelectCategoryHandler(c *gin.Context) {
	var req struct {
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.withState(c, func(s *view.State) { s.SelectCategory(req.Category) })
}

// OpenDetailHandler opens the detail view for a service.
func (h *ViewHandler) OpenDetailHandler(c *gin.Context) {
	var req struct {
		Service string `json:"service"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.withState(c, func(s *view.State) { s.OpenDetail(req.Service) })
}

// CloseDetailHandler closes the detail view.
func (h *ViewHandler) CloseDetailHandler(c *gin.Context) {
	h.withState(c, func(s *view.State) { s.CloseDetail() })
}

// OpenOfferFormHandler shows the offer-service overlay.
func (h *ViewHandler) OpenOfferFormHandler(c *gin.Context) {
	h.withState(c, func(s *view.State) { s.OpenOfferForm() })
}

// CloseOfferFormHandler hides the offer-service overlay.
func (h *ViewHandler) CloseOfferFormHandler(c *gin.Context) {
	h.withState(c, func(s *view.State) { s.CloseOfferForm() })
}

// ToggleFavoriteHandler flips a provider in the detail view's favorite set.
func (h *ViewHandler) ToggleFavoriteHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	h.withState(c, func(s *view.State) { s.ToggleFavorite(providerID) })
}
