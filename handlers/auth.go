package handlers

import (
	"net/http"

	"labura/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login and the email flows.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler wires the auth service.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler handles account creation.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Nombre   string `json:"nombre"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(req.Email, req.Password, req.Nombre)
	if err != nil {
		logger.Warn("Registration failed", zap.String("email", req.Email), zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles credential checks and returns the session token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler tears the session down. Repeating it is harmless.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.Logout(id); err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// SendVerificationHandler re-sends the verification email for the
// authenticated caller.
func (h *AuthHandler) SendVerificationHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authenticatedID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.SendVerificationEmail(id); err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email de verificación enviado"})
}

// ResetPasswordHandler queues a password reset email.
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reset request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ResetPassword(req.Email); err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email de restablecimiento enviado"})
}
