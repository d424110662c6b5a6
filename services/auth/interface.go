package auth

import (
	profileRepo "labura/database/repository/profile"
	"labura/services/identity"
	"labura/services/mail"
	"labura/services/session"

	"github.com/go-redis/redis/v8"
)

// AuthService defines the authentication surface of the backend client:
// registration, credential checks, session teardown and the email flows.
type AuthService interface {
	// Register validates the password policy locally, creates the
	// identity+profile pair and queues a verification email.
	Register(email, password, nombre string) (*AuthResponse, error)
	// Login verifies credentials and returns the identity and token.
	Login(email, password string) (*AuthResponse, error)
	// Logout clears the session. Idempotent.
	Logout(identityID string) error
	// SendVerificationEmail re-sends the verification email for the
	// authenticated identity. Fails with models.ErrNoSession when the
	// caller is signed out.
	SendVerificationEmail(identityID string) error
	// ResetPassword queues a password reset email. Fire-and-forget.
	ResetPassword(email string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo     profileRepo.ProfileRepository
	Provider identity.Provider
	Mailer   mail.Mailer
	Session  *session.Cell
	// AuthCache invalidates cached token hashes on logout. Optional;
	// logout skips cache invalidation when nil.
	AuthCache *redis.Client
}

// AuthResponse contains the authenticated identity's id and token plus
// the display attributes the navbar needs.
type AuthResponse struct {
	ID              string `json:"id"`
	Token           string `json:"token"`
	Nombre          string `json:"nombre,omitempty"`
	Email           string `json:"email,omitempty"`
	FotoPerfil      string `json:"foto_perfil,omitempty"`
	EmailVerificado bool   `json:"email_verificado"`
}
