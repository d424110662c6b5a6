package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"labura/models"
	"labura/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the password policy before any backend call, then
// creates the identity record with the auth provider and the profile
// document. The two writes are independent; a partial failure is surfaced
// without rollback.
func (s *DefaultAuthService) Register(email, password, nombre string) (*AuthResponse, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if !strings.Contains(email, "@") {
		return nil, models.NewAuthError(models.AuthCodeInvalidEmail)
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		return nil, models.NewBackendError("register", err)
	}
	if existing != nil {
		return nil, models.NewAuthError(models.AuthCodeEmailInUse)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	profile := &models.Profile{
		ID:                uuid.New().String(),
		Nombre:            nombre,
		CorreoElectronico: email,
		NombreUsuario:     strings.SplitN(email, "@", 2)[0],
		FechaRegistro:     now,
		EmailVerificado:   false,
		Servicios:         []string{},
		Calificacion:      0,
		Reviews:           0,
		Verificado:        false,
		PasswordHash:      string(hashedPassword),
	}

	if err := s.Provider.CreateUser(context.Background(), profile.ID, email, password, nombre); err != nil {
		if models.IsAuth(err) {
			return nil, err
		}
		return nil, models.NewBackendError("register", err)
	}

	if err := s.Repo.Create(profile); err != nil {
		// The identity record already exists with the provider; there is
		// no compensating rollback.
		return nil, models.NewBackendError("register", err)
	}

	token, err := utils.GenerateToken(profile.ID, email, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	if err := s.Repo.SetFields(profile.ID, bson.M{"token_hash": utils.HashToken(token)}); err != nil {
		return nil, models.NewBackendError("register", err)
	}

	if err := s.Mailer.EnqueueVerification(email, nombre); err != nil {
		utils.GetLogger().Warn("failed to enqueue verification email",
			zap.String("email", email), zap.Error(err))
	}

	s.Session.Set(models.IdentityOf(profile))

	return &AuthResponse{
		ID:              profile.ID,
		Token:           token,
		Nombre:          nombre,
		Email:           email,
		EmailVerificado: false,
	}, nil
}

// Login verifies the credentials. Failures leave the session cell
// untouched.
func (s *DefaultAuthService) Login(email, password string) (*AuthResponse, error) {
	profile, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, models.NewBackendError("login", err)
	}
	if profile == nil {
		return nil, models.NewAuthError(models.AuthCodeUserNotFound)
	}
	if profile.Disabled {
		return nil, models.NewAuthError(models.AuthCodeUserDisabled)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, models.NewAuthError(models.AuthCodeWrongPassword)
	}

	token, err := utils.GenerateToken(profile.ID, profile.CorreoElectronico, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	if err := s.Repo.SetFields(profile.ID, bson.M{"token_hash": utils.HashToken(token)}); err != nil {
		return nil, models.NewBackendError("login", err)
	}

	s.Session.Set(models.IdentityOf(profile))

	return &AuthResponse{
		ID:              profile.ID,
		Token:           token,
		Nombre:          profile.Nombre,
		Email:           profile.CorreoElectronico,
		FotoPerfil:      profile.FotoPerfil,
		EmailVerificado: profile.EmailVerificado,
	}, nil
}

// Logout clears the session cell and revokes the stored token hash.
// Idempotent: logging out an absent or already signed-out identity is not
// an error.
func (s *DefaultAuthService) Logout(identityID string) error {
	s.Session.Clear()

	if identityID == "" {
		return nil
	}
	if err := s.Repo.SetFields(identityID, bson.M{"token_hash": ""}); err != nil {
		utils.GetLogger().Warn("logout: failed to clear token hash",
			zap.String("id", identityID), zap.Error(err))
	}
	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.AuthCache.Del(ctx, utils.AuthCachePrefix+identityID).Err()
	}
	return nil
}

// SendVerificationEmail re-sends the verification email for the
// authenticated identity. The address comes from the caller's own profile
// document, never from whichever identity signed in last.
func (s *DefaultAuthService) SendVerificationEmail(identityID string) error {
	if identityID == "" {
		return models.ErrNoSession
	}
	profile, err := s.Repo.GetByIDWithProjection(identityID, bson.M{
		"id": 1, "nombre": 1, "correo_electronico": 1,
	})
	if err != nil {
		return models.NewBackendError("sendVerificationEmail", err)
	}
	if profile == nil {
		return models.NewAuthError(models.AuthCodeUserNotFound)
	}
	if err := s.Mailer.EnqueueVerification(profile.CorreoElectronico, profile.Nombre); err != nil {
		return models.NewBackendError("sendVerificationEmail", err)
	}
	return nil
}

// ResetPassword queues a password reset email for the address.
func (s *DefaultAuthService) ResetPassword(email string) error {
	if err := s.Mailer.EnqueuePasswordReset(email); err != nil {
		return models.NewBackendError("resetPassword", err)
	}
	return nil
}
