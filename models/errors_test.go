package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestAuthMessageTable(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{AuthCodeEmailInUse, "Este email ya está registrado"},
		{AuthCodeInvalidEmail, "Email inválido"},
		{AuthCodeOperationNotAllowed, "Operación no permitida"},
		{AuthCodeWeakPassword, "La contraseña es muy débil"},
		{AuthCodeUserDisabled, "Usuario deshabilitado"},
		{AuthCodeUserNotFound, "Usuario no encontrado"},
		{AuthCodeWrongPassword, "Contraseña incorrecta"},
	}
	for _, tt := range tests {
		if got := AuthMessage(tt.code); got != tt.want {
			t.Errorf("AuthMessage(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestAuthMessageUnknownCodeFallsBack(t *testing.T) {
	if got := AuthMessage("auth/never-heard-of-it"); got != DefaultAuthMessage {
		t.Errorf("expected fallback message, got %q", got)
	}
	if got := AuthMessage(""); got != DefaultAuthMessage {
		t.Errorf("expected fallback for empty code, got %q", got)
	}
}

func TestAuthErrorCarriesLocalizedMessage(t *testing.T) {
	err := NewAuthError(AuthCodeWrongPassword)
	if err.Error() != "Contraseña incorrecta" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !IsAuth(err) {
		t.Error("expected IsAuth to match")
	}
	if IsValidation(err) {
		t.Error("an auth error is not a validation error")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("password", "demasiado corta")
	if err.Error() != "password: demasiado corta" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !IsValidation(err) {
		t.Error("expected IsValidation to match")
	}

	bare := NewValidationError("", "inválido")
	if bare.Error() != "inválido" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}

func TestBackendErrorUnwraps(t *testing.T) {
	inner := errors.New("connection reset")
	err := NewBackendError("fetchProfile", inner)
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to reach the inner error")
	}
	wrapped := fmt.Errorf("outer: %w", err)
	var be *BackendError
	if !errors.As(wrapped, &be) || be.Op != "fetchProfile" {
		t.Errorf("expected the BackendError recovered, got %v", wrapped)
	}
}
