package auth

import (
	"strings"
	"unicode"

	"labura/models"
)

// passwordSymbols is the fixed set a password must draw its symbol from.
const passwordSymbols = "!@#$%^&*"

// ValidatePassword enforces the local password policy before any network
// call: at least 8 characters, one uppercase letter, one digit and one
// symbol from the fixed set.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return models.NewValidationError("password", "La contraseña debe tener al menos 8 caracteres")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return models.NewValidationError("password", "La contraseña debe contener al menos una mayúscula")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return models.NewValidationError("password", "La contraseña debe contener al menos un número")
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		return models.NewValidationError("password", "La contraseña debe contener al menos un carácter especial (!@#$%^&*)")
	}
	return nil
}
