package models

import (
	"errors"
	"fmt"
)

// Auth provider error codes. These mirror the codes the managed auth
// provider reports; every code maps to a fixed Spanish-language message.
const (
	AuthCodeEmailInUse          = "auth/email-already-in-use"
	AuthCodeInvalidEmail        = "auth/invalid-email"
	AuthCodeOperationNotAllowed = "auth/operation-not-allowed"
	AuthCodeWeakPassword        = "auth/weak-password"
	AuthCodeUserDisabled        = "auth/user-disabled"
	AuthCodeUserNotFound        = "auth/user-not-found"
	AuthCodeWrongPassword       = "auth/wrong-password"
)

// authMessages is the fixed lookup table for auth error codes. Unmapped
// codes fall back to DefaultAuthMessage.
var authMessages = map[string]string{
	AuthCodeEmailInUse:          "Este email ya está registrado",
	AuthCodeInvalidEmail:        "Email inválido",
	AuthCodeOperationNotAllowed: "Operación no permitida",
	AuthCodeWeakPassword:        "La contraseña es muy débil",
	AuthCodeUserDisabled:        "Usuario deshabilitado",
	AuthCodeUserNotFound:        "Usuario no encontrado",
	AuthCodeWrongPassword:       "Contraseña incorrecta",
}

// DefaultAuthMessage is returned for any auth code missing from the table.
const DefaultAuthMessage = "Error al procesar la solicitud"

// AuthMessage resolves an auth error code to its user-facing message.
func AuthMessage(code string) string {
	if msg, ok := authMessages[code]; ok {
		return msg
	}
	return DefaultAuthMessage
}

// AuthError is an error reported by the auth provider, carrying the
// provider code and the localized message from the lookup table.
type AuthError struct {
	Code string
}

func (e *AuthError) Error() string {
	return AuthMessage(e.Code)
}

// NewAuthError wraps a provider code in an AuthError.
func NewAuthError(code string) *AuthError {
	return &AuthError{Code: code}
}

// ValidationError is a local, pre-network validation failure. It blocks
// the request before any backend call is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// BackendError is any transport or permission failure from the document
// store or object storage. It is surfaced to the caller without retry.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// NewBackendError wraps err with the failing operation name.
func NewBackendError(op string, err error) *BackendError {
	return &BackendError{Op: op, Err: err}
}

// ErrNoSession is returned by operations that require an active session
// (e.g. resending the verification email) when none exists.
var ErrNoSession = errors.New("no hay una sesión activa")

// ErrAuthRequired blocks the offering submission when the caller is not
// authenticated. The wizard keeps its entered data when this is returned.
var ErrAuthRequired = errors.New("Debes iniciar sesión para ofrecer servicios")

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAuth reports whether err carries an auth provider code.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
