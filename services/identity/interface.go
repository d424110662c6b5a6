// Package identity wraps the managed auth provider surface the
// application consumes: create-with-password, display-attribute updates
// and email action links.
package identity

import "context"

// Provider is the auth provider surface. Implementations translate
// provider-native failures into models.AuthError codes where possible.
type Provider interface {
	// CreateUser registers an identity record with the provider.
	CreateUser(ctx context.Context, id, email, password, displayName string) error
	// UpdatePhoto sets the identity's photo reference.
	UpdatePhoto(ctx context.Context, id, photoURL string) error
	// UpdateDisplayName sets the identity's display name.
	UpdateDisplayName(ctx context.Context, id, displayName string) error
	// EmailVerificationLink mints a verification link for the address.
	EmailVerificationLink(ctx context.Context, email string) (string, error)
	// PasswordResetLink mints a password reset link for the address.
	PasswordResetLink(ctx context.Context, email string) (string, error)
}
