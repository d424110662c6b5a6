package identity

import (
	"context"
	"fmt"

	"labura/models"

	"firebase.google.com/go/v4/auth"
)

// FirebaseProvider implements Provider using the Firebase Auth admin client.
type FirebaseProvider struct {
	Client *auth.Client
}

// NewFirebaseProvider wraps an initialized Firebase Auth client.
func NewFirebaseProvider(client *auth.Client) *FirebaseProvider {
	return &FirebaseProvider{Client: client}
}

// CreateUser registers the identity with the provider under the given id.
func (p *FirebaseProvider) CreateUser(ctx context.Context, id, email, password, displayName string) error {
	params := (&auth.UserToCreate{}).
		UID(id).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(false)

	if _, err := p.Client.CreateUser(ctx, params); err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return models.NewAuthError(models.AuthCodeEmailInUse)
		}
		return fmt.Errorf("identity: failed to create user: %w", err)
	}
	return nil
}

// UpdatePhoto sets the identity's photo URL.
func (p *FirebaseProvider) UpdatePhoto(ctx context.Context, id, photoURL string) error {
	params := (&auth.UserToUpdate{}).PhotoURL(photoURL)
	if _, err := p.Client.UpdateUser(ctx, id, params); err != nil {
		return fmt.Errorf("identity: failed to update photo: %w", err)
	}
	return nil
}

// UpdateDisplayName sets the identity's display name.
func (p *FirebaseProvider) UpdateDisplayName(ctx context.Context, id, displayName string) error {
	params := (&auth.UserToUpdate{}).DisplayName(displayName)
	if _, err := p.Client.UpdateUser(ctx, id, params); err != nil {
		return fmt.Errorf("identity: failed to update display name: %w", err)
	}
	return nil
}

// EmailVerificationLink mints a verification link for the address.
func (p *FirebaseProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	link, err := p.Client.EmailVerificationLink(ctx, email)
	if err != nil {
		return "", fmt.Errorf("identity: failed to mint verification link: %w", err)
	}
	return link, nil
}

// PasswordResetLink mints a password reset link for the address.
func (p *FirebaseProvider) PasswordResetLink(ctx context.Context, email string) (string, error) {
	link, err := p.Client.PasswordResetLink(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", models.NewAuthError(models.AuthCodeUserNotFound)
		}
		return "", fmt.Errorf("identity: failed to mint reset link: %w", err)
	}
	return link, nil
}
