package auth

import (
	"context"
	"errors"
	"testing"

	"labura/models"
	"labura/services/session"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// mockRepo implements profileRepo.ProfileRepository with function fields.
type mockRepo struct {
	getByID                  func(id string) (*models.Profile, error)
	getByEmail               func(email string) (*models.Profile, error)
	create                   func(p *models.Profile) error
	update                   func(p *models.Profile) error
	setFields                func(id string, fields bson.M) error
	setOffering              func(id string, o models.ServiceOffering, name string) error
	findByOffering           func(categoria, tipoServicio string) ([]models.Profile, error)
	getByIDWithProjection    func(id string, proj bson.M) (*models.Profile, error)
	getByEmailWithProjection func(email string, proj bson.M) (*models.Profile, error)
}

func (m *mockRepo) GetByID(id string) (*models.Profile, error) {
	if m.getByID != nil {
		return m.getByID(id)
	}
	return nil, nil
}

func (m *mockRepo) GetByEmail(email string) (*models.Profile, error) {
	if m.getByEmail != nil {
		return m.getByEmail(email)
	}
	return nil, nil
}

func (m *mockRepo) Create(p *models.Profile) error {
	if m.create != nil {
		return m.create(p)
	}
	return nil
}

func (m *mockRepo) Update(p *models.Profile) error {
	if m.update != nil {
		return m.update(p)
	}
	return nil
}

func (m *mockRepo) SetFields(id string, fields bson.M) error {
	if m.setFields != nil {
		return m.setFields(id, fields)
	}
	return nil
}

func (m *mockRepo) SetOffering(id string, o models.ServiceOffering, name string) error {
	if m.setOffering != nil {
		return m.setOffering(id, o, name)
	}
	return nil
}

func (m *mockRepo) FindByOffering(categoria, tipoServicio string) ([]models.Profile, error) {
	if m.findByOffering != nil {
		return m.findByOffering(categoria, tipoServicio)
	}
	return []models.Profile{}, nil
}

func (m *mockRepo) GetByIDWithProjection(id string, proj bson.M) (*models.Profile, error) {
	if m.getByIDWithProjection != nil {
		return m.getByIDWithProjection(id, proj)
	}
	return nil, nil
}

func (m *mockRepo) GetByEmailWithProjection(email string, proj bson.M) (*models.Profile, error) {
	if m.getByEmailWithProjection != nil {
		return m.getByEmailWithProjection(email, proj)
	}
	return nil, nil
}

// mockProvider implements identity.Provider and counts calls.
type mockProvider struct {
	createCalls int
	createErr   error
	photoCalls  int
	nameCalls   int
}

func (m *mockProvider) CreateUser(ctx context.Context, id, email, password, displayName string) error {
	m.createCalls++
	return m.createErr
}

func (m *mockProvider) UpdatePhoto(ctx context.Context, id, photoURL string) error {
	m.photoCalls++
	return nil
}

func (m *mockProvider) UpdateDisplayName(ctx context.Context, id, displayName string) error {
	m.nameCalls++
	return nil
}

func (m *mockProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	return "https://example.com/verify", nil
}

func (m *mockProvider) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return "https://example.com/reset", nil
}

// mockMailer implements mail.Mailer.
type mockMailer struct {
	verifications []string
	resets        []string
	err           error
}

func (m *mockMailer) EnqueueVerification(email, nombre string) error {
	if m.err != nil {
		return m.err
	}
	m.verifications = append(m.verifications, email)
	return nil
}

func (m *mockMailer) EnqueuePasswordReset(email string) error {
	if m.err != nil {
		return m.err
	}
	m.resets = append(m.resets, email)
	return nil
}

func newTestService(repo *mockRepo, provider *mockProvider, mailer *mockMailer) *DefaultAuthService {
	return &DefaultAuthService{
		Repo:     repo,
		Provider: provider,
		Mailer:   mailer,
		Session:  session.NewCell(),
	}
}

func TestRegisterRejectsWeakPasswordBeforeAnyBackendCall(t *testing.T) {
	repoCalls := 0
	repo := &mockRepo{
		getByEmailWithProjection: func(email string, proj bson.M) (*models.Profile, error) {
			repoCalls++
			return nil, nil
		},
	}
	provider := &mockProvider{}
	svc := newTestService(repo, provider, &mockMailer{})

	_, err := svc.Register("ana@example.com", "corta", "Ana")
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repoCalls != 0 || provider.createCalls != 0 {
		t.Errorf("expected no backend calls, repo=%d provider=%d", repoCalls, provider.createCalls)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestService(&mockRepo{}, provider, &mockMailer{})

	_, err := svc.Register("sin-arroba", "Segura123!", "Ana")
	var ae *models.AuthError
	if !errors.As(err, &ae) || ae.Code != models.AuthCodeInvalidEmail {
		t.Fatalf("expected invalid-email auth error, got %v", err)
	}
	if err.Error() != "Email inválido" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if provider.createCalls != 0 {
		t.Error("provider should not be called for an invalid email")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &mockRepo{
		getByEmailWithProjection: func(email string, proj bson.M) (*models.Profile, error) {
			return &models.Profile{ID: "existing"}, nil
		},
	}
	provider := &mockProvider{}
	svc := newTestService(repo, provider, &mockMailer{})

	_, err := svc.Register("ana@example.com", "Segura123!", "Ana")
	var ae *models.AuthError
	if !errors.As(err, &ae) || ae.Code != models.AuthCodeEmailInUse {
		t.Fatalf("expected email-in-use auth error, got %v", err)
	}
	if err.Error() != "Este email ya está registrado" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if provider.createCalls != 0 {
		t.Error("provider should not be called for a duplicate email")
	}
}

func TestRegisterSuccess(t *testing.T) {
	var created *models.Profile
	var tokenHashSet bool
	repo := &mockRepo{
		create: func(p *models.Profile) error {
			created = p
			return nil
		},
		setFields: func(id string, fields bson.M) error {
			if _, ok := fields["token_hash"]; ok {
				tokenHashSet = true
			}
			return nil
		},
	}
	provider := &mockProvider{}
	mailer := &mockMailer{}
	svc := newTestService(repo, provider, mailer)

	resp, err := svc.Register("ana@example.com", "Segura123!", "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if provider.createCalls != 1 {
		t.Errorf("expected 1 provider create, got %d", provider.createCalls)
	}
	if created == nil {
		t.Fatal("expected a profile document to be created")
	}
	if created.NombreUsuario != "ana" {
		t.Errorf("expected username from email prefix, got %q", created.NombreUsuario)
	}
	if created.PasswordHash == "" || created.PasswordHash == "Segura123!" {
		t.Error("expected a hashed password on the document")
	}
	if !tokenHashSet {
		t.Error("expected the token hash to be stored")
	}
	if len(mailer.verifications) != 1 || mailer.verifications[0] != "ana@example.com" {
		t.Errorf("expected a verification email, got %v", mailer.verifications)
	}
	current := svc.Session.Current()
	if current == nil || current.ID != resp.ID {
		t.Error("expected the session cell to hold the new identity")
	}
}

func TestRegisterSurvivesMailFailure(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockProvider{}, &mockMailer{err: errors.New("queue down")})

	if _, err := svc.Register("ana@example.com", "Segura123!", "Ana"); err != nil {
		t.Fatalf("mail failure must not fail registration: %v", err)
	}
}

func TestRegisterNoRollbackOnProfileWriteFailure(t *testing.T) {
	repo := &mockRepo{
		create: func(p *models.Profile) error { return errors.New("write failed") },
	}
	provider := &mockProvider{}
	svc := newTestService(repo, provider, &mockMailer{})

	_, err := svc.Register("ana@example.com", "Segura123!", "Ana")
	var be *models.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	// The identity record was created and stays created.
	if provider.createCalls != 1 {
		t.Errorf("expected the provider create to have happened, got %d", provider.createCalls)
	}
	if svc.Session.Current() != nil {
		t.Error("expected no session after a failed registration")
	}
}

func TestLoginUserNotFound(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockProvider{}, &mockMailer{})

	_, err := svc.Login("nadie@example.com", "Segura123!")
	var ae *models.AuthError
	if !errors.As(err, &ae) || ae.Code != models.AuthCodeUserNotFound {
		t.Fatalf("expected user-not-found, got %v", err)
	}
	if err.Error() != "Usuario no encontrado" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLoginDisabledUser(t *testing.T) {
	repo := &mockRepo{
		getByEmail: func(email string) (*models.Profile, error) {
			return &models.Profile{ID: "u1", Disabled: true}, nil
		},
	}
	svc := newTestService(repo, &mockProvider{}, &mockMailer{})

	_, err := svc.Login("ana@example.com", "Segura123!")
	var ae *models.AuthError
	if !errors.As(err, &ae) || ae.Code != models.AuthCodeUserDisabled {
		t.Fatalf("expected user-disabled, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Correcta1!"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &mockRepo{
		getByEmail: func(email string) (*models.Profile, error) {
			return &models.Profile{ID: "u1", CorreoElectronico: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestService(repo, &mockProvider{}, &mockMailer{})

	_, err = svc.Login("ana@example.com", "Equivocada1!")
	var ae *models.AuthError
	if !errors.As(err, &ae) || ae.Code != models.AuthCodeWrongPassword {
		t.Fatalf("expected wrong-password, got %v", err)
	}
	if err.Error() != models.AuthMessage(models.AuthCodeWrongPassword) {
		t.Errorf("unexpected message %q", err.Error())
	}
	if svc.Session.Current() != nil {
		t.Error("a failed login must leave the session signed out")
	}
}

func TestLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Correcta1!"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &mockRepo{
		getByEmail: func(email string) (*models.Profile, error) {
			return &models.Profile{
				ID:                "u1",
				Nombre:            "Ana",
				CorreoElectronico: email,
				PasswordHash:      string(hash),
				EmailVerificado:   true,
			}, nil
		},
	}
	svc := newTestService(repo, &mockProvider{}, &mockMailer{})

	resp, err := svc.Login("ana@example.com", "Correcta1!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" || resp.ID != "u1" {
		t.Errorf("unexpected response %+v", resp)
	}
	current := svc.Session.Current()
	if current == nil || current.Email != "ana@example.com" {
		t.Error("expected the session cell to hold the identity")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockProvider{}, &mockMailer{})

	// Signed out already: both calls succeed.
	if err := svc.Logout(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Logout("u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Session.Current() != nil {
		t.Error("expected the session to stay signed out")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockProvider{}, &mockMailer{})
	svc.Session.Set(&models.Identity{ID: "u1"})

	if err := svc.Logout("u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Session.Current() != nil {
		t.Error("expected the session cell to be cleared")
	}
}

func TestSendVerificationEmailRequiresSession(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockProvider{}, &mockMailer{})

	if err := svc.SendVerificationEmail(""); !errors.Is(err, models.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestSendVerificationEmailUsesCallerProfile(t *testing.T) {
	mailer := &mockMailer{}
	repo := &mockRepo{
		getByIDWithProjection: func(id string, proj bson.M) (*models.Profile, error) {
			if id != "u1" {
				t.Errorf("expected lookup for u1, got %q", id)
			}
			return &models.Profile{ID: "u1", Nombre: "Ana", CorreoElectronico: "ana@example.com"}, nil
		},
	}
	svc := newTestService(repo, &mockProvider{}, mailer)

	if err := svc.SendVerificationEmail("u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.verifications) != 1 || mailer.verifications[0] != "ana@example.com" {
		t.Errorf("expected one verification email, got %v", mailer.verifications)
	}
}

func TestSendVerificationEmailUnknownIdentity(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockProvider{}, &mockMailer{})

	err := svc.SendVerificationEmail("ghost")
	var ae *models.AuthError
	if !errors.As(err, &ae) || ae.Code != models.AuthCodeUserNotFound {
		t.Fatalf("expected user-not-found, got %v", err)
	}
}

func TestSendVerificationEmailTargetsCallerNotLastLogin(t *testing.T) {
	profiles := make(map[string]*models.Profile)
	repo := &mockRepo{
		create: func(p *models.Profile) error {
			profiles[p.ID] = p
			return nil
		},
		getByIDWithProjection: func(id string, proj bson.M) (*models.Profile, error) {
			return profiles[id], nil
		},
	}
	mailer := &mockMailer{}
	svc := newTestService(repo, &mockProvider{}, mailer)

	respA, err := svc.Register("a@example.com", "Segura123!", "A")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register("b@example.com", "Segura123!", "B"); err != nil {
		t.Fatal(err)
	}

	// A's request resends after B signed in; the email must go to A.
	if err := svc.SendVerificationEmail(respA.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := mailer.verifications[len(mailer.verifications)-1]
	if last != "a@example.com" {
		t.Errorf("resend went to %q, expected a@example.com", last)
	}
}

func TestResetPasswordEnqueues(t *testing.T) {
	mailer := &mockMailer{}
	svc := newTestService(&mockRepo{}, &mockProvider{}, mailer)

	if err := svc.ResetPassword("ana@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.resets) != 1 || mailer.resets[0] != "ana@example.com" {
		t.Errorf("expected one reset email, got %v", mailer.resets)
	}
}
