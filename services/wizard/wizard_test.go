package wizard

import (
	"context"
	"errors"
	"io"
	"testing"

	"labura/models"
)

// mockProfiles implements profile.ProfileService for submit tests.
type mockProfiles struct {
	submitErr error
	submitted []models.ServiceOffering
}

func (m *mockProfiles) GetProfile(id string) (*models.Profile, error) { return nil, nil }

func (m *mockProfiles) UpdateProfile(id string, update models.ProfileUpdate) (*models.Profile, error) {
	return nil, nil
}

func (m *mockProfiles) SubmitOffering(identityID string, offering models.ServiceOffering) error {
	if m.submitErr != nil {
		return m.submitErr
	}
	m.submitted = append(m.submitted, offering)
	return nil
}

func (m *mockProfiles) UploadPhoto(ctx context.Context, identityID, filename, contentType string, size int64, r io.Reader) (string, error) {
	return "", nil
}

func completedWizard(t *testing.T) *Wizard {
	t.Helper()
	w := New()
	if err := w.SelectCategory("hogar"); err != nil {
		t.Fatal(err)
	}
	if err := w.SelectService("plomeria"); err != nil {
		t.Fatal(err)
	}
	w.SetDetails("Destapaciones", "Palermo", 25, "Lun a Vie 9-18")
	return w
}

func TestNewWizardStartsAtStepOne(t *testing.T) {
	w := New()
	if w.Step != StepCategory {
		t.Errorf("expected step %d, got %d", StepCategory, w.Step)
	}
	if w.RadioCobertura != DefaultRadius {
		t.Errorf("expected default radius %d, got %d", DefaultRadius, w.RadioCobertura)
	}
}

func TestSelectCategoryAdvances(t *testing.T) {
	w := New()
	if err := w.SelectCategory("mascotas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Step != StepService || w.Categoria != "mascotas" {
		t.Errorf("unexpected state %+v", w)
	}
}

func TestSelectCategoryRejectsUnknown(t *testing.T) {
	w := New()
	if err := w.SelectCategory("autos"); !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if w.Step != StepCategory {
		t.Error("a rejected selection must not advance")
	}
}

func TestSelectServiceEnforcesStepOrder(t *testing.T) {
	w := New()
	// Cannot pick a service before a category.
	if err := w.SelectService("plomeria"); !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSelectServiceRejectsPairOutsideCategory(t *testing.T) {
	w := New()
	if err := w.SelectCategory("hogar"); err != nil {
		t.Fatal(err)
	}
	if err := w.SelectService("yoga"); !models.IsValidation(err) {
		t.Fatalf("expected ValidationError for out-of-category service, got %v", err)
	}
	if w.Step != StepService {
		t.Error("a rejected selection must not advance")
	}
}

func TestBackPreservesSelectionsAndDetails(t *testing.T) {
	w := completedWizard(t)

	w.Back()
	if w.Step != StepService {
		t.Errorf("expected step %d, got %d", StepService, w.Step)
	}
	if w.Categoria != "hogar" || w.TipoServicio != "plomeria" {
		t.Error("back must keep the selections")
	}
	if w.Descripcion != "Destapaciones" || w.RadioCobertura != 25 {
		t.Error("back must keep the entered details")
	}

	w.Back()
	w.Back() // already at step 1, stays there
	if w.Step != StepCategory {
		t.Errorf("expected step %d, got %d", StepCategory, w.Step)
	}
}

func TestSetDetailsClampsRadius(t *testing.T) {
	w := New()
	w.SetDetails("d", "u", 500, "h")
	if w.RadioCobertura != 100 {
		t.Errorf("expected radius clamped to 100, got %d", w.RadioCobertura)
	}
	w.SetDetails("d", "u", -3, "h")
	if w.RadioCobertura != 1 {
		t.Errorf("expected radius clamped to 1, got %d", w.RadioCobertura)
	}
}

func TestSubmitRequiresDetailsStep(t *testing.T) {
	w := New()
	if err := w.Submit("u1", &mockProfiles{}); !models.IsValidation(err) {
		t.Fatalf("expected ValidationError before step 3, got %v", err)
	}
}

func TestSubmitWithoutSessionKeepsData(t *testing.T) {
	w := completedWizard(t)
	profiles := &mockProfiles{}

	err := w.Submit("", profiles)
	if !errors.Is(err, models.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if len(profiles.submitted) != 0 {
		t.Error("expected no submission without a session")
	}
	if w.Descripcion != "Destapaciones" || w.Categoria != "hogar" {
		t.Error("a failed submit must keep the entered data")
	}
}

func TestSubmitFailureKeepsData(t *testing.T) {
	w := completedWizard(t)
	profiles := &mockProfiles{submitErr: errors.New("backend down")}

	if err := w.Submit("u1", profiles); err == nil {
		t.Fatal("expected an error")
	}
	if w.Step != StepDetails || w.Ubicacion != "Palermo" {
		t.Error("a failed submit must keep the wizard intact")
	}
}

func TestSubmitSuccess(t *testing.T) {
	w := completedWizard(t)
	profiles := &mockProfiles{}

	if err := w.Submit("u1", profiles); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles.submitted) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(profiles.submitted))
	}
	got := profiles.submitted[0]
	if got.Categoria != "hogar" || got.TipoServicio != "plomeria" || got.RadioCobertura != 25 {
		t.Errorf("unexpected offering %+v", got)
	}
}
