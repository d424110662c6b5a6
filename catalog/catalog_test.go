package catalog

import "testing"

func TestCategoriesOrder(t *testing.T) {
	got := Categories()
	want := []string{Hogar, Mascotas, Deporte, Estetica, Asistencia, Mas}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("category %d: expected %q, got %q", i, id, got[i].ID)
		}
	}
}

func TestEveryCategoryHasEightServices(t *testing.T) {
	for _, c := range Categories() {
		services := ServicesFor(c.ID)
		if len(services) != 8 {
			t.Errorf("category %q: expected 8 services, got %d", c.ID, len(services))
		}
		for _, s := range services {
			if s.Name == "" || s.Emoji == "" {
				t.Errorf("category %q service %q: missing name or emoji", c.ID, s.ID)
			}
		}
	}
}

func TestServicesForUnknownCategory(t *testing.T) {
	if got := ServicesFor("autos"); got != nil {
		t.Errorf("expected nil for unknown category, got %v", got)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		category string
		service  string
		want     bool
	}{
		{Hogar, "plomeria", true},
		{Hogar, "limpieza", true},
		{Mascotas, "paseadores", true},
		{Deporte, "yoga", true},
		{Estetica, "peluquerias", true},
		{Mascotas, "peluquerias", true},
		{Hogar, "yoga", false},
		{Deporte, "plomeria", false},
		{"autos", "mecanica", false},
		{Asistencia, "mecanica", true},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.category, tt.service); got != tt.want {
			t.Errorf("Valid(%q, %q) = %v, want %v", tt.category, tt.service, got, tt.want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		if !ValidCategory(c.ID) {
			t.Errorf("expected %q to be a valid category", c.ID)
		}
	}
	if ValidCategory("autos") {
		t.Error("expected 'autos' to be invalid")
	}
	if ValidCategory("") {
		t.Error("expected empty id to be invalid")
	}
}

func TestNames(t *testing.T) {
	if got := CategoryName(Estetica); got != "Estética" {
		t.Errorf("CategoryName(estetica) = %q", got)
	}
	if got := CategoryName("autos"); got != "" {
		t.Errorf("expected empty name for unknown category, got %q", got)
	}
	if got := ServiceName(Hogar, "plomeria"); got != "Plomería" {
		t.Errorf("ServiceName(hogar, plomeria) = %q", got)
	}
	if got := ServiceName(Hogar, "yoga"); got != "" {
		t.Errorf("expected empty name for out-of-category service, got %q", got)
	}
}

func TestDefaultCategory(t *testing.T) {
	if DefaultCategory != Hogar {
		t.Errorf("expected default category %q, got %q", Hogar, DefaultCategory)
	}
}
