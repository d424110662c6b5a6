package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("user-123", "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "user-123" {
		t.Errorf("expected subject user-123, got %q", id)
	}
}

func TestExtractRejectsGarbage(t *testing.T) {
	if _, err := ExtractIDFromToken("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestExtractRejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-123", "ana@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Error("expected an error for an expired token")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	if a != b {
		t.Error("expected identical hashes for identical input")
	}
	if len(a) != 64 {
		t.Errorf("expected a 64-char hex digest, got %d chars", len(a))
	}
	if HashToken("abd") == a {
		t.Error("expected different hashes for different input")
	}
}
