package resolve

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveProfile_ExactMatch(t *testing.T) {
	got, err := ResolveProfile("RedHat-9", []string{"RedHat-9", "Debian-12"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "RedHat-9" {
		t.Errorf("expected RedHat-9, got %q", got)
	}
}

func TestResolveProfile_Fallback(t *testing.T) {
	got, err := ResolveProfile("UNKNOWN", []string{"UAT", "PROD"}, "UAT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "UAT" {
		t.Errorf("expected fallback UAT, got %q", got)
	}
}

func TestResolveProfile_FallbackIgnoredOnMatch(t *testing.T) {
	got, err := ResolveProfile("PROD", []string{"UAT", "PROD"}, "UAT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "PROD" {
		t.Errorf("expected exact match PROD, got %q", got)
	}
}

func TestResolveProfile_Invalid(t *testing.T) {
	_, err := ResolveProfile("UNKNOWN", []string{"UAT", "PROD"}, "")
	if err == nil {
		t.Fatal("expected error for unknown profile without fallback")
	}

	if !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestResolveProfile_EmptyList(t *testing.T) {
	_, err := ResolveProfile("anything", nil, "")
	if !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestSimilarProfiles(t *testing.T) {
	profiles := []string{"RedHat-9", "RedHat-8", "Debian-12", "WindowsProd"}

	similar := similarProfiles("RedHat9", profiles)
	if len(similar) == 0 {
		t.Fatal("expected at least one suggestion for RedHat9")
	}

	if !strings.HasPrefix(similar[0], "RedHat") {
		t.Errorf("expected RedHat suggestion first, got %v", similar)
	}

	if len(similar) > maxProfileSuggestions {
		t.Errorf("too many suggestions: %v", similar)
	}
}
