package resolve

import (
	"log/slog"
	"slices"

	"github.com/sahilm/fuzzy"
)

// maxProfileSuggestions bounds the "similar" attribute on an
// ErrInvalidProfile.
const maxProfileSuggestions = 3

// ResolveProfile validates candidate against the permitted profile list.
//
// If candidate is in the list it is returned unchanged. Otherwise the
// fallback is returned when one is designated (the fallback is trusted
// as configured and not re-validated against the list). With no
// fallback, ResolveProfile fails with [ErrInvalidProfile] naming the
// rejected candidate, the permitted set, and any close matches.
func ResolveProfile(candidate string, profiles []string, fallback string) (string, error) {
	if slices.Contains(profiles, candidate) {
		return candidate, nil
	}

	if fallback != "" {
		return fallback, nil
	}

	attrs := []slog.Attr{
		slog.String("candidate", candidate),
		slog.Any("profiles", profiles),
	}

	if similar := similarProfiles(candidate, profiles); len(similar) > 0 {
		attrs = append(attrs, slog.Any("similar", similar))
	}

	return "", ErrInvalidProfile.With(attrs...)
}

// similarProfiles returns the closest fuzzy matches for a rejected
// candidate, best first.
func similarProfiles(candidate string, profiles []string) []string {
	matches := fuzzy.Find(candidate, profiles)

	n := min(len(matches), maxProfileSuggestions)

	similar := make([]string, 0, n)
	for _, m := range matches[:n] {
		similar = append(similar, m.Str)
	}

	return similar
}
