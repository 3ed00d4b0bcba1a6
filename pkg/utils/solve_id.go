package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GenerateSolveID creates a short, human-readable solve ID.
// Format: solve-{sourceStem}-{8charHexUUID}, or solve-{8charHexUUID} without a source.
//
// Example:
//   - Input: source="plans/iron-plates.txt"
//   - Output: "solve-iron-plates-a3f8e2b1"
func GenerateSolveID(source string) string {
	stem := sourceStem(source)
	if stem == "" {
		return "solve-" + generateShortUUID()
	}
	return "solve-" + stem + "-" + generateShortUUID()
}

// sourceStem returns the file name of source without directories or extension.
// Characters other than letters, digits, '-' and '_' are replaced by '_'.
//   - "plans/iron-plates.txt" -> "iron-plates"
//   - "my plan.json" -> "my_plan"
//   - "" -> ""
func sourceStem(source string) string {
	if source == "" {
		return ""
	}
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
