package questions

import (
	"strings"

	"github.com/ArushKhare/LockedInterview/internal/models"
)

// SelectPool maps a filter to its question pool. Every input resolves to
// some pool: a type other than "technical" gets the behavioral pool, and
// an unrecognized technical role falls back to the generic SWE pool.
// Only empty values take the defaults; values are case-folded but not
// trimmed. Level is accepted but ignored.
func SelectPool(f models.InterviewFilter) Pool {
	f = f.WithDefaults()
	typ := strings.ToLower(f.Type)
	role := strings.ToLower(f.Role)
	style := strings.ToLower(f.Style)

	if typ != "technical" {
		return behavioralGeneric
	}

	switch role {
	case "swe":
		if style == "faang" {
			return techSweFaangIntern
		}
		return techSweGeneric
	case "data scientist":
		return techDsGeneric
	case "product manager":
		return techPmGeneric
	default:
		return techSweGeneric
	}
}
