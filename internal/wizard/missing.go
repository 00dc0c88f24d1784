// internal/wizard/missing.go
package wizard

import "scholar-portal/internal/models"

// Missing returns the catalog entries for every required key that is unset
// in the record. A field is unset only when the record is nil or the value
// is an empty string; zero and false count as filled. Keys absent from the
// catalog are skipped. Pure; callers decide when to recompute (on load and
// on save, not per keystroke, so form focus is not disturbed by validation
// churn).
func Missing(p *models.Profile, requiredKeys []string) []Field {
	if len(requiredKeys) == 0 {
		return nil
	}

	required := make(map[string]bool, len(requiredKeys))
	for _, k := range requiredKeys {
		required[k] = true
	}

	var out []Field
	for _, f := range fields {
		if required[f.Key] && !f.Present(p) {
			out = append(out, f)
		}
	}
	return out
}

// RequiredFields filters the catalog to the requested keys, keeping form
// order. Unknown keys are dropped.
func RequiredFields(requiredKeys []string) []Field {
	required := make(map[string]bool, len(requiredKeys))
	for _, k := range requiredKeys {
		required[k] = true
	}

	var out []Field
	for _, f := range fields {
		if required[f.Key] {
			out = append(out, f)
		}
	}
	return out
}
