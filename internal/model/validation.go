package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errFormIDMissing    = errors.New("model: form id is required")
	errFieldNameMissing = errors.New("model: field name is required")
)

// ValidateForm checks the structural requirements of a form definition:
// an id and non-empty, unique field names.
func ValidateForm(form FormModel) error {
	if strings.TrimSpace(form.ID) == "" {
		return errFormIDMissing
	}
	seen := make(map[string]struct{}, len(form.Fields))
	for idx, field := range form.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("model: form %q field %d: %w", form.ID, idx, errFieldNameMissing)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("model: form %q declares field %q twice", form.ID, name)
		}
		seen[name] = struct{}{}
		for ridx, rule := range field.Validations {
			if strings.TrimSpace(rule.Kind) == "" {
				return fmt.Errorf("model: form %q field %q validation %d has no kind", form.ID, name, ridx)
			}
		}
	}
	return nil
}
