package formdef

import "errors"

var (
	// ErrInvalidRule wraps every rule descriptor that cannot be compiled.
	ErrInvalidRule = errors.New("formdef: invalid rule")
	// ErrUnknownValidator is returned when a custom rule names a validator
	// that is not in the catalog.
	ErrUnknownValidator = errors.New("formdef: unknown validator")
	// ErrFormNotFound is returned when a store has no form with the given id.
	ErrFormNotFound = errors.New("formdef: form not found")
)
