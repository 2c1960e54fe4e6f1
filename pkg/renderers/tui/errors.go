package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrSubmitFailed is returned by Session.Run when the final submit found
	// invalid fields. The serialized values are still returned.
	ErrSubmitFailed = errors.New("tui: submit failed")
	// ErrFieldNotRegistered is returned when the form lists a field that the
	// controller does not know about.
	ErrFieldNotRegistered = errors.New("tui: field not registered")
)
