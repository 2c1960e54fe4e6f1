package form

// Status is the validation state a rendering layer shows next to a field.
type Status int

const (
	// StatusUntouched is the state before the first validation and the state
	// of a validated field that carries no rules.
	StatusUntouched Status = iota
	StatusSuccess
	// StatusWarning and StatusValidating are reserved for rendering layers;
	// the synchronous engine never produces them.
	StatusWarning
	StatusError
	StatusValidating
)

// String returns the lower-case status name, or "unknown".
func (s Status) String() string {
	switch s {
	case StatusUntouched:
		return "untouched"
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	case StatusValidating:
		return "validating"
	default:
		return "unknown"
	}
}
