package form

import "github.com/goliatone/go-formstate/pkg/rules"

// FieldView is a read-only snapshot of a field for rendering consumers.
type FieldView struct {
	Name      string            `json:"name"`
	Value     string            `json:"value"`
	Status    Status            `json:"status"`
	Error     string            `json:"error,omitempty"`
	ErrorKind rules.FailureKind `json:"errorKind,omitempty"`
	Validated bool              `json:"validated"`
}

// HasError reports whether the last validation failed.
func (v FieldView) HasError() bool {
	return v.Status == StatusError
}

// Field holds the value, rules and last validation outcome of one named
// input. Status and error only change through Validate.
type Field struct {
	name      string
	value     string
	rules     rules.Set
	status    Status
	failure   *rules.Result
	validated bool
}

// NewField creates an untouched field with an empty value.
func NewField(name string, set rules.Set) *Field {
	return &Field{
		name:  name,
		rules: set.Clone(),
	}
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Value returns the current value, validated or not.
func (f *Field) Value() string { return f.value }

// Status returns the outcome of the last validation.
func (f *Field) Status() Status { return f.status }

// Validated reports whether Validate has run since the last reset.
func (f *Field) Validated() bool { return f.validated }

// Rules returns a copy of the field's rule set.
func (f *Field) Rules() rules.Set { return f.rules.Clone() }

// Error returns the message of the failing rule, or "" when the last
// validation passed or never ran.
func (f *Field) Error() string {
	if f.failure == nil {
		return ""
	}
	return f.failure.Message
}

// SetValue replaces the value. It does not validate.
func (f *Field) SetValue(value string) {
	f.value = value
}

// Validate evaluates the current value against the current rules and records
// the outcome. A field without rules passes but keeps StatusUntouched.
func (f *Field) Validate() bool {
	f.validated = true
	if len(f.rules) == 0 {
		f.status = StatusUntouched
		f.failure = nil
		return true
	}

	res := f.rules.Evaluate(f.value)
	if res.Valid {
		f.status = StatusSuccess
		f.failure = nil
		return true
	}
	f.status = StatusError
	f.failure = &res
	return false
}

// View returns a snapshot of the field.
func (f *Field) View() FieldView {
	view := FieldView{
		Name:      f.name,
		Value:     f.value,
		Status:    f.status,
		Validated: f.validated,
	}
	if f.failure != nil {
		view.Error = f.failure.Message
		view.ErrorKind = f.failure.Kind
	}
	return view
}

func (f *Field) setRules(set rules.Set) {
	f.rules = set.Clone()
}

func (f *Field) reset() {
	f.value = ""
	f.status = StatusUntouched
	f.failure = nil
	f.validated = false
}
