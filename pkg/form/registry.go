package form

import (
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formstate/pkg/rules"
)

// Snapshot is the result of validating every field at once. Values holds the
// field values as they were before validation ran.
type Snapshot struct {
	AllValid bool
	Values   map[string]string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger routes registry diagnostics to logger.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry owns the fields of one form, keyed by name. Callers never get a
// *Field back; they read FieldView snapshots.
type Registry struct {
	fields map[string]*Field
	order  []string
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		fields: make(map[string]*Field),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register adds a field or, when the name is already known, replaces its
// rules. The value and last outcome of an existing field are kept, so a UI
// that re-registers on every render does not lose user input. Blank names
// are ignored.
func (r *Registry) Register(name string, set ...rules.Rule) {
	if strings.TrimSpace(name) == "" {
		r.logger.Warn("form: ignoring field registration without a name")
		return
	}
	if field, ok := r.fields[name]; ok {
		field.setRules(set)
		return
	}
	r.fields[name] = NewField(name, set)
	r.order = append(r.order, name)
	r.logger.Debug("form: field registered", slog.String("field", name), slog.Int("rules", len(set)))
}

// UpdateValue sets the value of a registered field and revalidates that
// field only. Unknown names are ignored.
func (r *Registry) UpdateValue(name, value string) {
	field, ok := r.fields[name]
	if !ok {
		r.logger.Debug("form: value update for unknown field", slog.String("field", name))
		return
	}
	field.SetValue(value)
	if !field.Validate() {
		r.logger.Debug("form: field invalid",
			slog.String("field", name),
			slog.String("kind", string(field.failure.Kind)),
		)
	}
}

// ValidateAll copies every value first and then validates every field, even
// after a failure, so all errors become visible at once.
func (r *Registry) ValidateAll() Snapshot {
	snap := Snapshot{
		AllValid: true,
		Values:   r.Values(),
	}
	for _, name := range r.order {
		field := r.fields[name]
		if !field.Validate() {
			snap.AllValid = false
			if field.failure.Kind.IsConfig() {
				r.logger.Error("form: field rules are misconfigured",
					slog.String("field", name),
					slog.String("kind", string(field.failure.Kind)),
					slog.Any("error", field.failure.Cause),
				)
			}
		}
	}
	return snap
}

// Get returns a snapshot of the named field.
func (r *Registry) Get(name string) (FieldView, bool) {
	field, ok := r.fields[name]
	if !ok {
		return FieldView{}, false
	}
	return field.View(), true
}

// Views returns snapshots of every field in registration order.
func (r *Registry) Views() []FieldView {
	out := make([]FieldView, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.fields[name].View())
	}
	return out
}

// Names lists field names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len reports the number of registered fields.
func (r *Registry) Len() int {
	return len(r.order)
}

// Values returns a copy of every field value.
func (r *Registry) Values() map[string]string {
	out := make(map[string]string, len(r.fields))
	for name, field := range r.fields {
		out[name] = field.value
	}
	return out
}

// Errors returns the current error message of every failing field.
func (r *Registry) Errors() map[string]string {
	out := make(map[string]string)
	for name, field := range r.fields {
		if field.status == StatusError {
			out[name] = field.Error()
		}
	}
	return out
}

// Prefill seeds values of registered fields without validating them. Names
// that are not registered are skipped.
func (r *Registry) Prefill(values map[string]string) {
	for name, value := range values {
		if field, ok := r.fields[name]; ok {
			field.SetValue(value)
		}
	}
}

// Remove drops a field, for example when its control unmounts.
func (r *Registry) Remove(name string) {
	if _, ok := r.fields[name]; !ok {
		return
	}
	delete(r.fields, name)
	for idx, existing := range r.order {
		if existing == name {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
}

// Reset clears values and validation outcomes but keeps registrations.
func (r *Registry) Reset() {
	for _, field := range r.fields {
		field.reset()
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
