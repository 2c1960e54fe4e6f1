package model

const (
	ValidationRuleRequired  = "required"
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
	ValidationRuleCustom    = "custom"
)

// ValidationRule is the declarative form of a single field constraint. Length
// limits encode their bound in Params["value"], pattern rules keep the
// expression in Params["pattern"] and custom rules name a catalog validator
// in Params["name"]. Params stay strings so JSON and YAML snapshots match.
type ValidationRule struct {
	Kind    string            `json:"kind" yaml:"kind"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Message string            `json:"message,omitempty" yaml:"message,omitempty"`
}

// Field describes one scalar input of a form.
type Field struct {
	Name            string            `json:"name" yaml:"name"`
	Label           string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description     string            `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder     string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Format          string            `json:"format,omitempty" yaml:"format,omitempty"`
	Default         string            `json:"default,omitempty" yaml:"default,omitempty"`
	Required        bool              `json:"required,omitempty" yaml:"required,omitempty"`
	RequiredMessage string            `json:"requiredMessage,omitempty" yaml:"requiredMessage,omitempty"`
	Validations     []ValidationRule  `json:"validations,omitempty" yaml:"validations,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FormModel is a named, ordered list of fields.
type FormModel struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field           `json:"fields" yaml:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
