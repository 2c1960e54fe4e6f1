package formdef

import (
	"fmt"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/model"
	"github.com/goliatone/go-formstate/pkg/rules"
)

// CompileForm compiles every field of fm, keyed by field name. The first
// failing field aborts compilation.
func CompileForm(fm model.FormModel, cat *Catalog) (map[string]rules.Set, error) {
	out := make(map[string]rules.Set, len(fm.Fields))
	for _, field := range fm.Fields {
		set, err := Compile(field, cat)
		if err != nil {
			return nil, fmt.Errorf("formdef: form %q: %w", fm.ID, err)
		}
		out[field.Name] = set
	}
	return out, nil
}

// Bind compiles fm and registers its fields with ctrl in declaration order,
// then seeds field defaults without validating them. Nothing is registered
// when any field fails to compile. Binding the same form again replaces the
// rules and keeps current values.
func Bind(ctrl *form.Controller, fm model.FormModel, cat *Catalog) error {
	if ctrl == nil {
		return fmt.Errorf("formdef: controller is required")
	}
	compiled, err := CompileForm(fm, cat)
	if err != nil {
		return err
	}

	defaults := make(map[string]string)
	registry := ctrl.Registry()
	for _, field := range fm.Fields {
		_, known := registry.Get(field.Name)
		ctrl.OnFieldRegister(field.Name, compiled[field.Name]...)
		if !known && field.Default != "" {
			defaults[field.Name] = field.Default
		}
	}
	registry.Prefill(defaults)
	return nil
}
