package model

import internalmodel "github.com/goliatone/go-formstate/internal/model"

const (
	ValidationRuleRequired  = internalmodel.ValidationRuleRequired
	ValidationRuleMinLength = internalmodel.ValidationRuleMinLength
	ValidationRuleMaxLength = internalmodel.ValidationRuleMaxLength
	ValidationRulePattern   = internalmodel.ValidationRulePattern
	ValidationRuleCustom    = internalmodel.ValidationRuleCustom
)

type ValidationRule = internalmodel.ValidationRule
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel

// Validate reports structural problems in a form definition: a missing id,
// blank or duplicate field names, or validations without a kind.
func Validate(form FormModel) error {
	return internalmodel.ValidateForm(form)
}
