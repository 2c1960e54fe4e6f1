package formdef

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/model"
	"github.com/goliatone/go-formstate/pkg/rules"
)

const defaultRequiredMessage = "required"

// Compile builds the rule set for a field. A Required flag becomes the first
// rule; descriptors follow in declaration order. The catalog resolves custom
// rules and may be nil when the field has none.
func Compile(field model.Field, cat *Catalog) (rules.Set, error) {
	set := make(rules.Set, 0, len(field.Validations)+1)
	if field.Required {
		message := plainText(field.RequiredMessage)
		if message == "" {
			message = defaultRequiredMessage
		}
		set = append(set, rules.Required(message))
	}

	for idx, descriptor := range field.Validations {
		rule, err := compileRule(descriptor, cat)
		if err != nil {
			return nil, fmt.Errorf("field %q validation %d: %w", field.Name, idx, err)
		}
		set = append(set, rule)
	}
	return set, nil
}

func compileRule(descriptor model.ValidationRule, cat *Catalog) (rules.Rule, error) {
	message := plainText(descriptor.Message)
	kind := strings.TrimSpace(descriptor.Kind)

	switch kind {
	case model.ValidationRuleRequired:
		if message == "" {
			message = defaultRequiredMessage
		}
		return rules.Required(message), nil

	case model.ValidationRuleMinLength, model.ValidationRuleMaxLength:
		limit, err := parseLimit(descriptor.Params["value"])
		if err != nil {
			return rules.Rule{}, fmt.Errorf("%w: %s: %v", ErrInvalidRule, kind, err)
		}
		if kind == model.ValidationRuleMinLength {
			if message == "" {
				message = fmt.Sprintf("min length %d", limit)
			}
			return rules.MinLength(limit, message), nil
		}
		if message == "" {
			message = fmt.Sprintf("max length %d", limit)
		}
		return rules.MaxLength(limit, message), nil

	case model.ValidationRulePattern:
		expr := descriptor.Params["pattern"]
		if expr == "" {
			return rules.Rule{}, fmt.Errorf("%w: pattern: expression is empty", ErrInvalidRule)
		}
		if message == "" {
			message = "does not match required pattern"
		}
		rule, err := rules.PatternString(expr, message)
		if err != nil {
			return rules.Rule{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
		}
		return rule, nil

	case model.ValidationRuleCustom:
		name := strings.TrimSpace(descriptor.Params["name"])
		if name == "" {
			return rules.Rule{}, fmt.Errorf("%w: custom: validator name is empty", ErrInvalidRule)
		}
		validator, ok := cat.Lookup(name)
		if !ok {
			return rules.Rule{}, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
		}
		if message != "" {
			validator = overrideMessage{validator: validator, message: message}
		} else {
			message = "invalid value"
		}
		return rules.Custom(validator, message), nil

	default:
		return rules.Rule{}, fmt.Errorf("%w: unsupported kind %q", ErrInvalidRule, descriptor.Kind)
	}
}

func parseLimit(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("missing value")
	}
	limit, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("value %q is not an integer", trimmed)
	}
	if limit < 0 {
		return 0, fmt.Errorf("value %d is negative", limit)
	}
	return limit, nil
}

// overrideMessage reports a definition-supplied message in place of the
// catalog validator's own wording.
type overrideMessage struct {
	validator rules.Validator
	message   string
}

func (o overrideMessage) Check(value string) error {
	if err := o.validator.Check(value); err != nil {
		return &messageError{message: o.message, cause: err}
	}
	return nil
}

type messageError struct {
	message string
	cause   error
}

func (e *messageError) Error() string { return e.message }

func (e *messageError) Unwrap() error { return e.cause }
