package rules

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a value was rejected.
type FailureKind string

const (
	FailureNone            FailureKind = ""
	FailureRequired        FailureKind = "required_missing"
	FailureTooShort        FailureKind = "too_short"
	FailureTooLong         FailureKind = "too_long"
	FailurePatternMismatch FailureKind = "pattern_mismatch"
	// FailurePatternConfig marks a pattern rule whose matcher is unusable. It
	// is a configuration defect and never a statement about the value.
	FailurePatternConfig FailureKind = "pattern_config_invalid"
	FailureCustom        FailureKind = "custom_rejected"
	// FailureInvalidRule is reported for zero-value rules or custom rules
	// without a validator.
	FailureInvalidRule FailureKind = "invalid_rule"
)

// IsConfig reports whether the kind describes a rule defect rather than bad
// user input.
func (k FailureKind) IsConfig() bool {
	return k == FailurePatternConfig || k == FailureInvalidRule
}

var (
	// ErrNilMatcher is wrapped by the failure reported for Pattern(nil, ...).
	ErrNilMatcher = errors.New("rules: pattern matcher is nil")
	// ErrNilValidator is wrapped by the failure reported for Custom(nil, ...).
	ErrNilValidator = errors.New("rules: custom validator is nil")
)

// ConfigError reports a rule that could not be constructed.
type ConfigError struct {
	Kind    FailureKind
	Pattern string
	Err     error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "rules: invalid configuration"
	}
	if e.Pattern != "" {
		return fmt.Sprintf("rules: invalid pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("rules: invalid configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Failure is the error form of a failed Result.
type Failure struct {
	Kind    FailureKind
	Message string
	Index   int
	Cause   error
}

func (f *Failure) Error() string {
	if f.Message != "" {
		return f.Message
	}
	return string(f.Kind)
}

func (f *Failure) Unwrap() error {
	return f.Cause
}
