package rules

import (
	"fmt"
	"reflect"
	"regexp"
)

// Kind identifies the rule variant.
type Kind string

const (
	KindRequired  Kind = "required"
	KindMinLength Kind = "minLength"
	KindMaxLength Kind = "maxLength"
	KindPattern   Kind = "pattern"
	KindCustom    Kind = "custom"
)

// Matcher reports whether a value matches a pattern. *regexp.Regexp
// implements it; callers can plug in any other engine.
type Matcher interface {
	MatchString(value string) bool
}

// Validator is the capability behind a custom rule. Check must be pure and
// synchronous: it may not touch the registry that owns the field.
type Validator interface {
	Check(value string) error
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(value string) error

// Check calls fn(value).
func (fn ValidatorFunc) Check(value string) error {
	return fn(value)
}

// Rule is a single declarative constraint on a field value. The zero value is
// not a usable rule; build rules with the constructors below.
type Rule struct {
	kind      Kind
	message   string
	limit     int
	matcher   Matcher
	expr      string
	validator Validator
}

// Required fails when the value is empty after trimming Unicode whitespace.
func Required(message string) Rule {
	return Rule{kind: KindRequired, message: message}
}

// MinLength fails when the value holds fewer than min characters (see Length).
func MinLength(min int, message string) Rule {
	return Rule{kind: KindMinLength, limit: min, message: message}
}

// MaxLength fails when the value holds more than max characters (see Length).
func MaxLength(max int, message string) Rule {
	return Rule{kind: KindMaxLength, limit: max, message: message}
}

// Pattern fails when matcher does not match the value. A nil matcher, or an
// interface holding a nil pointer or func, is kept as missing and reported as
// FailurePatternConfig on every evaluation.
func Pattern(matcher Matcher, message string) Rule {
	if isNil(matcher) {
		return Rule{kind: KindPattern, message: message}
	}
	if re, ok := matcher.(*regexp.Regexp); ok {
		return Rule{kind: KindPattern, matcher: re, expr: re.String(), message: message}
	}
	return Rule{kind: KindPattern, matcher: matcher, message: message}
}

// PatternString compiles expr with the standard regexp engine. A malformed
// expression returns a *ConfigError instead of a rule.
func PatternString(expr, message string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, &ConfigError{
			Kind:    FailurePatternConfig,
			Pattern: expr,
			Err:     err,
		}
	}
	return Pattern(re, message), nil
}

// MustPattern is PatternString for expressions known at compile time. It
// panics on a malformed expression.
func MustPattern(expr, message string) Rule {
	rule, err := PatternString(expr, message)
	if err != nil {
		panic(err)
	}
	return rule
}

// Custom delegates to validator. When the validator returns an error its
// message is reported verbatim; an error with an empty message falls back to
// the rule message.
func Custom(validator Validator, message string) Rule {
	if IsNilValidator(validator) {
		validator = nil
	}
	return Rule{kind: KindCustom, validator: validator, message: message}
}

// IsNilValidator reports whether v cannot be called: it is nil or wraps a nil
// pointer, func, map or similar. Such a validator evaluates to
// FailureInvalidRule.
func IsNilValidator(v Validator) bool {
	return isNil(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// CustomFunc is Custom for plain functions.
func CustomFunc(fn func(value string) error, message string) Rule {
	if fn == nil {
		return Custom(nil, message)
	}
	return Custom(ValidatorFunc(fn), message)
}

// Kind reports the rule variant.
func (r Rule) Kind() Kind { return r.kind }

// Message returns the user-facing message attached to the rule.
func (r Rule) Message() string { return r.message }

// Limit returns the bound of a length rule and zero for other kinds.
func (r Rule) Limit() int {
	switch r.kind {
	case KindMinLength, KindMaxLength:
		return r.limit
	default:
		return 0
	}
}

// Expr returns the source expression of a pattern rule when known.
func (r Rule) Expr() string { return r.expr }

func (r Rule) String() string {
	switch r.kind {
	case KindMinLength, KindMaxLength:
		return fmt.Sprintf("%s(%d)", r.kind, r.limit)
	case KindPattern:
		if r.expr != "" {
			return fmt.Sprintf("%s(%q)", r.kind, r.expr)
		}
		return string(r.kind)
	case "":
		return "invalid"
	default:
		return string(r.kind)
	}
}
