package rules

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Set is an ordered list of rules for one field. Order is evaluation order.
type Set []Rule

// Result is the outcome of evaluating a Set against a value. Index is the
// position of the failing rule, or -1 when the value passed.
type Result struct {
	Valid   bool
	Kind    FailureKind
	Message string
	Index   int
	Cause   error
}

func passed() Result {
	return Result{Valid: true, Index: -1}
}

// Err returns nil for a passing result and a *Failure otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &Failure{Kind: r.Kind, Message: r.Message, Index: r.Index, Cause: r.Cause}
}

// Evaluate checks value against the set. See Evaluate.
func (s Set) Evaluate(value string) Result {
	return Evaluate(value, s)
}

// Clone returns a copy of the set that shares no backing array with s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	return append(Set(nil), s...)
}

// Evaluate checks value against each rule in order and returns on the first
// failure. Later rules, including custom validators, are not run once a rule
// has failed. An empty set always passes.
func Evaluate(value string, set []Rule) Result {
	for idx, rule := range set {
		if res := rule.check(value); !res.Valid {
			res.Index = idx
			return res
		}
	}
	return passed()
}

// Length counts the Unicode code points of value after NFC normalisation, so
// a precomposed and a decomposed accented letter both count as one.
func Length(value string) int {
	if isASCII(value) {
		return len(value)
	}
	return utf8.RuneCountInString(norm.NFC.String(value))
}

func (r Rule) check(value string) Result {
	switch r.kind {
	case KindRequired:
		if strings.TrimSpace(value) == "" {
			return r.fail(FailureRequired, nil)
		}
	case KindMinLength:
		if Length(value) < r.limit {
			return r.fail(FailureTooShort, nil)
		}
	case KindMaxLength:
		if Length(value) > r.limit {
			return r.fail(FailureTooLong, nil)
		}
	case KindPattern:
		if r.matcher == nil {
			return r.fail(FailurePatternConfig, ErrNilMatcher)
		}
		if !r.matcher.MatchString(value) {
			return r.fail(FailurePatternMismatch, nil)
		}
	case KindCustom:
		if r.validator == nil {
			return r.fail(FailureInvalidRule, ErrNilValidator)
		}
		if err := r.validator.Check(value); err != nil {
			res := r.fail(FailureCustom, err)
			if msg := err.Error(); msg != "" {
				res.Message = msg
			}
			return res
		}
	default:
		return r.fail(FailureInvalidRule, nil)
	}
	return passed()
}

func (r Rule) fail(kind FailureKind, cause error) Result {
	return Result{Kind: kind, Message: r.message, Cause: cause}
}

func isASCII(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
