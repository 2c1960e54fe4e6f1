// Package rules holds the validation rules a form field is checked against
// and the evaluator that applies them. A Set is evaluated in order and stops
// at the first failing rule; the failure carries a FailureKind so callers can
// tell user-data problems (required, length, pattern, custom) apart from
// configuration defects such as a pattern that never compiled.
//
// Rules are immutable once constructed. Pattern matching is an injected
// capability (Matcher); *regexp.Regexp satisfies it, and PatternString
// compiles eagerly so malformed expressions are reported when the rule is
// built rather than when a value is checked.
package rules
