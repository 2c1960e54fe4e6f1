// Package model defines the declarative description of a form: an ordered
// list of scalar fields, each with optional validation rule descriptors.
// Rule descriptors use canonical kinds (required, minLength, maxLength,
// pattern, custom) with string parameters so definitions round-trip through
// JSON and YAML unchanged. The formdef package compiles these descriptors
// into executable rule sets.
package model
