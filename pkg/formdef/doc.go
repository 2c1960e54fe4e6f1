// Package formdef turns declarative form definitions into live form state.
// Definitions are JSON or YAML documents holding one or more forms; each
// field's rule descriptors are compiled into a rules.Set, with malformed
// patterns and unknown validator names reported at load time instead of
// surfacing later as silently passing rules. Bind registers a compiled form
// with a form.Controller and seeds field defaults.
//
// User-facing strings coming from definition files (labels, descriptions,
// rule messages) are reduced to plain text before they reach a renderer.
package formdef
