// Package tui runs a form definition as an interactive terminal session.
//
// Each answer is routed through form.Controller.OnFieldChange, the field's
// status is read back, and invalid answers are asked again a bounded number
// of times before the session submits. Prompts go through a PromptDriver; the
// default driver uses github.com/AlecAivazis/survey/v2 and tests substitute a
// scripted one.
package tui
