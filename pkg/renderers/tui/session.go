package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/model"
)

// Session walks a terminal user through the fields of a form. Every answer
// goes through the controller's live-edit path, feedback is read back from
// the field status, and the run ends with a single submit.
type Session struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	maxAttempts       int
	submitTransformer SubmitTransformer
	theme             Theme
}

// New constructs a session with defaults (survey driver, JSON output).
func New(options ...Option) *Session {
	s := &Session{
		outputFormat: OutputFormatJSON,
		maxAttempts:  defaultMaxAttempts,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// ContentType reports the serialization format used by Run.
func (s *Session) ContentType() string {
	switch s.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Run prompts for every field of fm, submits through ctrl and returns the
// serialized values. The fields must already be registered with ctrl (see
// formdef.Bind). When the submit fails, the payload is returned together
// with an error wrapping ErrSubmitFailed.
func (s *Session) Run(ctx context.Context, ctrl *form.Controller, fm model.FormModel) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if ctrl == nil {
		return nil, errors.New("tui: controller is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(fm.Title); title != "" {
		if err := s.driver.Info(ctx, s.theme.InfoPrefix+title); err != nil {
			return nil, err
		}
	}

	for _, field := range fm.Fields {
		if err := s.promptField(ctx, ctrl, field); err != nil {
			return nil, err
		}
	}

	ok := ctrl.Submit()
	registry := ctrl.Registry()
	values := registry.Values()
	if s.submitTransformer != nil {
		var err error
		values, err = s.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	payload, err := s.serialize(registry.Names(), values)
	if err != nil {
		return nil, err
	}
	if !ok {
		return payload, fmt.Errorf("%w: %s", ErrSubmitFailed, summarizeErrors(registry))
	}
	return payload, nil
}

func (s *Session) promptField(ctx context.Context, ctrl *form.Controller, field model.Field) error {
	view, ok := ctrl.Field(field.Name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotRegistered, field.Name)
	}
	label := displayLabel(field)
	help := displayHelp(field)
	current := view.Value

	for attempt := 1; ; attempt++ {
		response, err := s.ask(ctx, field, label, help, current)
		if err != nil {
			return err
		}

		ctrl.OnFieldChange(field.Name, response)
		view, _ = ctrl.Field(field.Name)
		if !view.HasError() {
			return nil
		}

		notice := fmt.Sprintf("%sInvalid %s: %s", s.theme.ErrorPrefix, label, view.Error)
		if err := s.driver.Info(ctx, notice); err != nil {
			return err
		}
		if attempt >= s.maxAttempts {
			return nil
		}
		current = response
	}
}

func (s *Session) ask(ctx context.Context, field model.Field, label, help, current string) (string, error) {
	usePassword := field.Format == "password" || strings.EqualFold(field.Metadata["cli.secret"], "true")
	if usePassword {
		return s.driver.Password(ctx, InputConfig{Message: label, Default: current, Help: help})
	}
	if field.Format == "textarea" {
		return s.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current, Help: help})
	}
	return s.driver.Input(ctx, InputConfig{Message: label, Default: current, Help: help})
}

func (s *Session) serialize(order []string, values map[string]string) ([]byte, error) {
	switch s.outputFormat {
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for name, value := range values {
			encoded.Set(name, value)
		}
		return []byte(encoded.Encode()), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(order, values)), nil
	default:
		return json.Marshal(values)
	}
}

// prettyPrint lists fields in registration order, then any extra keys a
// transformer added.
func prettyPrint(order []string, values map[string]string) string {
	var b strings.Builder
	seen := make(map[string]struct{}, len(order))
	for _, name := range order {
		value, ok := values[name]
		if !ok {
			continue
		}
		seen[name] = struct{}{}
		fmt.Fprintf(&b, "%s=%s\n", name, value)
	}
	extras := make([]string, 0)
	for name := range values {
		if _, ok := seen[name]; !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		fmt.Fprintf(&b, "%s=%s\n", name, values[name])
	}
	return b.String()
}

func summarizeErrors(registry *form.Registry) string {
	parts := make([]string, 0)
	for _, view := range registry.Views() {
		if view.HasError() {
			parts = append(parts, fmt.Sprintf("%s: %s", view.Name, view.Error))
		}
	}
	return strings.Join(parts, "; ")
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayHelp(field model.Field) string {
	if h := field.Metadata["cli.help"]; h != "" {
		return h
	}
	return field.Description
}
