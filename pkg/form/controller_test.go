package form_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/rules"
)

type recorder struct {
	events   []string
	changes  [][2]string
	finished []map[string]string
	failed   []map[string]string
}

func (r *recorder) OnValuesChange(name, value string) {
	r.events = append(r.events, "change:"+name)
	r.changes = append(r.changes, [2]string{name, value})
}

func (r *recorder) OnFinish(values map[string]string) {
	r.events = append(r.events, "finish")
	r.finished = append(r.finished, values)
}

func (r *recorder) OnFinishFailed(values map[string]string) {
	r.events = append(r.events, "failed")
	r.failed = append(r.failed, values)
}

func TestController_SubmitAllValid(t *testing.T) {
	rec := &recorder{}
	ctrl := form.NewController(form.WithNotifier(rec))
	ctrl.OnFieldRegister("name", rules.Required("name required"))
	ctrl.OnFieldRegister("nick")
	ctrl.OnFieldChange("name", "Ada")

	if ok := ctrl.Submit(); !ok {
		t.Fatalf("expected submit to succeed")
	}
	if len(rec.failed) != 0 {
		t.Fatalf("OnFinishFailed must not be called, got %d calls", len(rec.failed))
	}
	want := []map[string]string{{"name": "Ada", "nick": ""}}
	if diff := cmp.Diff(want, rec.finished); diff != "" {
		t.Fatalf("finish payload mismatch (-want +got):\n%s", diff)
	}
}

func TestController_SubmitWithInvalidField(t *testing.T) {
	rec := &recorder{}
	ctrl := form.NewController(form.WithNotifier(rec))
	ctrl.OnFieldRegister("a", rules.Required("A"))
	ctrl.OnFieldRegister("b", rules.Required("B"))
	ctrl.OnFieldChange("a", "x")

	if ok := ctrl.Submit(); ok {
		t.Fatalf("expected submit to fail")
	}
	if len(rec.finished) != 0 {
		t.Fatalf("OnFinish must not be called, got %d calls", len(rec.finished))
	}
	want := []map[string]string{{"a": "x", "b": ""}}
	if diff := cmp.Diff(want, rec.failed); diff != "" {
		t.Fatalf("failed payload mismatch (-want +got):\n%s", diff)
	}
	if view, _ := ctrl.Field("b"); view.Error != "B" {
		t.Fatalf("expected b error after submit, got %+v", view)
	}
}

func TestController_ChangeOrdering(t *testing.T) {
	var seen form.FieldView
	var ctrl *form.Controller
	ctrl = form.NewController(form.WithCallbacks(form.Callbacks{
		ValuesChange: func(name, value string) {
			seen, _ = ctrl.Field(name)
		},
	}))
	ctrl.OnFieldRegister("email", rules.MustPattern(`@`, "invalid email"))

	ctrl.OnFieldChange("email", "nope")

	if seen.Value != "nope" || seen.Error != "invalid email" {
		t.Fatalf("callback must observe the updated and revalidated field, got %+v", seen)
	}
}

func TestController_ChangeOnUnknownFieldStillNotifies(t *testing.T) {
	rec := &recorder{}
	ctrl := form.NewController(form.WithNotifier(rec))

	ctrl.OnFieldChange("ghost", "boo")

	if diff := cmp.Diff([][2]string{{"ghost", "boo"}}, rec.changes); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
	if ctrl.Registry().Len() != 0 {
		t.Fatalf("unknown change must not register a field")
	}
}

func TestController_ReentrantSubmitRejected(t *testing.T) {
	var ctrl *form.Controller
	nested := true
	calls := 0
	ctrl = form.NewController(form.WithCallbacks(form.Callbacks{
		Finish: func(map[string]string) {
			calls++
			if ctrl.State() != form.StateSubmitting {
				t.Errorf("expected submitting state inside callback, got %s", ctrl.State())
			}
			nested = ctrl.Submit()
		},
	}))

	if !ctrl.Submit() {
		t.Fatalf("empty form should submit successfully")
	}
	if nested {
		t.Fatalf("nested submit must be rejected")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one callback, got %d", calls)
	}
	if ctrl.State() != form.StateIdle {
		t.Fatalf("expected idle after submit, got %s", ctrl.State())
	}
}

func TestController_DisabledIsAdvisory(t *testing.T) {
	rec := &recorder{}
	ctrl := form.NewController(form.WithNotifier(rec), form.WithDisabled(true))
	ctrl.OnFieldRegister("a", rules.Required("A"))

	ctrl.OnFieldChange("a", "value")
	ctrl.Submit()

	if !ctrl.Disabled() {
		t.Fatalf("expected disabled flag")
	}
	if diff := cmp.Diff([]string{"change:a", "finish"}, rec.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
	ctrl.SetDisabled(false)
	if ctrl.Disabled() {
		t.Fatalf("expected enabled after SetDisabled(false)")
	}
}

func TestController_IndependentForms(t *testing.T) {
	login := form.NewController()
	signup := form.NewController()

	login.OnFieldRegister("email", rules.Required("login email"))
	signup.OnFieldRegister("email", rules.MinLength(5, "signup email"))

	login.OnFieldChange("email", "")
	signup.OnFieldChange("email", "abc")

	if view, _ := login.Field("email"); view.Error != "login email" {
		t.Fatalf("login form polluted: %+v", view)
	}
	if view, _ := signup.Field("email"); view.Error != "signup email" || view.Value != "abc" {
		t.Fatalf("signup form polluted: %+v", view)
	}
}

func TestController_SharedRegistryOption(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("a", rules.Required("A"))
	ctrl := form.NewController(form.WithRegistry(reg))

	ctrl.OnFieldChange("a", "filled")
	if view, _ := reg.Get("a"); view.Value != "filled" {
		t.Fatalf("controller must drive the supplied registry, got %+v", view)
	}
}

func TestController_LogsMisconfiguredRules(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctrl := form.NewController(form.WithLogger(logger))
	ctrl.OnFieldRegister("code", rules.Pattern(nil, "bad pattern"))

	if ctrl.Submit() {
		t.Fatalf("misconfigured pattern must not pass")
	}
	view, _ := ctrl.Field("code")
	if view.ErrorKind != rules.FailurePatternConfig {
		t.Fatalf("expected pattern config kind, got %s", view.ErrorKind)
	}
	if !strings.Contains(buf.String(), "misconfigured") {
		t.Fatalf("expected misconfiguration log, got %q", buf.String())
	}
}

func TestStatus_String(t *testing.T) {
	cases := map[form.Status]string{
		form.StatusUntouched:  "untouched",
		form.StatusSuccess:    "success",
		form.StatusWarning:    "warning",
		form.StatusError:      "error",
		form.StatusValidating: "validating",
		form.Status(42):       "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("status %d: want %q, got %q", int(status), want, got)
		}
	}
}
