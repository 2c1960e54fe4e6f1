package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/rules"
)

func TestRegistry_RequiredTrim(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("username", rules.Required("Required"))

	reg.UpdateValue("username", "   ")
	view, ok := reg.Get("username")
	if !ok {
		t.Fatalf("username not registered")
	}
	want := form.FieldView{
		Name:      "username",
		Value:     "   ",
		Status:    form.StatusError,
		Error:     "Required",
		ErrorKind: rules.FailureRequired,
		Validated: true,
	}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}

	reg.UpdateValue("username", "a")
	view, _ = reg.Get("username")
	if view.Status != form.StatusSuccess || view.Error != "" {
		t.Fatalf("expected success without error, got %+v", view)
	}
}

func TestRegistry_LengthBounds(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("code", rules.MinLength(3, "too short"))

	reg.UpdateValue("code", "ab")
	if view, _ := reg.Get("code"); view.Error != "too short" {
		t.Fatalf("expected too short, got %+v", view)
	}
	reg.UpdateValue("code", "abc")
	if view, _ := reg.Get("code"); view.HasError() {
		t.Fatalf("expected valid, got %+v", view)
	}
}

func TestRegistry_ValidateAllSnapshotsBeforeValidation(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("a", rules.Required("A"))
	reg.Register("b", rules.Required("B"))
	reg.UpdateValue("a", "x")

	snap := reg.ValidateAll()
	if snap.AllValid {
		t.Fatalf("expected allValid=false")
	}
	if diff := cmp.Diff(map[string]string{"a": "x", "b": ""}, snap.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	if view, _ := reg.Get("b"); view.Error != "B" {
		t.Fatalf("expected b to carry its error, got %+v", view)
	}
	if view, _ := reg.Get("a"); view.Status != form.StatusSuccess {
		t.Fatalf("expected a to pass, got %+v", view)
	}
}

func TestRegistry_ValidateAllIsFailSoft(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("first", rules.Required("first required"))
	reg.Register("second", rules.Required("second required"))
	reg.Register("third", rules.MinLength(2, "third short"))
	reg.Prefill(map[string]string{"third": "x"})

	reg.ValidateAll()

	want := map[string]string{
		"first":  "first required",
		"second": "second required",
		"third":  "third short",
	}
	if diff := cmp.Diff(want, reg.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ReRegistrationReplacesRulesKeepsValue(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("e", rules.Required("R"))
	reg.UpdateValue("e", "hi")

	reg.Register("e")
	view, _ := reg.Get("e")
	if view.Value != "hi" {
		t.Fatalf("expected value to survive re-registration, got %q", view.Value)
	}
	if view.Status != form.StatusSuccess {
		t.Fatalf("re-registration must not touch status, got %s", view.Status)
	}
	if reg.Len() != 1 {
		t.Fatalf("re-registration must not duplicate the field, got %d fields", reg.Len())
	}

	for _, value := range []string{"", "   ", "anything"} {
		reg.UpdateValue("e", value)
		view, _ := reg.Get("e")
		if view.HasError() || view.Error != "" || !view.Validated {
			t.Fatalf("field without rules must always pass, value %q got %+v", value, view)
		}
		if view.Status != form.StatusUntouched {
			t.Fatalf("field without rules keeps untouched status, got %s", view.Status)
		}
	}
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("pin", rules.MinLength(4, "four"))
	reg.Register("pin", rules.MinLength(6, "six"))

	reg.UpdateValue("pin", "12345")
	if view, _ := reg.Get("pin"); view.Error != "six" {
		t.Fatalf("expected latest rules to apply, got %+v", view)
	}
}

func TestRegistry_UnknownFieldIsNoop(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("known", rules.Required("R"))
	before := reg.Views()

	reg.UpdateValue("nonexistent", "x")
	if _, ok := reg.Get("nonexistent"); ok {
		t.Fatalf("unknown field must not be reported")
	}

	if diff := cmp.Diff(before, reg.Views()); diff != "" {
		t.Fatalf("registry mutated by unknown field (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"known"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_BlankNameIgnored(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("   ", rules.Required("R"))
	reg.Register("")
	if reg.Len() != 0 {
		t.Fatalf("blank names must not register, got %d", reg.Len())
	}
}

func TestRegistry_NamesKeepRegistrationOrder(t *testing.T) {
	reg := form.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.Register(name)
	}
	reg.Register("alpha", rules.Required("R"))

	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, reg.Names()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_PrefillDoesNotValidate(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("name", rules.Required("R"))
	reg.Prefill(map[string]string{"name": "Ada", "ghost": "boo"})

	view, _ := reg.Get("name")
	if view.Value != "Ada" || view.Validated || view.Status != form.StatusUntouched {
		t.Fatalf("prefill must only set the value, got %+v", view)
	}
	if _, ok := reg.Get("ghost"); ok {
		t.Fatalf("prefill must not register fields")
	}
}

func TestRegistry_RemoveAndReset(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("a", rules.Required("A"))
	reg.Register("b", rules.Required("B"))
	reg.UpdateValue("a", "x")
	reg.UpdateValue("b", "")

	reg.Remove("b")
	reg.Remove("missing")
	if diff := cmp.Diff([]string{"a"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	reg.Reset()
	view, _ := reg.Get("a")
	want := form.FieldView{Name: "a", Status: form.StatusUntouched}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("reset view mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_SnapshotIsDetached(t *testing.T) {
	reg := form.NewRegistry()
	reg.Register("a")
	reg.UpdateValue("a", "x")

	snap := reg.ValidateAll()
	snap.Values["a"] = "mutated"

	if view, _ := reg.Get("a"); view.Value != "x" {
		t.Fatalf("snapshot must not alias registry state, got %q", view.Value)
	}
}

func TestRegistry_ValidateAllProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("values are returned unchanged and allValid matches every field", prop.ForAll(
		func(values []string) bool {
			reg := form.NewRegistry()
			want := make(map[string]string, len(values))
			expectValid := true
			for idx, value := range values {
				name := fieldName(idx)
				reg.Register(name, rules.MinLength(3, "short"))
				reg.UpdateValue(name, value)
				want[name] = value
				if len(value) < 3 {
					expectValid = false
				}
			}
			snap := reg.ValidateAll()
			return snap.AllValid == expectValid && cmp.Equal(want, snap.Values)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

func fieldName(idx int) string {
	return "field_" + string(rune('a'+idx%26)) + string(rune('a'+idx/26%26))
}

type brokenMatcher struct{ prefix string }

func (m *brokenMatcher) MatchString(v string) bool { return len(v) >= len(m.prefix) }

func TestRegistry_NilCapabilitiesDoNotPanic(t *testing.T) {
	var matcher *brokenMatcher
	reg := form.NewRegistry()
	reg.Register("code", rules.Pattern(matcher, "bad code"))
	reg.Register("nick", rules.Custom(rules.ValidatorFunc(nil), "bad nick"))

	reg.UpdateValue("code", "abc")
	reg.UpdateValue("nick", "abc")
	snap := reg.ValidateAll()
	if snap.AllValid {
		t.Fatalf("misconfigured rules must not pass")
	}

	want := map[string]rules.FailureKind{
		"code": rules.FailurePatternConfig,
		"nick": rules.FailureInvalidRule,
	}
	got := make(map[string]rules.FailureKind)
	for _, view := range reg.Views() {
		got[view.Name] = view.ErrorKind
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("error kinds mismatch (-want +got):\n%s", diff)
	}
}
