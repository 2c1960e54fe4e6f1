package form

import (
	"log/slog"

	"github.com/goliatone/go-formstate/pkg/rules"
)

// State is the submission state of a Controller.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// String returns "idle" or "submitting".
func (s State) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "idle"
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets the host callbacks. Nil keeps the no-op default.
func WithNotifier(notifier ChangeNotifier) Option {
	return func(c *Controller) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// WithCallbacks is WithNotifier for a Callbacks value.
func WithCallbacks(callbacks Callbacks) Option {
	return WithNotifier(callbacks)
}

// WithRegistry makes the controller drive an existing registry instead of a
// fresh one.
func WithRegistry(registry *Registry) Option {
	return func(c *Controller) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithLogger routes controller diagnostics to logger. When the controller
// creates its own registry, the registry logs there too.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDisabled marks the form as disabled. The flag is advisory for
// rendering; the controller still accepts changes and submits.
func WithDisabled(disabled bool) Option {
	return func(c *Controller) {
		c.disabled = disabled
	}
}

// Controller translates UI events for one form into registry operations and
// branches submissions to the notifier.
type Controller struct {
	registry *Registry
	notifier ChangeNotifier
	logger   *slog.Logger
	state    State
	disabled bool
}

// NewController creates a controller with its own registry unless
// WithRegistry supplies one.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		notifier: NopNotifier{},
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.registry == nil {
		c.registry = NewRegistry(WithRegistryLogger(c.logger))
	}
	return c
}

// OnFieldRegister registers a field or replaces its rules.
func (c *Controller) OnFieldRegister(name string, set ...rules.Rule) {
	c.registry.Register(name, set...)
}

// OnFieldChange updates and revalidates the field, then tells the notifier.
// The notifier hears about the change even when the name is unknown.
func (c *Controller) OnFieldChange(name, value string) {
	c.registry.UpdateValue(name, value)
	c.notifier.OnValuesChange(name, value)
}

// Submit validates every field and calls exactly one of OnFinish or
// OnFinishFailed with the complete value map. It reports whether every field
// passed. A Submit issued from inside one of those callbacks is rejected and
// returns false without calling the notifier again.
func (c *Controller) Submit() bool {
	if c.state == StateSubmitting {
		c.logger.Warn("form: submit ignored while a submission is running")
		return false
	}
	c.state = StateSubmitting
	defer func() { c.state = StateIdle }()

	snap := c.registry.ValidateAll()
	if snap.AllValid {
		c.logger.Debug("form: submit succeeded", slog.Int("fields", len(snap.Values)))
		c.notifier.OnFinish(snap.Values)
		return true
	}

	c.logger.Debug("form: submit failed", slog.Int("fields", len(snap.Values)))
	c.notifier.OnFinishFailed(snap.Values)
	return false
}

// Field returns a snapshot of the named field.
func (c *Controller) Field(name string) (FieldView, bool) {
	return c.registry.Get(name)
}

// Registry exposes the registry for read access by rendering layers.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// State reports whether a submission is in progress.
func (c *Controller) State() State {
	return c.state
}

// Disabled reports the presentation flag set by WithDisabled or SetDisabled.
func (c *Controller) Disabled() bool {
	return c.disabled
}

// SetDisabled updates the presentation flag. Submit does not check it.
func (c *Controller) SetDisabled(disabled bool) {
	c.disabled = disabled
}
