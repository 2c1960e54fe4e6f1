package formdef

import (
	"errors"
	"net/mail"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formstate/pkg/rules"
)

// Built-in validator names registered by NewCatalog.
const (
	ValidatorEmail   = "email"
	ValidatorURL     = "url"
	ValidatorNumeric = "numeric"
	ValidatorSlug    = "slug"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Catalog maps validator names used by custom rule descriptors to their
// implementation. A catalog is safe for concurrent use, so one instance can
// serve every form of a process.
type Catalog struct {
	mu         sync.RWMutex
	validators map[string]rules.Validator
}

// NewCatalog returns a catalog with the built-in validators registered.
func NewCatalog() *Catalog {
	cat := &Catalog{validators: make(map[string]rules.Validator)}
	cat.registerBuiltins()
	return cat
}

// Register adds or replaces a named validator. Blank names and nil
// validators, including a nil rules.ValidatorFunc, are ignored.
func (c *Catalog) Register(name string, validator rules.Validator) {
	if c == nil || rules.IsNilValidator(validator) {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.validators == nil {
		c.validators = make(map[string]rules.Validator)
	}
	c.validators[trimmed] = validator
}

// RegisterFunc is Register for plain functions.
func (c *Catalog) RegisterFunc(name string, fn func(value string) error) {
	if fn == nil {
		return
	}
	c.Register(name, rules.ValidatorFunc(fn))
}

// Lookup returns the validator registered under name.
func (c *Catalog) Lookup(name string) (rules.Validator, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	validator, ok := c.validators[strings.TrimSpace(name)]
	return validator, ok
}

// Names lists registered validator names in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.validators))
	for name := range c.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Built-in validators leave empty values to a required rule.
func (c *Catalog) registerBuiltins() {
	c.RegisterFunc(ValidatorEmail, func(value string) error {
		if value == "" {
			return nil
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return errors.New("must be a valid email address")
		}
		return nil
	})

	c.RegisterFunc(ValidatorURL, func(value string) error {
		if value == "" {
			return nil
		}
		parsed, err := url.Parse(value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.New("must be an absolute URL")
		}
		return nil
	})

	c.RegisterFunc(ValidatorNumeric, func(value string) error {
		for _, r := range value {
			if r < '0' || r > '9' {
				return errors.New("must contain digits only")
			}
		}
		return nil
	})

	c.RegisterFunc(ValidatorSlug, func(value string) error {
		if value == "" || slugPattern.MatchString(value) {
			return nil
		}
		return errors.New("must be lowercase words separated by dashes")
	})
}
