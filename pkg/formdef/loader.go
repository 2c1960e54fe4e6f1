package formdef

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/model"
)

// Document is the on-disk shape of a definition file: forms keyed by id.
type Document struct {
	Forms map[string]model.FormModel `json:"forms" yaml:"forms"`
}

// Store keeps the forms parsed from definition files. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	forms   map[string]model.FormModel
	sources map[string]string
}

// Parse decodes a JSON or YAML definition. Form ids default to their map
// key; every form is normalised and checked with model.Validate.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("formdef: file %s is empty", source)
	}

	var doc Document
	if jerr := json.Unmarshal(data, &doc); jerr != nil {
		doc = Document{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return Document{}, fmt.Errorf("formdef: parse %s: invalid JSON (%w) or YAML (%w)", source, jerr, yerr)
		}
	}

	normalised := make(map[string]model.FormModel, len(doc.Forms))
	for key, form := range doc.Forms {
		id := strings.TrimSpace(key)
		if id == "" {
			return Document{}, fmt.Errorf("formdef: file %s defines a form with an empty id", source)
		}
		if explicit := strings.TrimSpace(form.ID); explicit != "" && explicit != id {
			return Document{}, fmt.Errorf("formdef: file %s form %q declares mismatched id %q", source, id, explicit)
		}
		form.ID = id
		form = normaliseForm(form)
		if err := model.Validate(form); err != nil {
			return Document{}, fmt.Errorf("formdef: file %s: %w", source, err)
		}
		normalised[id] = form
	}
	doc.Forms = normalised
	return doc, nil
}

// LoadFS walks fsys and parses every JSON/YAML file. Form ids must be unique
// across files. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formdef: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// NewStore builds a store from a single definition file.
func NewStore(data []byte, source string) (*Store, error) {
	store := newStore()
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func newStore() *Store {
	return &Store{
		forms:   make(map[string]model.FormModel),
		sources: make(map[string]string),
	}
}

func (s *Store) add(data []byte, source string) error {
	doc, err := Parse(data, source)
	if err != nil {
		return err
	}
	for id, form := range doc.Forms {
		if existing, exists := s.sources[id]; exists {
			return fmt.Errorf("formdef: duplicate form %q (files %s and %s)", id, existing, source)
		}
		s.forms[id] = form
		s.sources[id] = source
	}
	return nil
}

// Form returns the form registered under id.
func (s *Store) Form(id string) (model.FormModel, error) {
	if s != nil {
		if form, ok := s.forms[strings.TrimSpace(id)]; ok {
			return form, nil
		}
	}
	return model.FormModel{}, fmt.Errorf("%w: %q", ErrFormNotFound, id)
}

// Source reports the file a form was loaded from.
func (s *Store) Source(id string) (string, bool) {
	if s == nil {
		return "", false
	}
	src, ok := s.sources[id]
	return src, ok
}

// IDs lists form ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func normaliseForm(form model.FormModel) model.FormModel {
	form.Title = plainText(form.Title)
	form.Description = plainText(form.Description)

	fields := make([]model.Field, len(form.Fields))
	for idx, field := range form.Fields {
		field.Name = strings.TrimSpace(field.Name)
		field.Label = plainText(field.Label)
		field.Description = plainText(field.Description)
		field.Placeholder = plainText(field.Placeholder)
		field.Format = strings.ToLower(strings.TrimSpace(field.Format))
		fields[idx] = field
	}
	form.Fields = fields
	return form
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
