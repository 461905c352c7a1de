package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists custom templates as a single JSON object keyed by
// template id. The file is read whole and written whole; there is no
// incremental update.
type Store struct {
	path string
}

// DefaultStorePath is ~/.promptgen/custom_templates.json.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".promptgen", "custom_templates.json")
	}
	return filepath.Join(home, ".promptgen", "custom_templates.json")
}

// NewStore opens a store at path. An empty path uses the default
// location.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultStorePath()
	}
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Load reads all custom templates. A missing or malformed file yields
// an empty map so a broken store never blocks the built-in catalog.
func (s *Store) Load() map[string]Template {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]Template{}
	}
	var raw map[string]Template
	if err := json.Unmarshal(data, &raw); err != nil {
		return map[string]Template{}
	}
	for id, t := range raw {
		t.ID = id
		raw[id] = t
	}
	return raw
}

// Save overwrites the store with the given template set.
func (s *Store) Save(templates map[string]Template) error {
	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding templates: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(s.path), err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Add inserts or replaces one custom template.
func (s *Store) Add(t Template) error {
	all := s.Load()
	all[t.ID] = t
	return s.Save(all)
}

// Delete removes a custom template by id. Built-in ids and unknown ids
// are rejected.
func (s *Store) Delete(id string) error {
	if IsBuiltin(id) {
		if _, shadowed := s.Load()[id]; !shadowed {
			return fmt.Errorf("template %q is built in and cannot be deleted", id)
		}
	}
	all := s.Load()
	if _, ok := all[id]; !ok {
		return fmt.Errorf("no custom template %q", id)
	}
	delete(all, id)
	return s.Save(all)
}
