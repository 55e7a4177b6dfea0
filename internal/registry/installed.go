package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// InstalledModule is one entry in the installed-modules document.
type InstalledModule struct {
	ID          string `json:"id"`
	Version     string `json:"version"`
	InstalledAt string `json:"installedAt"`
	Path        string `json:"path"`
	Active      bool   `json:"active"`
}

// InstalledSet is the on-disk shape of the installed-modules document.
type InstalledSet struct {
	Version string            `json:"version"`
	Updated string            `json:"updated"`
	Modules []InstalledModule `json:"modules"`
}

// LoadInstalled reads the installed-modules document at path. A missing file
// yields an empty set; installation state is optional.
func LoadInstalled(path string) (*InstalledSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &InstalledSet{Version: DocumentVersion, Modules: []InstalledModule{}}, nil
		}
		return nil, fmt.Errorf("cannot read installed modules %s: %w", path, err)
	}
	var set InstalledSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if set.Modules == nil {
		set.Modules = []InstalledModule{}
	}
	return &set, nil
}

// SaveInstalled writes the installed-modules document to path.
func SaveInstalled(path string, set *InstalledSet) error {
	if set.Version == "" {
		set.Version = DocumentVersion
	}
	set.Updated = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal installed modules: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create installed dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("cannot write installed modules %s: %w", path, err)
	}
	return nil
}

// Add inserts or replaces the entry for m.ID.
func (s *InstalledSet) Add(m InstalledModule) {
	if m.InstalledAt == "" {
		m.InstalledAt = time.Now().UTC().Format(time.RFC3339)
	}
	for i := range s.Modules {
		if s.Modules[i].ID == m.ID {
			s.Modules[i] = m
			return
		}
	}
	s.Modules = append(s.Modules, m)
}

// Remove deletes the entry for id, or returns ErrNotFound.
func (s *InstalledSet) Remove(id string) error {
	for i := range s.Modules {
		if s.Modules[i].ID == id {
			s.Modules = append(s.Modules[:i:i], s.Modules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Find returns the entry for id, or nil.
func (s *InstalledSet) Find(id string) *InstalledModule {
	for i := range s.Modules {
		if s.Modules[i].ID == id {
			return &s.Modules[i]
		}
	}
	return nil
}
