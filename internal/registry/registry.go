package registry

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DocumentVersion is written into new registry documents.
const DocumentVersion = "1.0.0"

// Stats summarizes the registry for status output and the stats block of the
// registry document.
type Stats struct {
	TotalModules     int    `json:"total_modules"`
	UI               int    `json:"ui"`
	Logic            int    `json:"logic"`
	Data             int    `json:"data"`
	Integration      int    `json:"integration"`
	ReusabilityScore int    `json:"reusability_score"`
	LastSync         string `json:"last_sync,omitempty"`
}

// Document is the on-disk shape of the registry.
type Document struct {
	Version    string                      `json:"version"`
	Updated    string                      `json:"updated"`
	Categories map[string][]ModuleManifest `json:"categories"`
	Stats      Stats                       `json:"stats"`
}

// Store is the authoritative source of module metadata. It is created with an
// explicit path and has an explicit load/save lifecycle; nothing in this
// package keeps package-level registry state.
type Store struct {
	path string
	doc  *Document
}

// NewDocument returns an empty registry document with all category buckets present.
func NewDocument() *Document {
	cats := make(map[string][]ModuleManifest, len(Categories))
	for _, c := range Categories {
		cats[c] = []ModuleManifest{}
	}
	return &Document{
		Version:    DocumentVersion,
		Updated:    time.Now().UTC().Format(time.RFC3339),
		Categories: cats,
	}
}

// Open reads the registry document at path. A missing or unreadable document
// is reported as ErrRegistryUnavailable; this is the fatal condition commands
// translate into a "run 'modscout init' first" message.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %v", ErrRegistryUnavailable, path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in %s: %v", ErrRegistryUnavailable, path, err)
	}
	if doc.Categories == nil {
		doc.Categories = map[string][]ModuleManifest{}
	}
	for _, c := range Categories {
		if doc.Categories[c] == nil {
			doc.Categories[c] = []ModuleManifest{}
		}
	}
	return &Store{path: path, doc: &doc}, nil
}

// Create writes a fresh empty registry document at path and returns its store.
func Create(path string) (*Store, error) {
	s := &Store{path: path, doc: NewDocument()}
	if err := s.Save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the document path backing this store.
func (s *Store) Path() string { return s.path }

// Updated returns the document's last-modified timestamp (RFC 3339).
func (s *Store) Updated() string { return s.doc.Updated }

// Save marshals the document and writes it back to its path.
func (s *Store) Save() error {
	s.doc.Stats = s.ComputeStats()
	s.doc.Updated = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("cannot create registry dir: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("cannot write registry %s: %w", s.path, err)
	}
	return nil
}

// Register validates m and inserts it, replacing any existing manifest with
// the same id (re-registration). The manifest is stored under its category
// bucket, which keeps the category/grouping invariant true by construction.
func (s *Store) Register(m ModuleManifest) error {
	m.ApplyDefaults()
	if err := Validate(&m); err != nil {
		return err
	}

	// Drop any previous registration, whatever category it lived under —
	// re-registration may legitimately move a module between categories.
	s.deleteByID(m.ID)
	s.doc.Categories[m.Category] = append(s.doc.Categories[m.Category], m)
	return nil
}

// Get returns the manifest registered under id, or ErrNotFound.
func (s *Store) Get(id string) (*ModuleManifest, error) {
	for _, c := range Categories {
		for i := range s.doc.Categories[c] {
			if s.doc.Categories[c][i].ID == id {
				m := s.doc.Categories[c][i]
				return &m, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns all manifests, or only those in the given category when
// category is non-empty. Results are ordered by id for stable output.
func (s *Store) List(category string) []ModuleManifest {
	var out []ModuleManifest
	for _, c := range Categories {
		if category != "" && c != category {
			continue
		}
		out = append(out, s.doc.Categories[c]...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Remove deletes the manifest registered under id, or returns ErrNotFound.
func (s *Store) Remove(id string) error {
	if !s.deleteByID(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *Store) deleteByID(id string) bool {
	for _, c := range Categories {
		bucket := s.doc.Categories[c]
		for i := range bucket {
			if bucket[i].ID == id {
				s.doc.Categories[c] = append(bucket[:i:i], bucket[i+1:]...)
				return true
			}
		}
	}
	return false
}

// MarkSynced records a sync timestamp surfaced in stats output.
func (s *Store) MarkSynced() {
	s.doc.Stats.LastSync = time.Now().UTC().Format(time.RFC3339)
}

// ComputeStats returns per-category counts, the total, and the reusability
// score.
//
// The reusability score counts distinct cross-module dependency references
// (module A listing module B in dependencies.modules) normalized against the
// total number of exported symbols, clamped to 0–100. The exact formula is a
// business metric, not a correctness contract; the binding property is that
// the score never decreases as more cross-module references are added.
func (s *Store) ComputeStats() Stats {
	st := Stats{LastSync: s.doc.Stats.LastSync}

	registered := make(map[string]bool)
	for _, c := range Categories {
		for i := range s.doc.Categories[c] {
			registered[s.doc.Categories[c][i].ID] = true
		}
	}

	totalExports := 0
	refs := make(map[string]bool)
	for _, c := range Categories {
		bucket := s.doc.Categories[c]
		switch c {
		case CategoryUI:
			st.UI = len(bucket)
		case CategoryLogic:
			st.Logic = len(bucket)
		case CategoryData:
			st.Data = len(bucket)
		case CategoryIntegration:
			st.Integration = len(bucket)
		}
		st.TotalModules += len(bucket)

		for i := range bucket {
			m := &bucket[i]
			totalExports += m.ExportCount()
			for _, dep := range m.Dependencies.Modules {
				if dep != m.ID && registered[dep] {
					refs[m.ID+"->"+dep] = true
				}
			}
		}
	}

	if totalExports > 0 {
		score := math.Round(float64(len(refs)) / float64(totalExports) * 100)
		if score > 100 {
			score = 100
		}
		st.ReusabilityScore = int(score)
	}
	return st
}
