package index

import "sort"

// ModuleEntry is the denormalized module-level projection of a manifest.
type ModuleEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Path        string   `json:"path"`
}

// ExportEntry is one flattened export (component, hook or service) carrying a
// back-reference to its owning module. Description and keywords fall back to
// the owning manifest's when the export declares none of its own.
type ExportEntry struct {
	Name        string   `json:"name"`
	Module      string   `json:"module"`
	Category    string   `json:"category"`
	Type        string   `json:"type,omitempty"`
	Path        string   `json:"path"`
	Description string   `json:"description,omitempty"`
	Example     string   `json:"example,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Index is the query-optimized cache derived from the registry. It is a pure
// function of the registry content at BuiltAt and is fully replaced on rebuild.
type Index struct {
	BuiltAt    string                 `json:"built_at"`
	Modules    map[string]ModuleEntry `json:"modules"`
	Components []ExportEntry          `json:"components"`
	Hooks      []ExportEntry          `json:"hooks"`
	Services   []ExportEntry          `json:"services"`

	// Skipped lists manifest ids that failed validation during the build.
	// A bad record never aborts the whole build.
	Skipped []string `json:"skipped,omitempty"`
}

// ModuleIDs returns the module ids in sorted order, the canonical iteration
// order for everything that walks the module map.
func (idx *Index) ModuleIDs() []string {
	ids := make([]string, 0, len(idx.Modules))
	for id := range idx.Modules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
