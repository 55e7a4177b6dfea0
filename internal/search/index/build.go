package index

import (
	"path"
	"time"

	"github.com/dfalcao/modscout/internal/registry"
)

// Build produces a fresh index from the current registry snapshot.
//
// The build is deterministic: modules are processed in sorted-id order, so an
// unchanged registry always yields identical index content. Manifests that no
// longer pass validation (the registry document can be hand-edited) are
// skipped and reported via Index.Skipped instead of failing the build. An
// empty registry yields an index with empty collections, not an error.
func Build(store *registry.Store) *Index {
	idx := &Index{
		BuiltAt:    time.Now().UTC().Format(time.RFC3339),
		Modules:    map[string]ModuleEntry{},
		Components: []ExportEntry{},
		Hooks:      []ExportEntry{},
		Services:   []ExportEntry{},
	}

	for _, m := range store.List("") {
		m := m
		if err := registry.Validate(&m); err != nil {
			idx.Skipped = append(idx.Skipped, m.ID)
			continue
		}

		idx.Modules[m.ID] = ModuleEntry{
			ID:          m.ID,
			Name:        m.Name,
			Version:     m.Version,
			Category:    m.Category,
			Status:      m.Status,
			Description: m.Description,
			Keywords:    m.Keywords,
			Path:        modulePath(&m),
		}

		idx.Components = append(idx.Components, flatten(&m, "components", m.Exports.Components)...)
		idx.Hooks = append(idx.Hooks, flatten(&m, "hooks", m.Exports.Hooks)...)
		idx.Services = append(idx.Services, flatten(&m, "services", m.Exports.Services)...)
	}

	return idx
}

// flatten converts one export collection into flat entries, inheriting the
// owning manifest's description and keywords where the export has none.
func flatten(m *registry.ModuleManifest, kind string, exports []registry.Export) []ExportEntry {
	out := make([]ExportEntry, 0, len(exports))
	for _, e := range exports {
		desc := e.Description
		if desc == "" {
			desc = m.Description
		}
		p := e.Path
		if p == "" {
			p = path.Join(modulePath(m), kind)
		}
		out = append(out, ExportEntry{
			Name:        e.Name,
			Module:      m.ID,
			Category:    m.Category,
			Type:        e.Type,
			Path:        p,
			Description: desc,
			Example:     e.Example,
			Keywords:    m.Keywords,
		})
	}
	return out
}

func modulePath(m *registry.ModuleManifest) string {
	if m.Path != "" {
		return m.Path
	}
	return path.Join("modules", m.Category, m.ID)
}
