package registry

// Module categories. The declaration order here is the canonical category
// order used by the registry document and by keyword detection tie-breaks.
const (
	CategoryUI          = "ui"
	CategoryLogic       = "logic"
	CategoryData        = "data"
	CategoryIntegration = "integration"
)

// Categories lists all valid categories in canonical order.
var Categories = []string{CategoryUI, CategoryLogic, CategoryData, CategoryIntegration}

// Module lifecycle statuses.
const (
	StatusExperimental = "experimental"
	StatusStable       = "stable"
	StatusDeprecated   = "deprecated"
)

// Export describes one symbol exported by a module.
type Export struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`
}

// Exports groups a module's exported symbols by kind.
type Exports struct {
	Components []Export `json:"components,omitempty" yaml:"components,omitempty"`
	Hooks      []Export `json:"hooks,omitempty" yaml:"hooks,omitempty"`
	Services   []Export `json:"services,omitempty" yaml:"services,omitempty"`
	Types      []Export `json:"types,omitempty" yaml:"types,omitempty"`
	Utils      []Export `json:"utils,omitempty" yaml:"utils,omitempty"`
	Schemas    []Export `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	Stores     []Export `json:"stores,omitempty" yaml:"stores,omitempty"`
}

// Dependencies declares what a module needs: other registered modules and
// external npm packages.
type Dependencies struct {
	Modules  []string `json:"modules" yaml:"modules"`
	Packages []string `json:"packages" yaml:"packages"`
}

// ModuleManifest is the metadata record for one registered module.
type ModuleManifest struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Version      string       `json:"version" yaml:"version"`
	Category     string       `json:"category" yaml:"category"`
	Description  string       `json:"description" yaml:"description"`
	Keywords     []string     `json:"keywords" yaml:"keywords"`
	Status       string       `json:"status,omitempty" yaml:"status,omitempty"`
	Path         string       `json:"path,omitempty" yaml:"path,omitempty"`
	Exports      Exports      `json:"exports" yaml:"exports"`
	Dependencies Dependencies `json:"dependencies" yaml:"dependencies"`
}

// ApplyDefaults fills server-assigned defaults on a manifest before it is
// stored: status defaults to stable, omitted collections become empty slices
// so retrieved records round-trip cleanly.
func (m *ModuleManifest) ApplyDefaults() {
	if m.Status == "" {
		m.Status = StatusStable
	}
	if m.Keywords == nil {
		m.Keywords = []string{}
	}
	if m.Dependencies.Modules == nil {
		m.Dependencies.Modules = []string{}
	}
	if m.Dependencies.Packages == nil {
		m.Dependencies.Packages = []string{}
	}
}

// ExportCount returns the total number of exported symbols across all kinds.
func (m *ModuleManifest) ExportCount() int {
	return len(m.Exports.Components) + len(m.Exports.Hooks) + len(m.Exports.Services) +
		len(m.Exports.Types) + len(m.Exports.Utils) + len(m.Exports.Schemas) + len(m.Exports.Stores)
}

// ValidCategory reports whether c is one of the four module categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
