package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var semverRe = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Validate checks a manifest against the registry schema and returns a
// *ValidationError listing all violated fields, or nil when the manifest is valid.
//
// Checks performed:
//   - id is non-empty
//   - name is non-empty
//   - version matches MAJOR.MINOR.PATCH
//   - category is one of ui/logic/data/integration
//   - description has at least 10 characters
//   - at least one keyword
//   - status, when set, is experimental/stable/deprecated
//   - every export entry has a name
func Validate(m *ModuleManifest) error {
	var fields []string

	if strings.TrimSpace(m.ID) == "" {
		fields = append(fields, "id: required")
	}
	if strings.TrimSpace(m.Name) == "" {
		fields = append(fields, "name: required")
	}
	if !semverRe.MatchString(m.Version) {
		fields = append(fields, fmt.Sprintf("version: %q is not MAJOR.MINOR.PATCH", m.Version))
	}
	if !ValidCategory(m.Category) {
		fields = append(fields, fmt.Sprintf("category: %q is not one of %s", m.Category, strings.Join(Categories, "/")))
	}
	if len(strings.TrimSpace(m.Description)) < 10 {
		fields = append(fields, "description: must be at least 10 characters")
	}
	if len(m.Keywords) == 0 {
		fields = append(fields, "keywords: at least one required")
	}
	if m.Status != "" && m.Status != StatusExperimental && m.Status != StatusStable && m.Status != StatusDeprecated {
		fields = append(fields, fmt.Sprintf("status: %q is not experimental/stable/deprecated", m.Status))
	}

	for kind, exports := range map[string][]Export{
		"components": m.Exports.Components,
		"hooks":      m.Exports.Hooks,
		"services":   m.Exports.Services,
		"types":      m.Exports.Types,
		"utils":      m.Exports.Utils,
		"schemas":    m.Exports.Schemas,
		"stores":     m.Exports.Stores,
	} {
		for i, e := range exports {
			if strings.TrimSpace(e.Name) == "" {
				fields = append(fields, fmt.Sprintf("exports.%s[%d].name: required", kind, i))
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	// Map iteration above is unordered; keep the report deterministic.
	sort.Strings(fields)
	return &ValidationError{ID: m.ID, Fields: fields}
}
