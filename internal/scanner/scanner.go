// Package scanner discovers module manifests under the modules tree for
// modscout sync, applying exclude filtering and reporting invalid manifests
// without aborting the scan.
package scanner

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dfalcao/modscout/internal/registry"
)

// manifestFiles are probed in order inside each module directory.
var manifestFiles = []string{"module.yaml", "module.yml", "module.json", "MODULE.md"}

// Invalid records one module directory whose manifest could not be used.
type Invalid struct {
	Path string // module directory, relative to the modules root
	Err  error
}

// Result is returned by Scan.
type Result struct {
	Manifests   []registry.ModuleManifest
	Invalid     []Invalid
	PerCategory map[string]int
}

// Scan walks root (layout: <root>/<category>/<module-id>/) and parses every
// module manifest it finds. Directories that are not one of the four
// categories are ignored. A module directory with no manifest, an unparsable
// manifest, a category mismatch against its directory, or a failed validation
// is reported in Result.Invalid; the scan always continues.
func Scan(root string, excludes []string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return &Result{PerCategory: map[string]int{}}, nil
		}
		return nil, fmt.Errorf("cannot stat modules directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("modules path is not a directory: %s", root)
	}

	res := &Result{PerCategory: map[string]int{}}
	for _, category := range registry.Categories {
		catDir := filepath.Join(root, category)
		entries, err := os.ReadDir(catDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("cannot read category directory %s: %w", catDir, err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			rel := path.Join(category, e.Name())
			if matchesExclude(rel, e.Name(), excludes) {
				continue
			}
			m, err := readManifest(filepath.Join(catDir, e.Name()), category, e.Name())
			if err != nil {
				res.Invalid = append(res.Invalid, Invalid{Path: rel, Err: err})
				continue
			}
			res.Manifests = append(res.Manifests, *m)
			res.PerCategory[category]++
		}
	}
	return res, nil
}

// readManifest loads and checks the manifest for one module directory.
func readManifest(dir, category, id string) (*registry.ModuleManifest, error) {
	var (
		m     *registry.ModuleManifest
		found bool
		err   error
	)
	for _, name := range manifestFiles {
		p := filepath.Join(dir, name)
		if _, statErr := os.Stat(p); statErr != nil {
			continue
		}
		found = true
		m, err = parseManifestFile(p)
		break
	}
	if !found {
		return nil, fmt.Errorf("no manifest file found (looked for %v)", manifestFiles)
	}
	if err != nil {
		return nil, err
	}

	// The directory supplies id and category defaults; a manifest that
	// disagrees with its own directory is rejected.
	if m.ID == "" {
		m.ID = id
	} else if m.ID != id {
		return nil, fmt.Errorf("manifest id %q does not match directory %q", m.ID, id)
	}
	if m.Category == "" {
		m.Category = category
	} else if m.Category != category {
		return nil, fmt.Errorf("manifest category %q does not match directory %q", m.Category, category)
	}
	if m.Path == "" {
		m.Path = path.Join("modules", category, id)
	}

	m.ApplyDefaults()
	if err := registry.Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// parseManifestFile decodes module.yaml/module.json, or the YAML frontmatter
// of a MODULE.md document.
func parseManifestFile(p string) (*registry.ModuleManifest, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", p, err)
	}

	var m registry.ModuleManifest
	switch filepath.Ext(p) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", p, err)
		}
	case ".md":
		fm, body, ok := splitFrontmatter(string(data))
		if !ok {
			return nil, fmt.Errorf("no YAML frontmatter in %s", p)
		}
		if err := yaml.Unmarshal([]byte(fm), &m); err != nil {
			return nil, fmt.Errorf("invalid frontmatter in %s: %w", p, err)
		}
		if m.Description == "" {
			m.Description = firstParagraph(body)
		}
	default:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", p, err)
		}
	}
	return &m, nil
}

// matchesExclude reports whether the module matches any exclude glob,
// checked against both the bare directory name and the category-relative path.
func matchesExclude(rel, name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
