package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dfalcao/modscout/internal/registry"
)

// Load reads an index cache from path.
func Load(path string) (*Index, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoIndex, path)
		}
		return nil, fmt.Errorf("cannot read index %s: %w", path, err)
	}
	var idx Index
	if err := json.Unmarshal(b, &idx); err != nil {
		return nil, fmt.Errorf("invalid index JSON %s: %w", path, err)
	}
	if idx.Modules == nil {
		idx.Modules = map[string]ModuleEntry{}
	}
	if idx.Components == nil {
		idx.Components = []ExportEntry{}
	}
	if idx.Hooks == nil {
		idx.Hooks = []ExportEntry{}
	}
	if idx.Services == nil {
		idx.Services = []ExportEntry{}
	}
	return &idx, nil
}

// LoadOrBuild returns the cached index at path, building and persisting it
// synchronously from the registry when no cache exists yet. This lazy rebuild
// is the only implicit side effect the cache layer performs; a corrupt cache
// is surfaced as an error, never silently rebuilt over.
func LoadOrBuild(path string, store *registry.Store) (*Index, error) {
	idx, err := Load(path)
	if err == nil {
		return idx, nil
	}
	if !errors.Is(err, ErrNoIndex) {
		return nil, err
	}
	idx = Build(store)
	if err := Write(path, idx); err != nil {
		return nil, err
	}
	return idx, nil
}
