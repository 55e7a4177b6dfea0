package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates a lookup for a module id that is not registered.
var ErrNotFound = errors.New("module not found")

// ErrRegistryUnavailable indicates the registry document is missing or
// unreadable. Callers surface it with a remediation hint pointing at
// 'modscout init' / 'modscout sync'.
var ErrRegistryUnavailable = errors.New("registry unavailable")

// ValidationError reports every schema violation found in a manifest.
// Registration is all-or-nothing: an invalid manifest is never partially applied.
type ValidationError struct {
	ID     string
	Fields []string
}

func (e *ValidationError) Error() string {
	id := e.ID
	if id == "" {
		id = "(no id)"
	}
	return fmt.Sprintf("invalid manifest %s: %s", id, strings.Join(e.Fields, "; "))
}
