package search

import (
	"path/filepath"
	"strings"
)

// File kinds detected by modscout analyze.
const (
	KindComponent = "component"
	KindHook      = "hook"
	KindService   = "service"
	KindSchema    = "schema"
	KindMigration = "migration"
	KindUnknown   = "unknown"
)

type kindMarkers struct {
	kind    string
	markers []string
}

// kindTables is ordered by specificity: migrations and schemas carry the most
// distinctive markers, components the most generic ones.
var kindTables = []kindMarkers{
	{KindMigration, []string{"create table", "alter table", "drop table", "add column"}},
	{KindSchema, []string{"z.object(", "yup.object", "joi.object", ".schema(", "zodschema"}},
	{KindHook, []string{"usestate(", "useeffect(", "usecallback(", "usememo(", "usequery("}},
	{KindService, []string{"class ", "async ", "await ", "supabase.", "stripe."}},
	{KindComponent, []string{"<div", "classname=", "return (", "jsx", "props"}},
}

// DetectKind classifies a source file by filename convention and simple
// content marker checks, returning the kind and the markers that fired.
func DetectKind(filename, content string) (string, []string) {
	base := filepath.Base(filename)
	lower := strings.ToLower(content)

	// Filename conventions win over content markers.
	switch {
	case isHookName(base):
		return KindHook, []string{"filename use* prefix"}
	case strings.Contains(strings.ToLower(base), "service"):
		return KindService, []string{"filename *service*"}
	case strings.Contains(strings.ToLower(base), "migration") || strings.HasSuffix(strings.ToLower(base), ".sql"):
		return KindMigration, []string{"filename *migration*/.sql"}
	}

	for _, kt := range kindTables {
		var fired []string
		for _, m := range kt.markers {
			if strings.Contains(lower, m) {
				fired = append(fired, m)
			}
		}
		if len(fired) >= 2 || (len(fired) == 1 && kt.kind != KindComponent && kt.kind != KindService) {
			return kt.kind, fired
		}
	}
	return KindUnknown, nil
}

// isHookName matches the React hook naming convention: a "use" prefix
// followed by an uppercase letter ("useCart.ts" yes, "user.ts" no).
func isHookName(base string) bool {
	if !hasCodeExt(base) || !strings.HasPrefix(base, "use") || len(base) < 4 {
		return false
	}
	c := base[3]
	return c >= 'A' && c <= 'Z'
}

func hasCodeExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".js", ".jsx", ".ts", ".tsx":
		return true
	}
	return false
}
