package search

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dfalcao/modscout/internal/registry"
	"github.com/dfalcao/modscout/internal/search/index"
)

func testStore(t *testing.T) *registry.Store {
	t.Helper()
	s, err := registry.Create(filepath.Join(t.TempDir(), "registry.json"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return s
}

func register(t *testing.T, s *registry.Store, m registry.ModuleManifest) {
	t.Helper()
	if err := s.Register(m); err != nil {
		t.Fatalf("Register %s: %v", m.ID, err)
	}
}

func TestSuggest_ZeroMatchBehavior(t *testing.T) {
	s := testStore(t)
	register(t, s, registry.ModuleManifest{
		ID: "user-profile-ui", Name: "user-profile-ui", Version: "1.0.0", Category: "ui",
		Description: "User profile UI components", Keywords: []string{"user", "profile"},
	})
	idx := index.Build(s)

	for _, q := range []string{"", "   ", "123 456"} {
		got := Suggest(idx, q, 0)
		if got.DetectedCategory != "unknown" {
			t.Fatalf("expected unknown category for %q, got %q", q, got.DetectedCategory)
		}
		if got.Confidence != 0 {
			t.Fatalf("expected zero confidence for %q", q)
		}
		if len(got.Recommendations) != 0 {
			t.Fatalf("expected no recommendations for %q, got %d", q, len(got.Recommendations))
		}
	}
}

func TestSuggest_TopTenCap(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 15; i++ {
		register(t, s, registry.ModuleManifest{
			ID:   fmt.Sprintf("user-widget-%02d", i),
			Name: fmt.Sprintf("user-widget-%02d", i), Version: "1.0.0", Category: "ui",
			Description: "User widget component module", Keywords: []string{"user", "componente"},
		})
	}
	idx := index.Build(s)

	got := Suggest(idx, "criar componente de usuario", 0)
	if len(got.Recommendations) > MaxRecommendations {
		t.Fatalf("cap exceeded: %d", len(got.Recommendations))
	}
	if len(got.Recommendations) != MaxRecommendations {
		t.Fatalf("expected full cap of %d, got %d", MaxRecommendations, len(got.Recommendations))
	}
	// Stable ordering: equal scores keep sorted-id (build) order.
	for i := 1; i < len(got.Recommendations); i++ {
		prev, cur := got.Recommendations[i-1], got.Recommendations[i]
		if prev.Relevance == cur.Relevance && prev.Module > cur.Module {
			t.Fatalf("tie broke build order: %s before %s", prev.Module, cur.Module)
		}
	}
}

func TestSuggest_ZeroScoreCandidatesExcluded(t *testing.T) {
	s := testStore(t)
	register(t, s, registry.ModuleManifest{
		ID: "theme-switcher", Name: "theme-switcher", Version: "1.0.0", Category: "ui",
		Description: "Theme switcher component", Keywords: []string{"theme"},
	})
	idx := index.Build(s)

	got := Suggest(idx, "webhook do stripe", 0)
	if len(got.Recommendations) != 0 {
		t.Fatalf("zero-score candidates must be excluded, got %+v", got.Recommendations)
	}
}

func TestSuggest_RecommendationShape(t *testing.T) {
	s := testStore(t)
	m := registry.ModuleManifest{
		ID: "user-profile", Name: "user-profile", Version: "1.2.0", Category: "ui",
		Description: "Perfil do usuario com formulario de edicao",
		Keywords:    []string{"perfil", "usuario"},
	}
	m.Exports.Components = []registry.Export{{Name: "ProfileCard", Path: "modules/ui/user-profile/components"}}
	m.Exports.Hooks = []registry.Export{{Name: "useProfile"}}
	register(t, s, m)
	idx := index.Build(s)

	got := Suggest(idx, "editar perfil do usuario", 0)
	if len(got.Recommendations) == 0 {
		t.Fatalf("expected recommendations")
	}

	byType := map[string]Recommendation{}
	for _, r := range got.Recommendations {
		byType[r.Type] = r
		if r.Relevance < 1 || r.Relevance > 100 {
			t.Fatalf("relevance out of range: %+v", r)
		}
	}

	if r, ok := byType[TypeComponent]; ok {
		want := "import { ProfileCard } from 'modules/ui/user-profile/components'"
		if r.UsageSnippet != want {
			t.Fatalf("component snippet: got %q want %q", r.UsageSnippet, want)
		}
	} else {
		t.Fatalf("expected a component recommendation")
	}
	if r, ok := byType[TypeHook]; ok {
		// Path falls back to the module layout when the export has none.
		if !strings.Contains(r.UsageSnippet, "useProfile") || !strings.Contains(r.UsageSnippet, "modules/ui/user-profile/hooks") {
			t.Fatalf("hook snippet: %q", r.UsageSnippet)
		}
	}
	if r, ok := byType[TypeModule]; ok {
		if r.UsageSnippet != "see modules/ui/user-profile" {
			t.Fatalf("module snippet: %q", r.UsageSnippet)
		}
	} else {
		t.Fatalf("expected a module recommendation")
	}
}

func TestSuggestFromTask_ThresholdBands(t *testing.T) {
	s := testStore(t)
	register(t, s, registry.ModuleManifest{
		ID: "user-profile-ui", Name: "user-profile-ui", Version: "1.0.0", Category: "ui",
		Description: "User profile UI components", Keywords: []string{"user", "profile"},
	})
	idx := index.Build(s)

	// Canonical scenario: ui category (componente/perfil patterns) and the
	// usuário/perfil domains detected against a user-profile corpus.
	got := SuggestFromTask(idx, "criar componente de perfil de usuário", 0)
	if got.DetectedCategory != "ui" {
		t.Fatalf("expected ui detected, got %q", got.DetectedCategory)
	}
	if len(got.Recommendations) == 0 || got.Recommendations[0].Relevance == 0 {
		t.Fatalf("expected a non-zero top recommendation, got %+v", got.Recommendations)
	}
	top := got.Recommendations[0].Relevance
	switch {
	case top >= 80:
		if got.Decision != DecisionReuse {
			t.Fatalf("relevance %d must decide reuse, got %q", top, got.Decision)
		}
	case top >= 60:
		if got.Decision != DecisionExtend {
			t.Fatalf("relevance %d must decide extend, got %q", top, got.Decision)
		}
	default:
		if got.Decision != DecisionCreate {
			t.Fatalf("relevance %d must decide create, got %q", top, got.Decision)
		}
		if got.TargetCategory != "ui" {
			t.Fatalf("create decision must carry the detected category, got %q", got.TargetCategory)
		}
	}
}

func TestSuggestFromTask_ReuseBand(t *testing.T) {
	s := testStore(t)
	register(t, s, registry.ModuleManifest{
		ID: "perfil-usuario", Name: "perfil-usuario", Version: "1.0.0", Category: "ui",
		Description: "Buscar perfil do usuario", Keywords: []string{"perfil", "usuario"},
	})
	idx := index.Build(s)

	// 0.3 category + two domain hits + full token match caps at 1.0 -> 100.
	got := SuggestFromTask(idx, "buscar perfil usuario", 0)
	if got.Decision != DecisionReuse {
		t.Fatalf("expected reuse, got %q (%+v)", got.Decision, got.Recommendations)
	}
	if got.Recommendations[0].Relevance != 100 {
		t.Fatalf("expected capped relevance 100, got %d", got.Recommendations[0].Relevance)
	}
}

func TestSuggestFromTask_EmptyRegistryCreates(t *testing.T) {
	idx := index.Build(testStore(t))
	got := SuggestFromTask(idx, "criar tela de pagamento", 0)
	if got.Decision != DecisionCreate {
		t.Fatalf("empty registry must decide create, got %q", got.Decision)
	}
	if got.TargetCategory == "" {
		t.Fatalf("create decision must suggest a target category")
	}
}
