package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dfalcao/modscout/internal/registry"
)

func seedStore(t *testing.T) *registry.Store {
	t.Helper()
	s, err := registry.Create(filepath.Join(t.TempDir(), "registry.json"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	manifests := []registry.ModuleManifest{
		{
			ID: "user-profile", Name: "user-profile", Version: "1.0.0", Category: "ui",
			Description: "Perfil do usuario", Keywords: []string{"perfil"},
			Exports: registry.Exports{
				Components: []registry.Export{{Name: "ProfileCard", Path: "modules/ui/user-profile/components"}},
				Hooks:      []registry.Export{{Name: "useProfile", Description: "Profile state hook"}},
			},
		},
		{
			ID: "payments", Name: "payments", Version: "2.1.0", Category: "integration",
			Description: "Stripe payment integration", Keywords: []string{"payment", "stripe"},
			Exports: registry.Exports{
				Services: []registry.Export{{Name: "PaymentService"}},
			},
		},
	}
	for _, m := range manifests {
		if err := s.Register(m); err != nil {
			t.Fatalf("Register %s: %v", m.ID, err)
		}
	}
	return s
}

func TestBuild_FlattensExports(t *testing.T) {
	idx := Build(seedStore(t))

	if len(idx.Modules) != 2 {
		t.Fatalf("expected 2 module entries, got %d", len(idx.Modules))
	}
	if len(idx.Components) != 1 || len(idx.Hooks) != 1 || len(idx.Services) != 1 {
		t.Fatalf("flat collections wrong: %d/%d/%d", len(idx.Components), len(idx.Hooks), len(idx.Services))
	}

	c := idx.Components[0]
	if c.Module != "user-profile" || c.Category != "ui" {
		t.Fatalf("component back-reference wrong: %+v", c)
	}
	// Description inherited from the owning manifest.
	if c.Description != "Perfil do usuario" {
		t.Fatalf("expected inherited description, got %q", c.Description)
	}
	// Explicit export description preserved.
	if idx.Hooks[0].Description != "Profile state hook" {
		t.Fatalf("export description lost: %+v", idx.Hooks[0])
	}
	// Path fallback from the module layout.
	if idx.Services[0].Path != "modules/integration/payments/services" {
		t.Fatalf("path fallback wrong: %q", idx.Services[0].Path)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	s := seedStore(t)
	a := Build(s)
	b := Build(s)

	// BuiltAt differs; everything derived from the registry must not.
	a.BuiltAt, b.BuiltAt = "", ""
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two builds of an unchanged registry differ:\n%+v\n%+v", a, b)
	}
}

func TestBuild_EmptyRegistry(t *testing.T) {
	s, err := registry.Create(filepath.Join(t.TempDir(), "registry.json"))
	if err != nil {
		t.Fatal(err)
	}
	idx := Build(s)
	if len(idx.Modules) != 0 || len(idx.Components) != 0 || len(idx.Hooks) != 0 || len(idx.Services) != 0 {
		t.Fatalf("expected empty collections, got %+v", idx)
	}
}

func TestBuild_SkipsInvalidManifests(t *testing.T) {
	// Hand-edit the document on disk so one manifest no longer validates;
	// the build must skip it and keep the rest.
	path := filepath.Join(t.TempDir(), "registry.json")
	s, err := registry.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Register(registry.ModuleManifest{
		ID: "good", Name: "good", Version: "1.0.0", Category: "ui",
		Description: "A valid module manifest", Keywords: []string{"good"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	var doc map[string]any
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	cats := doc["categories"].(map[string]any)
	cats["data"] = []any{map[string]any{"id": "broken", "version": "nope"}}
	edited, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, edited, 0o644); err != nil {
		t.Fatal(err)
	}

	reopened, err := registry.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	idx := Build(reopened)
	if _, ok := idx.Modules["good"]; !ok {
		t.Fatalf("valid manifest missing from index")
	}
	if _, ok := idx.Modules["broken"]; ok {
		t.Fatalf("invalid manifest must not be indexed")
	}
	if len(idx.Skipped) != 1 || idx.Skipped[0] != "broken" {
		t.Fatalf("expected skipped=[broken], got %v", idx.Skipped)
	}
}
