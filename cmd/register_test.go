package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadManifestFile_YAML(t *testing.T) {
	path := writeTempManifest(t, "module.yaml", `
id: user-profile
name: User Profile
version: 1.0.0
category: ui
description: Profile page with avatar upload
keywords: [user, profile]
exports:
  components:
    - name: UserProfileCard
      path: components/UserProfileCard.tsx
`)
	m, err := readManifestFile(path)
	if err != nil {
		t.Fatalf("readManifestFile: %v", err)
	}
	if m.ID != "user-profile" || m.Category != "ui" {
		t.Errorf("got id=%q category=%q", m.ID, m.Category)
	}
	if len(m.Exports.Components) != 1 || m.Exports.Components[0].Name != "UserProfileCard" {
		t.Errorf("components not parsed: %+v", m.Exports.Components)
	}
}

func TestReadManifestFile_JSON(t *testing.T) {
	path := writeTempManifest(t, "module.json", `{
  "id": "payments",
  "name": "Payments",
  "version": "2.1.0",
  "category": "integration",
  "description": "Stripe checkout integration",
  "keywords": ["payment", "stripe"]
}`)
	m, err := readManifestFile(path)
	if err != nil {
		t.Fatalf("readManifestFile: %v", err)
	}
	if m.ID != "payments" || m.Version != "2.1.0" {
		t.Errorf("got id=%q version=%q", m.ID, m.Version)
	}
}

func TestReadManifestFile_InvalidYAML(t *testing.T) {
	path := writeTempManifest(t, "module.yaml", "id: [unclosed")
	if _, err := readManifestFile(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestReadManifestFile_Missing(t *testing.T) {
	if _, err := readManifestFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestIndexStale(t *testing.T) {
	cases := []struct {
		name              string
		registry, builtAt string
		want              bool
	}{
		{"fresh", "2026-01-01T00:00:00Z", "2026-01-02T00:00:00Z", false},
		{"stale", "2026-01-02T00:00:00Z", "2026-01-01T00:00:00Z", true},
		{"equal", "2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z", false},
		{"unparseable", "yesterday", "2026-01-01T00:00:00Z", true},
	}
	for _, c := range cases {
		if got := indexStale(c.registry, c.builtAt); got != c.want {
			t.Errorf("%s: indexStale(%q, %q) = %v, want %v", c.name, c.registry, c.builtAt, got, c.want)
		}
	}
}
