package extension

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadManifest(t *testing.T) {
	dir := writeManifest(t, `{
  "name": "project-tracker",
  "displayName": "Project Tracker",
  "publisher": "skdsam",
  "version": "1.2.3",
  "engines": {"vscode": "^1.80.0"},
  "contributes": {"commands": [{"command": "project-tracker.refresh"}]}
}`)

	for _, path := range []string{dir, filepath.Join(dir, ManifestFile)} {
		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("LoadManifest(%s) error = %v", path, err)
		}
		if m.ID() != "skdsam.project-tracker" {
			t.Errorf("ID() = %q, want %q", m.ID(), "skdsam.project-tracker")
		}
		if m.Version != "1.2.3" {
			t.Errorf("Version = %q, want %q", m.Version, "1.2.3")
		}
	}
}

func TestLoadManifest_MissingFields(t *testing.T) {
	dir := writeManifest(t, `{"name": "tool"}`)

	_, err := LoadManifest(dir)
	if err == nil {
		t.Fatal("expected error for incomplete manifest")
	}
	for _, field := range []string{"publisher", "version"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestLoadManifest_InvalidJSON(t *testing.T) {
	dir := writeManifest(t, `{"name": `)
	if _, err := LoadManifest(dir); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadManifest_NotFound(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing manifest")
	}
}
