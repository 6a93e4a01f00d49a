package modules

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "velt.yaml"), `name: demo
version: 1.2.0
src: sources
output: out
`)
	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Name != "demo" || m.Version != "1.2.0" {
		t.Errorf("wrong manifest fields: %+v", m)
	}
	if m.SrcDir() != filepath.Join(dir, "sources") {
		t.Errorf("wrong src dir: %s", m.SrcDir())
	}
	if m.OutputDir() != filepath.Join(dir, "out") {
		t.Errorf("wrong output dir: %s", m.OutputDir())
	}
}

func TestManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "velt.yaml"), "name: demo\n")
	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Version != "0.0.0" || m.Src != "src" || m.Output != "build" {
		t.Errorf("defaults not applied: %+v", m)
	}
}

func TestManifestRequiresName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "velt.yaml"), "version: 1.0.0\n")
	if _, err := LoadManifest(dir); err == nil {
		t.Errorf("expected an error for a nameless manifest")
	}
}

func TestManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest(t.TempDir()); err == nil {
		t.Errorf("expected an error for a missing manifest")
	}
}

func TestDiscoverSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.vt"), "module B\n")
	writeFile(t, filepath.Join(dir, "nested", "a.vt"), "module A\n")
	writeFile(t, filepath.Join(dir, "legacy.velt"), "module L\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a source")

	sources, err := DiscoverSources(dir)
	if err != nil {
		t.Fatalf("DiscoverSources: %v", err)
	}
	if len(sources) != 3 {
		t.Fatalf("expected 3 sources, got %v", sources)
	}
	// Deterministic lexical order.
	want := []string{
		filepath.Join(dir, "b.vt"),
		filepath.Join(dir, "legacy.velt"),
		filepath.Join(dir, "nested", "a.vt"),
	}
	for i := range want {
		if sources[i] != want[i] {
			t.Errorf("sources[%d] = %s, want %s", i, sources[i], want[i])
		}
	}
}
