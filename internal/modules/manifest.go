package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/veltlang/velt/internal/config"
)

// Manifest is the velt.yaml project file at a project root.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Src     string `yaml:"src"`
	Output  string `yaml:"output"`

	// Root is the directory the manifest was loaded from; not part of
	// the file.
	Root string `yaml:"-"`
}

// LoadManifest reads velt.yaml from dir. Missing optional fields get
// their defaults; a missing file is an error so callers can fall back to
// single-file mode.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, config.ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%s: missing project name", path)
	}
	m.Root = dir
	m.applyDefaults()
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Version == "" {
		m.Version = "0.0.0"
	}
	if m.Src == "" {
		m.Src = "src"
	}
	if m.Output == "" {
		m.Output = "build"
	}
}

// SrcDir returns the absolute source directory.
func (m *Manifest) SrcDir() string {
	return filepath.Join(m.Root, m.Src)
}

// OutputDir returns the absolute build output directory.
func (m *Manifest) OutputDir() string {
	return filepath.Join(m.Root, m.Output)
}
