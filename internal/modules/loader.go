package modules

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/veltlang/velt/internal/config"
)

// DiscoverSources walks a directory tree and returns every Velt source
// file in deterministic order.
func DiscoverSources(root string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSourceFile(path) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(sources)
	return sources, nil
}

// LoadSource reads one source file.
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range config.SourceFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
