// Package knowledge - embedded reference data loader.
// The YAML tables under data/ are baked into the binary at compile time so
// the assistant has no filesystem dependencies at runtime.
package knowledge

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"motionsmith/internal/logging"
)

//go:embed data
var embeddedData embed.FS

// tableFile is the on-disk YAML shape.
type tableFile struct {
	Entries []Entry `yaml:"entries"`
}

var (
	defaultTable *Table
	defaultErr   error
	defaultOnce  sync.Once
)

// Default returns the embedded reference table, loading it on first use.
// The returned table is shared and read-only.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = loadEmbedded()
	})
	return defaultTable, defaultErr
}

// loadEmbedded parses every YAML file under data/ in path order.
func loadEmbedded() (*Table, error) {
	timer := logging.StartTimer(logging.CategoryKnowledge, "loadEmbedded")
	defer timer.Stop()

	var paths []string
	err := fs.WalkDir(embeddedData, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded data: %w", err)
	}
	sort.Strings(paths)

	var entries []Entry
	for _, path := range paths {
		raw, err := embeddedData.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded table %s: %w", path, err)
		}

		var tf tableFile
		if err := yaml.Unmarshal(raw, &tf); err != nil {
			return nil, fmt.Errorf("failed to parse embedded table %s: %w", path, err)
		}
		entries = append(entries, tf.Entries...)
	}

	logging.Knowledge("Loaded embedded reference tables: %d entries from %d files", len(entries), len(paths))
	return NewTable(entries), nil
}
