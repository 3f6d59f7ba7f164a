package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile loads a single map file. Supported extensions are .yaml, .yml
// and .txt.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := parseByExtension(path, data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// LoadDir loads every supported map file under root. Invalid files are
// skipped. Maps are sorted by ID.
func LoadDir(root string) ([]*Map, error) {
	var result []*Map

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		m, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		result = append(result, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".txt":
		return true
	}
	return false
}

func parseByExtension(path string, data []byte) (*Map, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt":
		return ParseText(path, data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}
}
