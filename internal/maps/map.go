// Package maps provides the built-in maps and loads custom ones.
//
// Maps are stored either as YAML (id, name, description and a layout block)
// or as plain text files holding only the layout. Built-in maps are embedded
// and registered at init.
package maps

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/vizard/internal/world"
	"gopkg.in/yaml.v3"
)

// Map is a playable map with its parsed grid.
type Map struct {
	ID          string
	Name        string
	Description string
	Layout      string // Character encoded rows
	FilePath    string // Empty for built-in maps

	grid *world.Grid
}

// Grid returns the parsed grid. The grid is shared and must not be modified.
func (m *Map) Grid() *world.Grid {
	return m.grid
}

// Title returns the display name, falling back to the ID.
func (m *Map) Title() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// yamlMap is the YAML structure of a map file.
type yamlMap struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Layout      string `yaml:"layout"`
}

// ParseYAML parses a YAML map file.
func ParseYAML(data []byte) (*Map, error) {
	var ym yamlMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return nil, fmt.Errorf("map has no id")
	}
	return newMap(ym.ID, ym.Name, ym.Description, ym.Layout)
}

// ParseText parses a plain layout. The ID is taken from the file name.
func ParseText(path string, data []byte) (*Map, error) {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return newMap(id, "", "", string(data))
}

func newMap(id, name, description, layout string) (*Map, error) {
	g, err := world.Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", id, err)
	}
	return &Map{
		ID:          id,
		Name:        name,
		Description: description,
		Layout:      layout,
		grid:        g,
	}, nil
}
