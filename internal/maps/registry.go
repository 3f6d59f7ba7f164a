package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

// DefaultID is the map played when none is given.
const DefaultID = "default"

// Info contains metadata about a registered map.
type Info struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Width       int    `json:"width"`
	Height      int    `json:"height"` // Encoded rows, without the sentinel row
}

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	registered = make(map[string]*Map)
	mu         sync.RWMutex
)

func init() {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("maps: reading built-in maps: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("maps: reading %s: %v", e.Name(), err))
		}
		m, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("maps: built-in %s: %v", e.Name(), err))
		}
		Register(m)
	}
}

// Register adds a map to the registry.
// Panics if a map with the same ID is already registered.
func Register(m *Map) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[m.ID]; exists {
		panic(fmt.Sprintf("maps: map %q already registered", m.ID))
	}
	registered[m.ID] = m
}

// List returns information about all registered maps, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(registered))
	for _, m := range registered {
		w, h := m.grid.Dimensions()
		result = append(result, Info{
			ID:          m.ID,
			Title:       m.Title(),
			Description: m.Description,
			Width:       w,
			Height:      h - 1,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered map by its ID.
// Returns an error if the map ID is not registered.
func Get(id string) (*Map, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := registered[id]
	if !ok {
		return nil, fmt.Errorf("maps: unknown map %q", id)
	}
	return m, nil
}

// Exists checks if a map with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[id]
	return ok
}
