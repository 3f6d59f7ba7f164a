package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/vizard/internal/core"
)

var (
	// ErrInvalidMapEncoding is returned for empty maps or ragged rows.
	ErrInvalidMapEncoding = errors.New("invalid map encoding")
	// ErrInvalidStartCount is returned when the map does not contain exactly
	// one start marker.
	ErrInvalidStartCount = errors.New("wrong number of starting positions")
	// ErrOutOfBounds is returned by TileAt for positions outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Grid is a rectangular, row-major matrix of tiles indexed (y, x).
// Its height is the number of encoded rows plus one synthetic row of
// unwalkable dirt at the bottom.
type Grid struct {
	width  int
	height int
	tiles  []Tile
	start  core.Position
}

// Parse builds a grid from a character encoded map: one line per row, all
// lines of equal length in characters. Any character other than the
// encoding characters is an unwalkable blank. A trailing newline on the last line is ignored.
func Parse(encoded string) (*Grid, error) {
	encoded = strings.TrimSuffix(strings.ReplaceAll(encoded, "\r\n", "\n"), "\n")
	if encoded == "" {
		return nil, fmt.Errorf("world: %w: map has no rows", ErrInvalidMapEncoding)
	}

	lines := strings.Split(encoded, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("world: %w: map has empty rows", ErrInvalidMapEncoding)
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("world: %w: row %d has %d columns, expected %d",
				ErrInvalidMapEncoding, i, len(row), width)
		}
	}

	g := &Grid{
		width:  width,
		height: len(rows) + 1,
		tiles:  make([]Tile, width*(len(rows)+1)),
	}

	var starts []core.Position
	for y := range rows {
		for x := 0; x < width; x++ {
			g.tiles[y*width+x] = newTile(rows, x, y)
			if rows[y][x] == CharStart {
				starts = append(starts, core.Pos(x, y))
			}
		}
	}
	for x := 0; x < width; x++ {
		g.tiles[(g.height-1)*width+x] = sentinelTile
	}

	if len(starts) != 1 {
		return nil, fmt.Errorf("world: %w: expected 1, got %d", ErrInvalidStartCount, len(starts))
	}
	g.start = starts[0]

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for built-in maps
// and tests.
func MustParse(encoded string) *Grid {
	g, err := Parse(encoded)
	if err != nil {
		panic(err)
	}
	return g
}

// Dimensions returns (width, height) in tiles, including the bottom row.
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// Start returns the position of the start marker.
func (g *Grid) Start() core.Position {
	return g.start
}

// Contains reports whether p lies within [0,width)x[0,height).
func (g *Grid) Contains(p core.Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// TileAt returns the tile at p.
func (g *Grid) TileAt(p core.Position) (Tile, error) {
	if !g.Contains(p) {
		return Tile{}, fmt.Errorf("world: %w: %v", ErrOutOfBounds, p)
	}
	return g.tiles[p.Y*g.width+p.X], nil
}

// At returns the tile at p, or the zero tile (unwalkable blank) when p is
// outside the grid. Search loops use it where off-grid cells behave as gaps.
func (g *Grid) At(p core.Position) Tile {
	if !g.Contains(p) {
		return Tile{}
	}
	return g.tiles[p.Y*g.width+p.X]
}

// Row returns a copy of row y, or nil if y is outside the grid.
func (g *Grid) Row(y int) []Tile {
	if y < 0 || y >= g.height {
		return nil
	}
	out := make([]Tile, g.width)
	copy(out, g.tiles[y*g.width:(y+1)*g.width])
	return out
}
