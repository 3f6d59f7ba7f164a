// Package world holds the immutable tile grid a session is played on.
//
// A grid is built once from a character encoded map and never mutated, so a
// single *Grid may be shared by any number of readers without locking.
package world

// Map encoding characters.
const (
	CharBlank = '.'
	CharGrass = '/'
	CharStone = 'o'
	CharStart = 'S'
)

// Tile is the terrain classification of a single grid cell.
// Grass and stone are mutually exclusive and both imply Walkable.
// Dirt only affects rendering.
type Tile struct {
	Walkable bool `json:"walkable"`
	Dirt     bool `json:"dirt"`
	Grass    bool `json:"grass"`
	Stone    bool `json:"stone"`
}

// Vegetation reports whether the tile is grass or stone.
func (t Tile) Vegetation() bool {
	return t.Grass || t.Stone
}

// isWalkableChar reports whether the encoded character is a walkable tile.
func isWalkableChar(c rune) bool {
	switch c {
	case CharBlank, CharGrass, CharStone, CharStart:
		return true
	}
	return false
}

// newTile classifies the character at (x, y) of the encoded rows.
func newTile(rows [][]rune, x, y int) Tile {
	c := rows[y][x]
	return Tile{
		Walkable: isWalkableChar(c),
		Dirt:     y > 0 && isWalkableChar(rows[y-1][x]),
		Grass:    c == CharGrass,
		Stone:    c == CharStone,
	}
}

// sentinelTile fills the synthetic bottom row.
var sentinelTile = Tile{Dirt: true}
