package action

import (
	"fmt"

	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/world"
)

// GrassStartJumpAction jumps to the first tile of the next vegetation run in
// raster order. Unless ignoreStones is set, a switch between grass and stone
// also starts a new run.
func GrassStartJumpAction(g Grid, s State, dir core.Direction, ignoreStones bool) (State, error) {
	return landGrassJump(g, s, dir, findRunStart(g, s.Position, dir, ignoreStones))
}

// GrassEndJumpAction jumps to the last tile of the vegetation run that
// starts one step ahead, or of the next run after it.
func GrassEndJumpAction(g Grid, s State, dir core.Direction, ignoreStones bool) (State, error) {
	return landGrassJump(g, s, dir, findRunEnd(g, s.Position, dir, ignoreStones))
}

func landGrassJump(g Grid, s State, dir core.Direction, dest core.Position) (State, error) {
	if !g.Contains(dest) || !g.At(dest).Walkable {
		return s, fmt.Errorf("action: grass jump to %v: %w", dest, ErrBlocked)
	}
	return State{Position: dest, Direction: dir}, nil
}

// findRunStart scans while the cursor stays above the sentinel row. When
// the scan runs out the last cursor is returned for the caller to reject.
func findRunStart(g Grid, from core.Position, dir core.Direction, ignoreStones bool) core.Position {
	width, height := g.Dimensions()
	source := g.At(from)

	p := step(from, dir, width)
	for p.Y >= 0 && p.Y < height-1 {
		tile := g.At(p)
		switch {
		case !source.Vegetation():
			if tile.Vegetation() {
				return p
			}
		case source.Grass:
			if !ignoreStones && tile.Stone {
				return p
			}
			if !tile.Vegetation() {
				source = tile
			}
		case source.Stone:
			if !ignoreStones && tile.Grass {
				return p
			}
			if !tile.Vegetation() {
				source = tile
			}
		}
		p = step(p, dir, width)
	}
	return p
}

// findRunEnd walks two cursors one step apart and stops where the leading
// one leaves the run.
func findRunEnd(g Grid, from core.Position, dir core.Direction, ignoreStones bool) core.Position {
	width, height := g.Dimensions()

	prev := step(from, dir, width)
	next := step(prev, dir, width)
	for prev.Y >= 0 && prev.Y < height-1 {
		prevTile := g.At(prev)
		nextTile := g.At(next)

		if prevTile.Vegetation() && (!nextTile.Vegetation() || !g.Contains(next)) {
			return prev
		}
		if !ignoreStones && crossesVegetationKind(prevTile, nextTile) {
			return prev
		}

		prev = next
		next = step(next, dir, width)
	}
	return prev
}

func crossesVegetationKind(a, b world.Tile) bool {
	return (a.Grass && b.Stone) || (a.Stone && b.Grass)
}
