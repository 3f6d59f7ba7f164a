// Package action resolves player moves and jumps against a tile grid.
//
// Every action is a pure function of (grid, state, parameters): it either
// returns a new State or an error, in which case the returned State is the
// input State. Nothing is mutated in place.
package action

import (
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/world"
)

// Grid is the read-only terrain actions are resolved against.
// *world.Grid satisfies it.
type Grid interface {
	Dimensions() (width, height int)
	Contains(p core.Position) bool
	At(p core.Position) world.Tile
}

// State is the player's position and facing direction.
type State struct {
	Position  core.Position  `json:"position"`
	Direction core.Direction `json:"direction"`
}

// NewState places a player at start, facing east.
func NewState(start core.Position) State {
	return State{Position: start, Direction: core.East}
}

// step advances p by one tile along the raster order of the grid. East moves
// forward and wraps to the start of the next row, any other direction moves
// backward and wraps to the end of the previous row.
func step(p core.Position, dir core.Direction, width int) core.Position {
	if dir == core.East {
		p.X++
	} else {
		p.X--
	}
	if p.X < 0 {
		p.X = width - 1
		p.Y--
	}
	if p.X > width-1 {
		p.X = 0
		p.Y++
	}
	return p
}
