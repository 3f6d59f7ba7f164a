package action

import (
	"fmt"

	"github.com/vovakirdan/vizard/internal/core"
)

// ContourJumpAction scans the player's row for a landing tile. An east jump
// scans from the east edge westwards, a west jump from the west edge
// eastwards, without wrapping. The first walkable tile is taken, or the
// first grass or stone tile when toVegetation is set.
func ContourJumpAction(g Grid, s State, dir core.Direction, toVegetation bool) (State, error) {
	dest, ok := findContour(g, s.Position, dir, toVegetation)
	if !ok {
		return s, fmt.Errorf("action: contour jump %v in row %d: %w", dir, s.Position.Y, ErrNoTargetFound)
	}

	facing := s.Direction
	switch {
	case dest.X > s.Position.X:
		facing = core.East
	case dest.X < s.Position.X:
		facing = core.West
	}
	return State{Position: dest, Direction: facing}, nil
}

func findContour(g Grid, from core.Position, dir core.Direction, toVegetation bool) (core.Position, bool) {
	width, _ := g.Dimensions()

	x, shift := 0, 1
	if dir == core.East {
		x, shift = width-1, -1
	}

	for ; x >= 0 && x < width; x += shift {
		p := core.Pos(x, from.Y)
		tile := g.At(p)
		if toVegetation && tile.Vegetation() {
			return p, true
		}
		if !toVegetation && tile.Walkable {
			return p, true
		}
	}
	return from, false
}
