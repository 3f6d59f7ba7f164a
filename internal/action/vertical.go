package action

import (
	"fmt"

	"github.com/vovakirdan/vizard/internal/core"
)

// VerticalJumpAction searches rows for one holding vegetation and lands on
// its westernmost grass or stone tile.
//
// With steps >= 0 the search starts steps rows away in dir and keeps going
// in dir. If that start lies outside the grid it is clamped to the edge and
// the search runs back towards the player instead. With steps < 0 the
// search starts at the far edge in dir and runs back across the grid.
func VerticalJumpAction(g Grid, s State, dir core.Direction, steps int) (State, error) {
	_, height := g.Dimensions()
	row, delta := verticalScan(s.Position.Y, dir, steps, height)

	for ; row >= 0 && row < height; row += delta {
		candidate := State{Position: core.Pos(s.Position.X, row), Direction: s.Direction}
		// The landing column is always searched westwards, whatever dir is.
		landed, err := ContourJumpAction(g, candidate, core.West, true)
		if err == nil {
			return landed, nil
		}
	}
	return s, fmt.Errorf("action: vertical jump %v from row %d: %w", dir, s.Position.Y, ErrNoLandingRow)
}

// verticalScan returns the first row to search and the row increment.
// Steps are compared with the distance to the edge so that any int is safe.
func verticalScan(y int, dir core.Direction, steps, height int) (int, int) {
	if dir == core.North {
		if steps < 0 || steps > y {
			return 0, 1
		}
		return y - steps, -1
	}

	if steps < 0 || steps > height-1-y {
		return height - 1, -1
	}
	return y + steps, 1
}
