package action

import (
	"fmt"

	"github.com/vovakirdan/vizard/internal/core"
)

// HorizontalMoveAction moves the player steps tiles along its row. The
// player faces east after a positive move and west otherwise, including
// steps == 0.
func HorizontalMoveAction(g Grid, s State, steps int) (State, error) {
	width, _ := g.Dimensions()
	x := s.Position.X + steps
	if x < 0 || x >= width {
		return s, fmt.Errorf("action: horizontal move to x=%d: %w", x, ErrOutOfBounds)
	}

	dest := core.Pos(x, s.Position.Y)
	if !g.At(dest).Walkable {
		return s, fmt.Errorf("action: horizontal move to %v: %w", dest, ErrBlocked)
	}

	dir := core.West
	if steps > 0 {
		dir = core.East
	}
	return State{Position: dest, Direction: dir}, nil
}

// VerticalMoveAction moves the player steps rows. The bottom sentinel row is
// never a valid destination. Facing is unchanged.
func VerticalMoveAction(g Grid, s State, steps int) (State, error) {
	_, height := g.Dimensions()
	y := s.Position.Y + steps
	if y < 0 || y > height-2 {
		return s, fmt.Errorf("action: vertical move to y=%d: %w", y, ErrOutOfBounds)
	}

	dest := core.Pos(s.Position.X, y)
	if !g.At(dest).Walkable {
		return s, fmt.Errorf("action: vertical move to %v: %w", dest, ErrBlocked)
	}

	return State{Position: dest, Direction: s.Direction}, nil
}
