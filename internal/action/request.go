package action

import (
	"fmt"

	"github.com/vovakirdan/vizard/internal/core"
)

// Request is one of the action kinds below. The set is closed.
type Request interface {
	// Kind returns a short name of the action used in logs.
	Kind() string
	isRequest()
}

// HorizontalMove moves the player Steps tiles along its row.
// Positive steps go east.
type HorizontalMove struct {
	Steps int
}

// VerticalMove moves the player Steps rows. Positive steps go south.
type VerticalMove struct {
	Steps int
}

// GrassStartJump lands on the first tile of the next vegetation run.
type GrassStartJump struct {
	Direction    core.Direction
	IgnoreStones bool
}

// GrassEndJump lands on the last tile of the current or next vegetation run.
type GrassEndJump struct {
	Direction    core.Direction
	IgnoreStones bool
}

// ContourJump lands on the outermost walkable (or vegetation) tile of the
// player's row.
type ContourJump struct {
	Direction    core.Direction
	ToVegetation bool
}

// VerticalJump searches rows north or south for one holding vegetation.
// Negative Steps search from the far edge of the grid.
type VerticalJump struct {
	Direction core.Direction
	Steps     int
}

func (HorizontalMove) isRequest() {}
func (VerticalMove) isRequest()   {}
func (GrassStartJump) isRequest() {}
func (GrassEndJump) isRequest()   {}
func (ContourJump) isRequest()    {}
func (VerticalJump) isRequest()   {}

func (HorizontalMove) Kind() string { return "horizontal-move" }
func (VerticalMove) Kind() string   { return "vertical-move" }
func (GrassStartJump) Kind() string { return "grass-start-jump" }
func (GrassEndJump) Kind() string   { return "grass-end-jump" }
func (ContourJump) Kind() string    { return "contour-jump" }
func (VerticalJump) Kind() string   { return "vertical-jump" }

// Apply resolves req against g. On error the input state is returned
// unchanged.
func Apply(g Grid, s State, req Request) (State, error) {
	switch r := req.(type) {
	case HorizontalMove:
		return HorizontalMoveAction(g, s, r.Steps)
	case VerticalMove:
		return VerticalMoveAction(g, s, r.Steps)
	case GrassStartJump:
		return GrassStartJumpAction(g, s, r.Direction, r.IgnoreStones)
	case GrassEndJump:
		return GrassEndJumpAction(g, s, r.Direction, r.IgnoreStones)
	case ContourJump:
		return ContourJumpAction(g, s, r.Direction, r.ToVegetation)
	case VerticalJump:
		return VerticalJumpAction(g, s, r.Direction, r.Steps)
	default:
		return s, fmt.Errorf("action: unsupported request %T", req)
	}
}
