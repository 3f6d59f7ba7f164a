package action

import (
	"errors"

	"github.com/vovakirdan/vizard/internal/world"
)

// Action errors are recoverable: the caller logs them and keeps the
// previous state.
var (
	// ErrOutOfBounds is returned when the destination lies outside the rows
	// or columns valid for the action.
	ErrOutOfBounds = world.ErrOutOfBounds
	// ErrBlocked is returned when the destination is in range but not
	// walkable.
	ErrBlocked = errors.New("destination not walkable")
	// ErrNoTargetFound is returned when a contour scan finds nothing.
	ErrNoTargetFound = errors.New("no target found")
	// ErrNoLandingRow is returned when a vertical jump exhausts every row.
	ErrNoLandingRow = errors.New("no landing row")
)
