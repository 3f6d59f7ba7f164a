package action

import (
	"errors"
	"testing"

	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/world"
)

const movementMap = "..........\n" +
	"..//o//...\n" +
	"....S.....\n" +
	"//..////..\n" +
	".........."

func TestPlayerStartsAtStartPosition(t *testing.T) {
	g := world.MustParse(movementMap)
	s := NewState(g.Start())

	if s.Position != core.Pos(4, 2) {
		t.Errorf("NewState().Position = %v, expected (4, 2)", s.Position)
	}
	if s.Direction != core.East {
		t.Errorf("NewState().Direction = %v, expected east", s.Direction)
	}
}

func TestHorizontalMoveWithinBounds(t *testing.T) {
	g := world.MustParse(movementMap)
	s := NewState(g.Start())

	steps := []struct {
		steps int
		want  core.Position
		dir   core.Direction
	}{
		{1, core.Pos(5, 2), core.East},
		{-2, core.Pos(3, 2), core.West},
		{-3, core.Pos(0, 2), core.West},
		{9, core.Pos(9, 2), core.East},
	}

	for _, tc := range steps {
		var err error
		s, err = HorizontalMoveAction(g, s, tc.steps)
		if err != nil {
			t.Fatalf("HorizontalMoveAction(%d) failed: %v", tc.steps, err)
		}
		if s.Position != tc.want || s.Direction != tc.dir {
			t.Errorf("HorizontalMoveAction(%d) = %v %v, expected %v %v",
				tc.steps, s.Position, s.Direction, tc.want, tc.dir)
		}
	}
}

func TestHorizontalMoveOutOfBounds(t *testing.T) {
	g := world.MustParse(movementMap)
	s := NewState(g.Start())

	s, err := HorizontalMoveAction(g, s, 5)
	if err != nil || s.Position != core.Pos(9, 2) {
		t.Fatalf("HorizontalMoveAction(5) = %v, %v, expected (9, 2)", s.Position, err)
	}

	for _, steps := range []int{1, 10} {
		got, err := HorizontalMoveAction(g, s, steps)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("HorizontalMoveAction(%d) error = %v, expected ErrOutOfBounds", steps, err)
		}
		if got != s {
			t.Errorf("HorizontalMoveAction(%d) changed state on error: %v", steps, got)
		}
	}

	s, err = HorizontalMoveAction(g, s, -9)
	if err != nil || s.Position != core.Pos(0, 2) {
		t.Fatalf("HorizontalMoveAction(-9) = %v, %v, expected (0, 2)", s.Position, err)
	}

	for _, steps := range []int{-1, -500} {
		if _, err := HorizontalMoveAction(g, s, steps); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("HorizontalMoveAction(%d) error = %v, expected ErrOutOfBounds", steps, err)
		}
	}
}

func TestHorizontalMoveBlocked(t *testing.T) {
	g := world.MustParse("S. .")
	s := NewState(g.Start())

	s, _ = HorizontalMoveAction(g, s, 1)
	got, err := HorizontalMoveAction(g, s, 1)
	if !errors.Is(err, ErrBlocked) {
		t.Errorf("HorizontalMoveAction(1) error = %v, expected ErrBlocked", err)
	}
	if got != s {
		t.Errorf("state changed on error: %v, expected %v", got, s)
	}

	// Jumping over the gap is fine
	got, err = HorizontalMoveAction(g, s, 2)
	if err != nil || got.Position != core.Pos(3, 0) {
		t.Errorf("HorizontalMoveAction(2) = %v, %v, expected (3, 0)", got.Position, err)
	}
}

func TestHorizontalMoveFacing(t *testing.T) {
	g := world.MustParse(movementMap)
	start := NewState(g.Start())

	s, _ := HorizontalMoveAction(g, start, 1)
	s, err := HorizontalMoveAction(g, s, -1)
	if err != nil {
		t.Fatalf("HorizontalMoveAction(-1) failed: %v", err)
	}
	if s.Position != start.Position {
		t.Errorf("round trip ended at %v, expected %v", s.Position, start.Position)
	}
	if s.Direction != core.West {
		t.Errorf("round trip direction = %v, expected west", s.Direction)
	}

	// Zero steps counts as a westward move
	s, err = HorizontalMoveAction(g, start, 0)
	if err != nil || s.Direction != core.West || s.Position != start.Position {
		t.Errorf("HorizontalMoveAction(0) = %v, %v", s, err)
	}
}

func TestVerticalMove(t *testing.T) {
	g := world.MustParse(movementMap)
	s := NewState(g.Start())

	tests := []struct {
		steps   int
		want    core.Position
		wantErr error
	}{
		{-1, core.Pos(4, 1), nil},
		{-1, core.Pos(4, 0), nil},
		{-1, core.Pos(4, 0), ErrOutOfBounds},
		{4, core.Pos(4, 4), nil},
		{1, core.Pos(4, 4), ErrOutOfBounds}, // sentinel row
		{-4, core.Pos(4, 0), nil},
	}

	for i, tc := range tests {
		got, err := VerticalMoveAction(g, s, tc.steps)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("step %d: VerticalMoveAction(%d) error = %v, expected %v", i, tc.steps, err, tc.wantErr)
		}
		if got.Position != tc.want {
			t.Errorf("step %d: VerticalMoveAction(%d) = %v, expected %v", i, tc.steps, got.Position, tc.want)
		}
		if got.Direction != core.East {
			t.Errorf("step %d: VerticalMoveAction(%d) changed direction to %v", i, tc.steps, got.Direction)
		}
		s = got
	}
}

func TestVerticalMoveBlockedByGap(t *testing.T) {
	g := world.MustParse(". S.\n" +
		".  .\n" +
		"....")
	s := NewState(g.Start())

	got, err := VerticalMoveAction(g, s, 1)
	if !errors.Is(err, ErrBlocked) {
		t.Errorf("VerticalMoveAction(1) error = %v, expected ErrBlocked", err)
	}
	if got != s {
		t.Errorf("state changed on error: %v, expected %v", got, s)
	}

	got, err = VerticalMoveAction(g, s, 2)
	if err != nil || got.Position != core.Pos(2, 2) {
		t.Errorf("VerticalMoveAction(2) = %v, %v, expected (2, 2)", got.Position, err)
	}
}
