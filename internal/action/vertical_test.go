package action

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/world"
)

const verticalMap = "..../.....\n" +
	"..........\n" +
	"./....o...\n" +
	"..........\n" +
	"....S.....\n" +
	"..........\n" +
	"........//\n" +
	".........."

func TestVerticalJump(t *testing.T) {
	g := world.MustParse(verticalMap)

	tests := []struct {
		name  string
		dir   core.Direction
		steps int
		want  State
	}{
		{"one row up", core.North, 1, State{core.Pos(1, 2), core.West}},
		{"from current row", core.North, 0, State{core.Pos(1, 2), core.West}},
		{"beyond nearer vegetation", core.North, 3, State{core.Pos(4, 0), core.East}},
		{"to the top", core.North, -1, State{core.Pos(4, 0), core.East}},
		{"clamped at the top", core.North, 15, State{core.Pos(4, 0), core.East}},
		{"max steps north", core.North, math.MaxInt, State{core.Pos(4, 0), core.East}},
		{"one row down", core.South, 1, State{core.Pos(8, 6), core.East}},
		{"to the bottom", core.South, -1, State{core.Pos(8, 6), core.East}},
		{"clamped at the bottom", core.South, 15, State{core.Pos(8, 6), core.East}},
		{"max steps south", core.South, math.MaxInt, State{core.Pos(8, 6), core.East}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(g.Start())
			got, err := VerticalJumpAction(g, s, tc.dir, tc.steps)
			if err != nil {
				t.Fatalf("VerticalJumpAction(%v, %d) failed: %v", tc.dir, tc.steps, err)
			}
			if got != tc.want {
				t.Errorf("VerticalJumpAction(%v, %d) = %+v, expected %+v", tc.dir, tc.steps, got, tc.want)
			}
		})
	}
}

func TestVerticalJumpPastTheEdge(t *testing.T) {
	g := world.MustParse(verticalMap)
	s := State{Position: core.Pos(4, 6), Direction: core.West}

	// Starting at row 7 and moving south only finds empty rows
	got, err := VerticalJumpAction(g, s, core.South, 1)
	if !errors.Is(err, ErrNoLandingRow) {
		t.Errorf("VerticalJumpAction() error = %v, expected ErrNoLandingRow", err)
	}
	if got != s {
		t.Errorf("state changed on error: %v, expected %v", got, s)
	}
}

func TestVerticalJumpNoVegetation(t *testing.T) {
	g := world.MustParse("S...\n....")
	s := NewState(g.Start())

	for _, dir := range []core.Direction{core.North, core.South} {
		for _, steps := range []int{-1, 0, 1, 15} {
			if _, err := VerticalJumpAction(g, s, dir, steps); !errors.Is(err, ErrNoLandingRow) {
				t.Errorf("VerticalJumpAction(%v, %d) error = %v, expected ErrNoLandingRow", dir, steps, err)
			}
		}
	}
}

func TestVerticalScanStaysInGrid(t *testing.T) {
	tests := []struct {
		dir       core.Direction
		y, steps  int
		row, step int
	}{
		{core.North, 4, 2, 2, -1},
		{core.North, 4, 4, 0, -1},
		{core.North, 4, 5, 0, 1},
		{core.North, 4, math.MaxInt, 0, 1},
		{core.North, 4, -1, 0, 1},
		{core.South, 4, 2, 6, 1},
		{core.South, 4, 4, 8, 1},
		{core.South, 4, 5, 8, -1},
		{core.South, 4, math.MaxInt, 8, -1},
		{core.South, 4, -1, 8, -1},
	}

	for _, tc := range tests {
		row, step := verticalScan(tc.y, tc.dir, tc.steps, 9)
		if row != tc.row || step != tc.step {
			t.Errorf("verticalScan(%d, %v, %d) = (%d, %d), expected (%d, %d)", tc.y, tc.dir, tc.steps, row, step, tc.row, tc.step)
		}
	}
}
