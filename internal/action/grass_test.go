package action

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/world"
)

// vegetationMap has a 20 column first row mixing grass and stone runs and
// a short second row of grass.
var vegetationMap = "S.//o///..oo//o///..\n" +
	" ..//.." + strings.Repeat(" ", 13)

func runJumps(t *testing.T, name string, s State, jump func(State) (State, error), want []core.Position) State {
	t.Helper()
	for i, p := range want {
		next, err := jump(s)
		if err != nil {
			t.Fatalf("%s #%d from %v failed: %v", name, i+1, s.Position, err)
		}
		if next.Position != p {
			t.Fatalf("%s #%d from %v = %v, expected %v", name, i+1, s.Position, next.Position, p)
		}
		s = next
	}
	return s
}

func TestGrassStartJumpEast(t *testing.T) {
	g := world.MustParse(vegetationMap)
	s := NewState(g.Start())

	jump := func(s State) (State, error) {
		return GrassStartJumpAction(g, s, core.East, false)
	}
	s = runJumps(t, "GrassStartJumpAction", s, jump, []core.Position{
		core.Pos(2, 0), core.Pos(4, 0), core.Pos(5, 0), core.Pos(10, 0),
		core.Pos(12, 0), core.Pos(14, 0), core.Pos(15, 0), core.Pos(3, 1),
	})

	// The scan runs into the sentinel row
	got, err := GrassStartJumpAction(g, s, core.East, false)
	if !errors.Is(err, ErrBlocked) {
		t.Errorf("ninth GrassStartJumpAction() error = %v, expected ErrBlocked", err)
	}
	if got != s {
		t.Errorf("state changed on error: %v, expected %v", got, s)
	}
}

func TestGrassStartJumpIgnoringStones(t *testing.T) {
	g := world.MustParse(vegetationMap)
	s := NewState(g.Start())

	jump := func(s State) (State, error) {
		return GrassStartJumpAction(g, s, core.East, true)
	}
	runJumps(t, "GrassStartJumpAction", s, jump, []core.Position{
		core.Pos(2, 0), core.Pos(10, 0), core.Pos(3, 1),
	})
}

func TestGrassStartJumpWest(t *testing.T) {
	g := world.MustParse(vegetationMap)
	s := State{Position: core.Pos(3, 1), Direction: core.East}

	got, err := GrassStartJumpAction(g, s, core.West, false)
	if err != nil {
		t.Fatalf("GrassStartJumpAction() failed: %v", err)
	}
	// Wraps back to the end of row 0
	if got.Position != core.Pos(17, 0) {
		t.Errorf("GrassStartJumpAction() = %v, expected (17, 0)", got.Position)
	}
	if got.Direction != core.West {
		t.Errorf("GrassStartJumpAction() direction = %v, expected west", got.Direction)
	}
}

func TestGrassEndJumpEast(t *testing.T) {
	g := world.MustParse(vegetationMap)
	s := NewState(g.Start())

	jump := func(s State) (State, error) {
		return GrassEndJumpAction(g, s, core.East, false)
	}
	s = runJumps(t, "GrassEndJumpAction", s, jump, []core.Position{
		core.Pos(3, 0), core.Pos(4, 0), core.Pos(7, 0), core.Pos(11, 0),
		core.Pos(13, 0), core.Pos(14, 0), core.Pos(17, 0), core.Pos(4, 1),
	})

	if _, err := GrassEndJumpAction(g, s, core.East, false); !errors.Is(err, ErrBlocked) {
		t.Errorf("last GrassEndJumpAction() error = %v, expected ErrBlocked", err)
	}
}

func TestGrassEndJumpIgnoringStones(t *testing.T) {
	g := world.MustParse(vegetationMap)
	s := NewState(g.Start())

	jump := func(s State) (State, error) {
		return GrassEndJumpAction(g, s, core.East, true)
	}
	runJumps(t, "GrassEndJumpAction", s, jump, []core.Position{
		core.Pos(7, 0), core.Pos(17, 0), core.Pos(4, 1),
	})
}

func TestGrassEndJumpWest(t *testing.T) {
	g := world.MustParse(vegetationMap)
	s := State{Position: core.Pos(17, 0), Direction: core.East}

	jump := func(s State) (State, error) {
		return GrassEndJumpAction(g, s, core.West, false)
	}
	s = runJumps(t, "GrassEndJumpAction", s, jump, []core.Position{
		core.Pos(15, 0), core.Pos(14, 0), core.Pos(12, 0),
	})
	if s.Direction != core.West {
		t.Errorf("GrassEndJumpAction() direction = %v, expected west", s.Direction)
	}
}

func TestGrassEndJumpWestOffGrid(t *testing.T) {
	g := world.MustParse(vegetationMap)
	s := State{Position: core.Pos(1, 0), Direction: core.West}

	got, err := GrassEndJumpAction(g, s, core.West, false)
	if !errors.Is(err, ErrBlocked) {
		t.Errorf("GrassEndJumpAction() error = %v, expected ErrBlocked", err)
	}
	if got != s {
		t.Errorf("state changed on error: %v, expected %v", got, s)
	}
}

func TestGrassJumpsLandOnWalkableTiles(t *testing.T) {
	maps := map[string]string{
		"vegetation": vegetationMap,
		"movement":   movementMap,
		"gaps":       "S/ o/\n /o /\n//  o",
	}

	for name, encoded := range maps {
		t.Run(name, func(t *testing.T) {
			g := world.MustParse(encoded)
			width, height := g.Dimensions()

			for y := 0; y < height-1; y++ {
				for x := 0; x < width; x++ {
					s := State{Position: core.Pos(x, y), Direction: core.East}
					if !g.At(s.Position).Walkable {
						continue
					}
					for _, dir := range []core.Direction{core.East, core.West} {
						for _, ignore := range []bool{false, true} {
							for _, req := range []Request{
								GrassStartJump{Direction: dir, IgnoreStones: ignore},
								GrassEndJump{Direction: dir, IgnoreStones: ignore},
							} {
								got, err := Apply(g, s, req)
								if err != nil {
									if !errors.Is(err, ErrBlocked) {
										t.Errorf("%+v from %v: error = %v, expected ErrBlocked", req, s.Position, err)
									}
									if got != s {
										t.Errorf("%+v from %v: state changed on error", req, s.Position)
									}
									continue
								}
								if !g.Contains(got.Position) || !g.At(got.Position).Walkable {
									t.Errorf("%+v from %v landed on %v", req, s.Position, got.Position)
								}
								if got.Direction != dir {
									t.Errorf("%+v from %v: direction = %v, expected %v", req, s.Position, got.Direction, dir)
								}
							}
						}
					}
				}
			}
		})
	}
}

func TestGrassStartJumpSingleColumn(t *testing.T) {
	g := world.MustParse("S\n.\n/\n.")
	s := NewState(g.Start())

	got, err := GrassStartJumpAction(g, s, core.East, false)
	if err != nil || got.Position != core.Pos(0, 2) {
		t.Fatalf("GrassStartJumpAction() = %v, %v, expected (0, 2)", got.Position, err)
	}

	// Every step changes row, so the scan stops at the sentinel row
	if _, err := GrassStartJumpAction(g, got, core.East, false); !errors.Is(err, ErrBlocked) {
		t.Errorf("GrassStartJumpAction() error = %v, expected ErrBlocked", err)
	}
}
