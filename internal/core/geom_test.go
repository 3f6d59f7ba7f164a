package core

import "testing"

func TestDirectionSteps(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
		name   string
	}{
		{North, 0, -1, "north"},
		{East, 1, 0, "east"},
		{South, 0, 1, "south"},
		{West, -1, 0, "west"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dir.DX() != tc.dx || tc.dir.DY() != tc.dy {
				t.Errorf("steps = (%d, %d), expected (%d, %d)", tc.dir.DX(), tc.dir.DY(), tc.dx, tc.dy)
			}
			if tc.dir.String() != tc.name {
				t.Errorf("String() = %q, expected %q", tc.dir.String(), tc.name)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{"east", East, false},
		{"W", West, false},
		{" North ", North, false},
		{"down", South, false},
		{"sideways", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.expected {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestPosition(t *testing.T) {
	p := Pos(3, 4).Add(-1, 2)
	if p != Pos(2, 6) {
		t.Errorf("Add() = %v, expected (2, 6)", p)
	}
	if p.String() != "(2, 6)" {
		t.Errorf("String() = %q, expected %q", p.String(), "(2, 6)")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClampAbs(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs() returned wrong value")
	}
}
