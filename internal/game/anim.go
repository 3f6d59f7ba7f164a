package game

import (
	"errors"
	"fmt"
)

// ErrUnknownAnimation is returned when starting an animation that was never
// registered.
var ErrUnknownAnimation = errors.New("unknown animation")

// Animation is a sequence of glyphs shown for Speed milliseconds each.
type Animation struct {
	Frames []rune
	Speed  int64 // Milliseconds per frame
	Loop   bool
}

// Frame returns the glyph elapsed milliseconds after the animation started.
// A looping animation cycles, any other holds its last frame.
func (a Animation) Frame(elapsed int64) rune {
	if len(a.Frames) == 0 {
		return ' '
	}
	idx := int64(0)
	if a.Speed > 0 && elapsed > 0 {
		idx = elapsed / a.Speed
	}

	n := int64(len(a.Frames))
	switch {
	case idx < n:
		return a.Frames[idx]
	case a.Loop:
		return a.Frames[idx%n]
	default:
		return a.Frames[n-1]
	}
}

// IsOver reports whether a non-looping animation has shown its last frame
// for longer than zero milliseconds. Looping animations never end.
func (a Animation) IsOver(elapsed int64) bool {
	return !a.Loop && elapsed > a.Speed*int64(len(a.Frames)-1)
}

// Duration returns how long a single run of the animation lasts.
func (a Animation) Duration() int64 {
	return a.Speed * int64(len(a.Frames))
}

// Animator plays named animations and falls back to a default one when a
// non-looping animation is over.
type Animator struct {
	animations map[string]Animation
	fallback   string
	current    string
	started    int64
}

// NewAnimator creates an animator playing fallback. fallback must be one of
// animations.
func NewAnimator(fallback string, animations map[string]Animation) *Animator {
	return &Animator{
		animations: animations,
		fallback:   fallback,
		current:    fallback,
	}
}

// Start plays the named animation from now on.
func (a *Animator) Start(name string, now int64) error {
	if _, ok := a.animations[name]; !ok {
		return fmt.Errorf("game: %w: %q", ErrUnknownAnimation, name)
	}
	a.current = name
	a.started = now
	return nil
}

// Current returns the name of the animation being played at now.
func (a *Animator) Current(now int64) string {
	if a.current != a.fallback && a.animations[a.current].IsOver(now-a.started) {
		return a.fallback
	}
	return a.current
}

// Frame returns the glyph to draw at now.
func (a *Animator) Frame(now int64) rune {
	name := a.Current(now)
	if name != a.current {
		a.current = name
		a.started = now
	}
	return a.animations[a.current].Frame(now - a.started)
}
