package game

import (
	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/control"
	"github.com/vovakirdan/vizard/internal/core"
)

// EffectKind identifies a cosmetic effect.
type EffectKind string

const (
	EffectDashLeft     EffectKind = "dash-left"
	EffectDashRight    EffectKind = "dash-right"
	EffectAscent       EffectKind = "ascent"
	EffectDescent      EffectKind = "descent"
	EffectBlinkIn      EffectKind = "blink-in"
	EffectBlinkOut     EffectKind = "blink-out"
	EffectCollect      EffectKind = "collect"
	EffectPointerNorth EffectKind = "pointer-north"
	EffectPointerSouth EffectKind = "pointer-south"
)

// Effect is a short animation drawn over a tile. It has no influence on the
// simulation.
type Effect struct {
	Kind     EffectKind    `json:"kind"`
	Position core.Position `json:"position"`
	Started  int64         `json:"started_ms"`

	anim Animation
}

// Glyph returns the glyph to draw at now.
func (e Effect) Glyph(now int64) rune {
	return e.anim.Frame(now - e.Started)
}

// Expired reports whether the effect animation is over at now.
func (e Effect) Expired(now int64) bool {
	return e.anim.IsOver(now - e.Started)
}

var effectFrames = map[EffectKind][]rune{
	EffectDashLeft:     []rune("≡=-·"),
	EffectDashRight:    []rune("≡=-·"),
	EffectAscent:       []rune("^'·"),
	EffectDescent:      []rune("v,·"),
	EffectBlinkIn:      []rune("·o*"),
	EffectBlinkOut:     []rune("*o·"),
	EffectCollect:      []rune("✦+·"),
	EffectPointerNorth: []rune("▲△▲△▲"),
	EffectPointerSouth: []rune("▼▽▼▽▼"),
}

// newEffect creates an effect that lasts roughly durationMs milliseconds.
func newEffect(kind EffectKind, p core.Position, now int64, durationMs int) Effect {
	frames := effectFrames[kind]
	speed := int64(durationMs) / int64(len(frames))
	if speed < 1 {
		speed = 1
	}
	return Effect{
		Kind:     kind,
		Position: p,
		Started:  now,
		anim:     Animation{Frames: frames, Speed: speed},
	}
}

// effectsFor returns the effects caused by a dispatched event. Dashes leave
// a trail at the previous position, vertical moves mark the landing tile
// and blinks mark both ends.
func effectsFor(out control.Outcome, now int64, cfg config.EffectsConfig) []Effect {
	prev := out.Previous.Position
	cur := out.Current.Position

	switch out.Effect {
	case control.EffectDashLeft:
		return []Effect{newEffect(EffectDashLeft, prev, now, cfg.DashMs)}
	case control.EffectDashRight:
		return []Effect{newEffect(EffectDashRight, prev, now, cfg.DashMs)}
	case control.EffectAscent:
		return []Effect{newEffect(EffectAscent, cur, now, cfg.DashMs)}
	case control.EffectDescent:
		return []Effect{newEffect(EffectDescent, cur, now, cfg.DashMs)}
	case control.EffectBlink:
		return []Effect{
			newEffect(EffectBlinkIn, cur, now, cfg.BlinkMs),
			newEffect(EffectBlinkOut, prev, now, cfg.BlinkMs),
		}
	default:
		return nil
	}
}

// pruneEffects drops expired effects in place.
func pruneEffects(effects []Effect, now int64) []Effect {
	live := effects[:0]
	for _, e := range effects {
		if !e.Expired(now) {
			live = append(live, e)
		}
	}
	return live
}
