package control

import (
	"github.com/vovakirdan/vizard/internal/action"
	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/core"
)

// Effect is the cosmetic effect to play after a successful event.
type Effect int

const (
	EffectNone Effect = iota
	EffectDashLeft
	EffectDashRight
	EffectAscent
	EffectDescent
	EffectBlink
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectDashLeft:
		return "dash-left"
	case EffectDashRight:
		return "dash-right"
	case EffectAscent:
		return "ascent"
	case EffectDescent:
		return "descent"
	case EffectBlink:
		return "blink"
	default:
		return "none"
	}
}

// Handler turns an event into an action request and names the effect to
// play when the request succeeds.
type Handler struct {
	Request action.Request
	Effect  Effect
}

// Table maps event names to handlers. Build one per session with NewTable.
type Table map[string]Handler

// NewTable builds the dispatch table. view sets the distance of full and
// half vertical blinks.
func NewTable(view config.ViewConfig) Table {
	full := view.HeightInTiles
	half := full / 2

	blink := func(r action.Request) Handler {
		return Handler{Request: r, Effect: EffectBlink}
	}

	return Table{
		config.EventDashLeft:  {action.HorizontalMove{Steps: -1}, EffectDashLeft},
		config.EventDashRight: {action.HorizontalMove{Steps: 1}, EffectDashRight},
		config.EventDashUp:    {action.VerticalMove{Steps: -1}, EffectAscent},
		config.EventDashDown:  {action.VerticalMove{Steps: 1}, EffectDescent},

		config.EventBlinkToTheEndOfNextVegetation:            blink(action.GrassEndJump{Direction: core.East}),
		config.EventBlinkToTheEndOfNextVegetationChunk:       blink(action.GrassEndJump{Direction: core.East, IgnoreStones: true}),
		config.EventBlinkToTheStartOfNextVegetation:          blink(action.GrassStartJump{Direction: core.East}),
		config.EventBlinkToTheStartOfNextVegetationChunk:     blink(action.GrassStartJump{Direction: core.East, IgnoreStones: true}),
		config.EventBlinkToTheStartOfPreviousVegetation:      blink(action.GrassEndJump{Direction: core.West}),
		config.EventBlinkToTheStartOfPreviousVegetationChunk: blink(action.GrassEndJump{Direction: core.West, IgnoreStones: true}),

		config.EventBlinkToTheEndOfContour:                blink(action.ContourJump{Direction: core.East}),
		config.EventBlinkToTheStartOfContour:              blink(action.ContourJump{Direction: core.West}),
		config.EventBlinkToTheStartOfFirstVegetationChunk: blink(action.ContourJump{Direction: core.West, ToVegetation: true}),

		config.EventBlinkToTheTop:    blink(action.VerticalJump{Direction: core.North, Steps: -1}),
		config.EventBlinkUp:          blink(action.VerticalJump{Direction: core.North, Steps: full}),
		config.EventBlinkUpHalf:      blink(action.VerticalJump{Direction: core.North, Steps: half}),
		config.EventBlinkDown:        blink(action.VerticalJump{Direction: core.South, Steps: full}),
		config.EventBlinkDownHalf:    blink(action.VerticalJump{Direction: core.South, Steps: half}),
		config.EventBlinkToTheBottom: blink(action.VerticalJump{Direction: core.South, Steps: -1}),
	}
}
