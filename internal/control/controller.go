// Package control turns raw key text into player actions.
//
// A Controller decodes the text typed during a tick into key sequences,
// looks them up in the key bindings and dispatches the bound event through
// a Table. Invalid actions are logged and leave the player where it is.
package control

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vizard/internal/action"
	"github.com/vovakirdan/vizard/internal/config"
)

// ErrUnknownEvent is returned by Dispatch for events missing from the table.
var ErrUnknownEvent = errors.New("unknown event")

// Outcome describes one successfully dispatched event.
type Outcome struct {
	Event    string
	Effect   Effect
	Previous action.State
	Current  action.State
}

// Controller decodes key text and applies the bound actions. It keeps the
// pending buffer key between ticks and is not safe for concurrent use.
type Controller struct {
	table    Table
	keys     map[string]string
	settings config.Settings
	buffer   string
	logger   *log.Logger
}

// NewController creates a controller for the given settings. A nil logger
// discards output.
func NewController(settings config.Settings, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		table:    NewTable(settings.View),
		keys:     settings.KeyEventMap(),
		settings: settings,
		logger:   logger,
	}
}

// Buffer returns the pending buffer key, if any.
func (c *Controller) Buffer() string {
	return c.buffer
}

// Reset drops the pending buffer key.
func (c *Controller) Reset() {
	c.buffer = ""
}

// HandleInput decodes the text typed during one tick and applies every
// bound event in order. It returns the final state and the events that
// succeeded.
//
// A buffer key typed while the buffer is empty is stored and the rest of
// the text is dropped; the next key is combined with it.
func (c *Controller) HandleInput(g action.Grid, s action.State, text string) (action.State, []Outcome) {
	var outcomes []Outcome

	for _, r := range text {
		key := string(r)

		if c.buffer != "" {
			key = c.buffer + key
			c.buffer = ""
		} else if c.settings.IsBufferKey(r) {
			c.buffer = key
			c.logger.Debug("buffer", "key", fmt.Sprintf("%q", key))
			return s, outcomes
		}

		event, ok := c.keys[key]
		if !ok {
			c.logger.Warn("unknown input", "text", fmt.Sprintf("%q", key))
			continue
		}

		next, out, err := c.Dispatch(g, s, event)
		if err != nil {
			c.logger.Debug("invalid action", "event", event, "error", err)
			continue
		}
		s = next
		outcomes = append(outcomes, out)
	}

	return s, outcomes
}

// Dispatch applies a single event. On error the input state is returned.
func (c *Controller) Dispatch(g action.Grid, s action.State, event string) (action.State, Outcome, error) {
	h, ok := c.table[event]
	if !ok {
		return s, Outcome{}, fmt.Errorf("control: %w: %q", ErrUnknownEvent, event)
	}

	next, err := action.Apply(g, s, h.Request)
	if err != nil {
		return s, Outcome{}, fmt.Errorf("control: %s: %w", h.Request.Kind(), err)
	}

	return next, Outcome{
		Event:    event,
		Effect:   h.Effect,
		Previous: s,
		Current:  next,
	}, nil
}
