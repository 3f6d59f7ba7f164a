package game

import (
	"github.com/vovakirdan/vizard/internal/replay"
)

// playback walks a recording in time order.
type playback struct {
	events   []replay.Event
	next     int
	duration int64
}

func newPlayback(r *replay.Recording) *playback {
	return &playback{
		events:   r.Events,
		duration: r.Duration(),
	}
}

// setup returns the events that precede the first input at time zero:
// the header and the initial shard pack.
func (p *playback) setup() []replay.Event {
	start := p.next
	for p.next < len(p.events) {
		e := p.events[p.next]
		if _, ok := e.(replay.TextInput); ok || e.At() > 0 {
			break
		}
		p.next++
	}
	return p.events[start:p.next]
}

// due returns the events with a timestamp up to now and advances past them.
func (p *playback) due(now int64) []replay.Event {
	start := p.next
	for p.next < len(p.events) && p.events[p.next].At() <= now {
		p.next++
	}
	return p.events[start:p.next]
}

// done reports whether every event was played and the recording's last
// moment has passed.
func (p *playback) done(now int64) bool {
	return p.next >= len(p.events) && now >= p.duration
}

// progress returns the played fraction of the recording in [0, 1].
func (p *playback) progress(now int64) float64 {
	if p.duration <= 0 {
		return 1
	}
	return min(1, float64(now)/float64(p.duration))
}
