package replay

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/vizard/internal/core"
)

// Recording is an ordered list of events. A Recording is not safe for
// concurrent use; it belongs to the session that writes it.
type Recording struct {
	start  int64
	Events []Event
}

// NewRecording returns an empty recording. Call Start before recording.
func NewRecording() *Recording {
	return &Recording{}
}

// Start resets the recording and writes the version header. now is the
// session clock in milliseconds; later events are stored relative to it.
func (r *Recording) Start(now int64) {
	r.start = now
	r.Events = []Event{VersionInfo{Millis: 0, Version: Version}}
}

// RecordTextInput stores text typed at now. Empty text is not stored.
func (r *Recording) RecordTextInput(now int64, text string) {
	if text == "" {
		return
	}
	r.Events = append(r.Events, TextInput{Millis: now - r.start, Text: text})
}

// RecordShardSpawn stores a shard spawn at now.
func (r *Recording) RecordShardSpawn(now int64, p core.Position) {
	r.Events = append(r.Events, ShardSpawn{Millis: now - r.start, Position: p})
}

// Header returns the version header, if the recording has one.
func (r *Recording) Header() (VersionInfo, bool) {
	if len(r.Events) == 0 {
		return VersionInfo{}, false
	}
	v, ok := r.Events[0].(VersionInfo)
	return v, ok
}

// Duration returns the time of the last event.
func (r *Recording) Duration() int64 {
	if len(r.Events) == 0 {
		return 0
	}
	return r.Events[len(r.Events)-1].At()
}

// Serialize returns one line per event joined by "\n", without a trailing
// line terminator.
func (r *Recording) Serialize() string {
	lines := make([]string, len(r.Events))
	for i, e := range r.Events {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

// SaveFile writes the serialized recording to path.
func (r *Recording) SaveFile(path string) error {
	if err := os.WriteFile(path, []byte(r.Serialize()+"\n"), 0o644); err != nil {
		return fmt.Errorf("replay: save %s: %w", path, err)
	}
	return nil
}

// LoadFile reads and parses a recording from path.
func LoadFile(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse reads a serialized recording. Empty lines are skipped.
func Parse(text string) (*Recording, error) {
	r := NewRecording()
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		e, err := parseEvent(line)
		if err != nil {
			return nil, fmt.Errorf("replay: line %d: %w", i+1, err)
		}
		r.Events = append(r.Events, e)
	}
	return r, nil
}

func parseEvent(line string) (Event, error) {
	switch line[0] {
	case 'V':
		fields := strings.Fields(line)
		if fields[0] != "V" || len(fields) != 3 {
			return nil, malformed(line)
		}
		ms, err := parseInt(fields[1], line)
		if err != nil {
			return nil, err
		}
		return VersionInfo{Millis: ms, Version: fields[2]}, nil

	case 'I':
		// Text may contain spaces, so only the first two separators count.
		fields := strings.SplitN(line, " ", 3)
		if fields[0] != "I" || len(fields) < 2 {
			return nil, malformed(line)
		}
		ms, err := parseInt(fields[1], line)
		if err != nil {
			return nil, err
		}
		e := TextInput{Millis: ms}
		if len(fields) == 3 {
			e.Text = fields[2]
		}
		return e, nil

	case 'S':
		fields := strings.Fields(line)
		if fields[0] != "S" || len(fields) != 4 {
			return nil, malformed(line)
		}
		var nums [3]int64
		for i := range nums {
			n, err := parseInt(fields[i+1], line)
			if err != nil {
				return nil, err
			}
			nums[i] = n
		}
		return ShardSpawn{Millis: nums[0], Position: core.Pos(int(nums[1]), int(nums[2]))}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEventKind, line[0])
	}
}

func parseInt(field, line string) (int64, error) {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedEventLine, line, err)
	}
	return n, nil
}

func malformed(line string) error {
	return fmt.Errorf("%w: %q", ErrMalformedEventLine, line)
}
