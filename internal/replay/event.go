// Package replay records a play session as a line oriented text log and
// reads it back.
//
// Each line holds one event, identified by its first character:
//
//	V <ms> <version>   session header, always first
//	I <ms> <text>      raw text typed during one tick
//	S <ms> <x> <y>     a shard spawn
//
// Times are milliseconds relative to the start of the recording.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/vizard/internal/core"
)

// Version is written into the header of every new recording.
const Version = "vizard-0.1.0"

var (
	// ErrUnsupportedEventKind is returned for lines starting with an unknown
	// character.
	ErrUnsupportedEventKind = errors.New("unsupported event kind")
	// ErrMalformedEventLine is returned for lines with the wrong number of
	// fields or non-integer values.
	ErrMalformedEventLine = errors.New("malformed event line")
)

// Event is a recorded event: VersionInfo, TextInput or ShardSpawn.
type Event interface {
	// At returns the event time in milliseconds since recording start.
	At() int64
	// String returns the serialized line, without a line terminator.
	String() string
	isEvent()
}

// VersionInfo is the session header.
type VersionInfo struct {
	Millis  int64
	Version string
}

// TextInput holds the raw text typed during one tick.
type TextInput struct {
	Millis int64
	Text   string
}

// ShardSpawn records where a shard appeared.
type ShardSpawn struct {
	Millis   int64
	Position core.Position
}

func (VersionInfo) isEvent() {}
func (TextInput) isEvent()   {}
func (ShardSpawn) isEvent()  {}

func (e VersionInfo) At() int64 { return e.Millis }
func (e TextInput) At() int64   { return e.Millis }
func (e ShardSpawn) At() int64  { return e.Millis }

func (e VersionInfo) String() string {
	return fmt.Sprintf("V %d %s", e.Millis, e.Version)
}

// String omits the separator after the time when Text is empty.
func (e TextInput) String() string {
	if e.Text == "" {
		return fmt.Sprintf("I %d", e.Millis)
	}
	return fmt.Sprintf("I %d %s", e.Millis, e.Text)
}

func (e ShardSpawn) String() string {
	return fmt.Sprintf("S %d %d %d", e.Millis, e.Position.X, e.Position.Y)
}
