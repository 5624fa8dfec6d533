package log

import "time"

// Level classifies the severity of a diagnostic event.
type Level uint8

const (
	// LevelDebug is for verbose parsing detail.
	LevelDebug Level = 0
	// LevelInfo is for normal progress events.
	LevelInfo Level = 1
	// LevelWarn is for accepted ambiguities (duplicate state labels,
	// unexpected but tolerated table content).
	LevelWarn Level = 2
	// LevelError is for failures surfaced to the caller.
	LevelError Level = 3
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Event is one diagnostic event from table parsing or a recording tool.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time

	// Level is the severity.
	Level Level

	// Channel is the channel name the event concerns, when known.
	Channel string

	// Message is the human-readable description.
	Message string

	// Code is the raw state code the event concerns, when relevant.
	Code *int64

	// Label is the state label the event concerns, when relevant.
	Label string
}
