package log

import "log/slog"

// SlogAdapter writes diagnostic events to an slog.Logger. Useful for
// development when you want to see table-parsing events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at the matching level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []any{}
	if event.Channel != "" {
		attrs = append(attrs, slog.String("channel", event.Channel))
	}
	if event.Code != nil {
		attrs = append(attrs, slog.Int64("code", *event.Code))
	}
	if event.Label != "" {
		attrs = append(attrs, slog.String("label", event.Label))
	}

	switch event.Level {
	case LevelDebug:
		a.logger.Debug(event.Message, attrs...)
	case LevelWarn:
		a.logger.Warn(event.Message, attrs...)
	case LevelError:
		a.logger.Error(event.Message, attrs...)
	default:
		a.logger.Info(event.Message, attrs...)
	}
}

var _ Logger = (*SlogAdapter)(nil)
