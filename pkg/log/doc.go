// Package log provides structured diagnostic logging for table parsing
// and recording tools.
//
// The core parameter types never log; diagnostics come from the layers
// around them (state-table parsing, snapshot codecs, CLI tools).
// Applications configure logging by providing a Logger implementation:
//
//	// Development: route diagnostics to the console via slog.
//	parser.Logger = log.NewSlogAdapter(slog.Default())
//
//	// Disabled (the default): discard everything.
//	parser.Logger = log.NoopLogger{}
package log
