package lexer

import "github.com/rs/zerolog"

// LexerOpt configures a Lexer.
type LexerOpt func(*LexerConfig)

// TelemetryMode controls telemetry collection.
type TelemetryMode int

const (
	TelemetryOff    TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                       // Token counts only
	TelemetryTiming                      // Token counts + timing per kind
)

// DebugLevel controls debug tracing (development only).
type DebugLevel int

const (
	DebugOff   DebugLevel = iota // No debug info (default)
	DebugPaths                   // Dispatch rule tracing
)

// LexerConfig holds lexer configuration.
type LexerConfig struct {
	telemetry   TelemetryMode
	debug       DebugLevel
	diagnostics DiagnosticSink
}

// WithDiagnostics sends unrecognized-character diagnostics to sink.
func WithDiagnostics(sink DiagnosticSink) LexerOpt {
	return func(c *LexerConfig) {
		c.diagnostics = sink
	}
}

// WithLogger sends diagnostics to logger at warn level.
func WithLogger(logger zerolog.Logger) LexerOpt {
	return WithDiagnostics(LogSink{Logger: logger})
}

// WithTelemetryBasic enables basic telemetry (token counts only).
func WithTelemetryBasic() LexerOpt {
	return func(c *LexerConfig) {
		c.telemetry = TelemetryBasic
	}
}

// WithTelemetryTiming enables timing telemetry (counts + timing per kind).
func WithTelemetryTiming() LexerOpt {
	return func(c *LexerConfig) {
		c.telemetry = TelemetryTiming
	}
}

// WithDebugPaths enables dispatch tracing.
func WithDebugPaths() LexerOpt {
	return func(c *LexerConfig) {
		c.debug = DebugPaths
	}
}
