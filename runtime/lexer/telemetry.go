package lexer

import (
	"time"

	"github.com/opal-lang/clex/core/token"
)

// TokenTelemetry holds per-kind telemetry (production-safe).
type TokenTelemetry struct {
	Kind      token.PPKind
	Count     int
	TotalTime time.Duration
	AvgTime   time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// DebugEvent records one dispatch step (development only).
type DebugEvent struct {
	Timestamp time.Time
	Event     string // "dispatch", "backtrack", "emit"
	Offset    int    // cursor index when the event was recorded
	Context   string // rule name, character, token
}

// GetTokenTelemetry returns a copy of the per-kind telemetry, or nil when
// telemetry is off.
func (l *Lexer) GetTokenTelemetry() map[token.PPKind]*TokenTelemetry {
	if l.telemetryMode == TelemetryOff || l.tokenTelemetry == nil {
		return nil
	}

	result := make(map[token.PPKind]*TokenTelemetry, len(l.tokenTelemetry))
	for k, v := range l.tokenTelemetry {
		telemetryCopy := *v
		result[k] = &telemetryCopy
	}
	return result
}

// GetDebugEvents returns a copy of the recorded debug events, or nil when
// debug tracing is off.
func (l *Lexer) GetDebugEvents() []DebugEvent {
	if l.debugLevel == DebugOff || l.debugEvents == nil {
		return nil
	}

	result := make([]DebugEvent, len(l.debugEvents))
	copy(result, l.debugEvents)
	return result
}

func (l *Lexer) recordTokenTelemetry(kind token.PPKind, elapsed time.Duration) {
	telemetry, exists := l.tokenTelemetry[kind]
	if !exists {
		telemetry = &TokenTelemetry{
			Kind:    kind,
			MinTime: elapsed,
			MaxTime: elapsed,
		}
		l.tokenTelemetry[kind] = telemetry
	}

	telemetry.Count++

	if l.telemetryMode >= TelemetryTiming {
		telemetry.TotalTime += elapsed
		telemetry.AvgTime = telemetry.TotalTime / time.Duration(telemetry.Count)

		if elapsed < telemetry.MinTime || telemetry.Count == 1 {
			telemetry.MinTime = elapsed
		}
		if elapsed > telemetry.MaxTime || telemetry.Count == 1 {
			telemetry.MaxTime = elapsed
		}
	}
}

func (l *Lexer) recordDebugEvent(event, context string) {
	if l.debugLevel == DebugOff || l.debugEvents == nil {
		return
	}

	l.debugEvents = append(l.debugEvents, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Offset:    l.cursor.Index(),
		Context:   context,
	})
}
