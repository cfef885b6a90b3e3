package lexer

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Diagnostic describes input the scanner did not recognize. Diagnostics
// never stop a scan.
type Diagnostic struct {
	Offset  int    // byte offset of the character
	Char    rune   // the character itself
	Message string // human-readable description
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s", d.Offset, d.Message)
}

// DiagnosticSink receives diagnostics as the scanner produces them.
type DiagnosticSink interface {
	Report(d Diagnostic)
}

type discardSink struct{}

func (discardSink) Report(Diagnostic) {}

// LogSink writes diagnostics to a zerolog logger at warn level.
type LogSink struct {
	Logger zerolog.Logger
}

func (s LogSink) Report(d Diagnostic) {
	s.Logger.Warn().
		Int("offset", d.Offset).
		Str("char", string(d.Char)).
		Str("codepoint", fmt.Sprintf("U+%04X", d.Char)).
		Msg(d.Message)
}

// DiagnosticCollector keeps every reported diagnostic in order.
type DiagnosticCollector struct {
	Diagnostics []Diagnostic
}

func (c *DiagnosticCollector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Len returns the number of diagnostics collected so far.
func (c *DiagnosticCollector) Len() int {
	return len(c.Diagnostics)
}

// Reset drops collected diagnostics, keeping capacity.
func (c *DiagnosticCollector) Reset() {
	c.Diagnostics = c.Diagnostics[:0]
}

func unknownCharacter(offset int, ch rune) Diagnostic {
	return Diagnostic{
		Offset:  offset,
		Char:    ch,
		Message: fmt.Sprintf("unknown character %q U+%04X", ch, ch),
	}
}
