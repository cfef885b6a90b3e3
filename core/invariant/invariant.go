// Package invariant provides contract assertions for the scanner.
//
// Assertions guard programming errors only, such as a span that ends before
// it starts or a scan step that made no progress. Malformed C input is never
// a contract violation and must be reported through diagnostics instead.
//
// All functions panic on violation.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
func Postcondition(condition bool, format string, args ...any) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks internal consistency during execution.
//
// Example:
//
//	prev := c.Index()
//	c.Advance()
//	invariant.Invariant(c.Index() > prev, "cursor must advance")
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// Span panics unless [start, end) is a well-formed range inside a buffer of
// length size.
func Span(start, end, size int, name string) {
	if start < 0 || start > end || end > size {
		fail("POSTCONDITION", "%s span [%d, %d) is not within [0, %d)", name, start, end, size)
	}
}

// Progress panics unless after is strictly greater than before.
func Progress(before, after int, name string) {
	if after <= before {
		fail("INVARIANT", "%s must advance: offset %d -> %d", name, before, after)
	}
}

func fail(kind, format string, args ...any) {
	pc := make([]uintptr, 8)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := kind + " VIOLATION: " + fmt.Sprintf(format, args...)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
