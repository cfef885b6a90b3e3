package invariant_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opal-lang/clex/core/invariant"
)

// panicMessage runs fn and returns the recovered panic value as a string.
func panicMessage(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg = fmt.Sprintf("%v", r)
	}()
	fn()
	return ""
}

func TestPassingChecksDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		invariant.Precondition(true, "ok")
		invariant.Postcondition(1+1 == 2, "ok")
		invariant.Invariant(len("abc") == 3, "ok")
		invariant.Span(0, 0, 0, "empty")
		invariant.Span(2, 5, 5, "tail")
		invariant.Progress(3, 4, "cursor")
	})
}

func TestViolationKinds(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		kind string
		text string
	}{
		{"precondition", func() { invariant.Precondition(false, "src must be %s", "utf8") }, "PRECONDITION VIOLATION", "src must be utf8"},
		{"postcondition", func() { invariant.Postcondition(false, "token emitted") }, "POSTCONDITION VIOLATION", "token emitted"},
		{"invariant", func() { invariant.Invariant(false, "slot state") }, "INVARIANT VIOLATION", "slot state"},
		{"span reversed", func() { invariant.Span(4, 2, 10, "token") }, "POSTCONDITION VIOLATION", "token span [4, 2)"},
		{"span overflow", func() { invariant.Span(0, 11, 10, "token") }, "POSTCONDITION VIOLATION", "not within [0, 10)"},
		{"span negative", func() { invariant.Span(-1, 0, 10, "token") }, "POSTCONDITION VIOLATION", "token span [-1, 0)"},
		{"no progress", func() { invariant.Progress(7, 7, "scan") }, "INVARIANT VIOLATION", "scan must advance: offset 7 -> 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := panicMessage(t, tt.fn)
			assert.Contains(t, msg, tt.kind)
			assert.Contains(t, msg, tt.text)
			assert.True(t, strings.Contains(msg, "\n  at "), "expected caller location in %q", msg)
		})
	}
}
