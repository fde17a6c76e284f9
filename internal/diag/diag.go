// Package diag is the single structured parse-failure type shared by the
// lexer and parser. Every failure is fatal: there is no recovery, so one
// value carries everything a caller needs (message, offset, line, column,
// and an optional expected-token hint). Grounded on the narrow
// addError/addRangeError-then-panic idiom of esbuild's js_lexer.go, reduced
// from esbuild's async multi-message logger.Log since this module has no
// bundler-style deferred diagnostics to collect — the first error ends the
// parse.
package diag

import (
	"fmt"

	"github.com/google/uuid"
)

// Error is the parse-failure value returned across the public contract in
// pkg/estree. Offset/Line/Column describe where the failure was detected,
// not necessarily the underlying cause.
type Error struct {
	Message  string
	Offset   int
	Line     int
	Column   int
	Expected string

	id uuid.UUID
}

// New constructs a diag.Error at the given position. Called from both the
// lexer and the parser through their respective fail/failAt helpers so
// message formatting stays centralized in one place.
func New(message string, offset, line, column int) *Error {
	return &Error{
		Message: message,
		Offset:  offset,
		Line:    line,
		Column:  column,
		id:      uuid.New(),
	}
}

// NewExpected is New with an attached expected-token hint, used when the
// parser can name exactly what it wanted instead of only what it found.
func NewExpected(message string, offset, line, column int, expected string) *Error {
	e := New(message, offset, line, column)
	e.Expected = expected
	return e
}

// ID is a correlation id minted once per failure, used only to tie a
// printed diagnostic back to its structured log entry in cmd/estreeparse's
// --verbose output; it plays no role in the offset/line/column contract
// tests depend on.
func (e *Error) ID() string { return e.id.String() }

func (e *Error) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%d:%d: %s (expected %s)", e.Line, e.Column, e.Message, e.Expected)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}
