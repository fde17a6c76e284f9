// Package logger renders a single diagnostic against its source line,
// clang-style. This module has exactly one fatal diag.Error per parse, so
// there is no async collector, message limit, or warning/error summary
// line — just Source, Loc/Range, terminal-width detection, and the
// single-line source-context renderer with its caret marker and
// line-truncation logic.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/jimmyhmiller/estree-go/internal/diag"
)

const defaultTerminalWidth = 80

// Source is the file a diagnostic refers to: its pretty path (as shown to
// the user) plus its full contents (needed to recover the offending line).
type Source struct {
	PrettyPath string
	Contents   string
}

// Loc is a 0-based byte offset into a Source's Contents.
type Loc struct {
	Start int
}

// Range is a Loc plus a byte length, used to underline more than a single
// character (e.g. the full span of an unexpected token).
type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int { return r.Loc.Start + r.Len }

// TerminalInfo describes what the output stream can do, used to decide
// whether to emit color escapes and how wide to render the source line.
type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
	Height          int
}

// UseColor is a three-way color policy: follow the terminal, force on, or
// force off.
type UseColor uint8

const (
	ColorIfTerminal UseColor = iota
	ColorNever
	ColorAlways
)

func hasNoColorEnvironmentVariable() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

// RangeFromDiag builds a Range covering the single offset diag.Error
// reports. The parser never attaches a length to its failures (every
// failure is reported at the point it was detected, not over a span), so
// the marker is always one column wide.
func RangeFromDiag(e *diag.Error) Range {
	return Range{Loc: Loc{Start: e.Offset}}
}

// Render formats e against source as a single clang-style diagnostic:
//
//	path/to/file.js:3:12: unexpected token (expected ";")
//	    3 │ let x = 1 2
//	      ╵            ^
//
// useColor selects fatih/color's escape sequences when the destination
// supports them; info.Width clips the source line to fit the terminal.
func Render(source *Source, e *diag.Error, info TerminalInfo, useColor UseColor) string {
	colorOn := shouldUseColor(useColor, info)

	r := RangeFromDiag(e)
	lineText, lineStart, lineEnd := lineAround(source.Contents, r.Loc.Start)
	column := r.Loc.Start - lineStart

	header := fmt.Sprintf("%s:%d:%d: %s", source.PrettyPath, e.Line, e.Column, e.Message)
	if e.Expected != "" {
		header += fmt.Sprintf(" (expected %s)", e.Expected)
	}
	if colorOn {
		header = color.New(color.Bold).Sprint(header)
	}

	lineNumber := fmt.Sprintf("%d", e.Line)
	margin := strings.Repeat(" ", len(lineNumber))

	width := info.Width
	if width < 1 {
		width = defaultTerminalWidth
	}
	clipped, clippedColumn := clipToWidth(lineText, column, width-len(lineNumber)-7)

	marker := strings.Repeat(" ", estimateWidth(clipped[:clippedColumn])) + "^"
	if colorOn {
		marker = color.GreenString(marker)
	}

	_ = lineEnd
	return fmt.Sprintf("%s\n    %s │ %s\n    %s ╵ %s\n", header, lineNumber, clipped, margin, marker)
}

func shouldUseColor(useColor UseColor, info TerminalInfo) bool {
	switch useColor {
	case ColorAlways:
		return !hasNoColorEnvironmentVariable()
	case ColorNever:
		return false
	default:
		return info.UseColorEscapes && !hasNoColorEnvironmentVariable()
	}
}

// lineAround returns the full line containing byte offset, and the byte
// offsets of its start and end within contents.
func lineAround(contents string, offset int) (line string, start, end int) {
	if offset > len(contents) {
		offset = len(contents)
	}
	start = strings.LastIndexByte(contents[:offset], '\n') + 1
	end = len(contents)
	if i := strings.IndexByte(contents[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	return contents[start:end], start, end
}

// clipToWidth truncates line to width columns, keeping the marker column
// visible and centered, adding "..." where content was cut.
func clipToWidth(line string, column, width int) (string, int) {
	if width < 1 {
		width = 1
	}
	if estimateWidth(line) <= width {
		return line, column
	}

	sliceStart := column - width/2
	if sliceStart < 0 {
		sliceStart = 0
	}
	if sliceStart > len(line)-width {
		sliceStart = len(line) - width
	}
	if sliceStart < 0 {
		sliceStart = 0
	}
	sliceEnd := sliceStart + width
	if sliceEnd > len(line) {
		sliceEnd = len(line)
	}

	sliced := line[sliceStart:sliceEnd]
	clippedColumn := column - sliceStart
	if clippedColumn < 0 {
		clippedColumn = 0
	}

	if sliceStart > 0 && len(sliced) > 3 {
		sliced = "..." + sliced[3:]
	}
	if sliceEnd < len(line) && len(sliced) > 3 {
		sliced = sliced[:len(sliced)-3] + "..."
	}
	return sliced, clippedColumn
}

// estimateWidth assumes one column per code point, which is wrong for
// wide/combining characters but close enough for clipping a source line.
func estimateWidth(text string) int {
	width := 0
	for _, c := range text {
		if c != 0xFEFF {
			width++
		}
	}
	return width
}
