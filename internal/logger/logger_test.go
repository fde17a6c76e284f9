package logger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/diag"
	"github.com/jimmyhmiller/estree-go/internal/logger"
)

func TestRenderPointsAtOffendingColumn(t *testing.T) {
	source := &logger.Source{PrettyPath: "in.js", Contents: "let x = 1 2;\n"}
	e := diag.NewExpected("unexpected token", 10, 1, 10, "\";\"")

	out := logger.Render(source, e, logger.TerminalInfo{}, logger.ColorNever)

	require.Contains(t, out, "in.js:1:10: unexpected token (expected \";\")")
	require.Contains(t, out, "let x = 1 2;")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4) // header, source line, marker line, trailing blank
	markerLine := lines[2]
	require.True(t, strings.HasSuffix(markerLine, "^"))
}

func TestRenderClipsLongLines(t *testing.T) {
	long := strings.Repeat("x", 200) + "!"
	source := &logger.Source{PrettyPath: "in.js", Contents: long}
	e := diag.New("bad token", 200, 1, 200)

	out := logger.Render(source, e, logger.TerminalInfo{Width: 40}, logger.ColorNever)

	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len(line), 60)
	}
	require.Contains(t, out, "...")
}

func TestColorNeverOmitsEscapes(t *testing.T) {
	source := &logger.Source{PrettyPath: "in.js", Contents: "let x;\n"}
	e := diag.New("oops", 0, 1, 0)

	out := logger.Render(source, e, logger.TerminalInfo{UseColorEscapes: true}, logger.ColorNever)

	require.NotContains(t, out, "\x1b[")
}
