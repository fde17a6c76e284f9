package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/lexer"
)

func TestKeywordsAndIdentsAreDistinguished(t *testing.T) {
	l := lexer.New("for x")
	require.Equal(t, lexer.For, l.Token.Kind)
	l.Next(lexer.GoalDefault)
	require.Equal(t, lexer.Ident, l.Token.Kind)
	require.Equal(t, "x", l.Token.IdentifierName)
}

func TestContextualKeywordsLexAsIdent(t *testing.T) {
	for _, src := range []string{"yield", "await", "async", "let", "of", "from", "static"} {
		l := lexer.New(src)
		require.Equal(t, lexer.Ident, l.Token.Kind, "expected %q to lex as Ident", src)
		require.Equal(t, src, l.Token.IdentifierName)
	}
}

func TestRegexGoalScansPatternAndFlags(t *testing.T) {
	l := lexer.New("x=/ab+c/gi")
	require.Equal(t, lexer.Ident, l.Token.Kind) // "x"
	l.Next(lexer.GoalDefault)
	require.Equal(t, lexer.Eq, l.Token.Kind) // "="
	l.Next(lexer.GoalRegExp)
	require.Equal(t, lexer.RegExpLiteral, l.Token.Kind)
	require.Equal(t, "ab+c", l.Token.RegexPattern)
	require.Equal(t, "gi", l.Token.RegexFlags)
}

func TestDivisionGoalOnSlash(t *testing.T) {
	l := lexer.New("a / b")
	require.Equal(t, lexer.Ident, l.Token.Kind)
	l.Next(lexer.GoalDefault)
	require.Equal(t, lexer.Slash, l.Token.Kind)
}

func TestNumericLiteralWithSeparators(t *testing.T) {
	l := lexer.New("1_000_000")
	require.Equal(t, lexer.NumericLiteral, l.Token.Kind)
	require.Equal(t, float64(1000000), l.Token.NumberValue)
}

func TestBigIntLiteral(t *testing.T) {
	l := lexer.New("123n")
	require.Equal(t, lexer.BigIntLiteral, l.Token.Kind)
	require.Equal(t, "123", l.Token.BigIntDigits)
}

func TestPrivateIdentifier(t *testing.T) {
	l := lexer.New("#foo")
	require.Equal(t, lexer.PrivateIdent, l.Token.Kind)
	require.Equal(t, "foo", l.Token.IdentifierName)
}

func TestTemplateContinuation(t *testing.T) {
	l := lexer.New("`a${1}b`")
	require.Equal(t, lexer.TemplateHead, l.Token.Kind)
	require.False(t, l.Token.Tail)

	l.Next(lexer.GoalDefault) // "1"
	require.Equal(t, lexer.NumericLiteral, l.Token.Kind)

	l.Next(lexer.GoalDefault) // "}"
	require.Equal(t, lexer.RBrace, l.Token.Kind)

	l.ContinueTemplate()
	require.Equal(t, lexer.TemplateTail, l.Token.Kind)
	require.True(t, l.Token.Tail)
}

func TestCheckpointRestoresPositionAndToken(t *testing.T) {
	l := lexer.New("foo bar")
	mark := l.Mark()

	l.Next(lexer.GoalDefault)
	require.Equal(t, "bar", l.Token.IdentifierName)

	l.Restore(mark)
	require.Equal(t, "foo", l.Token.IdentifierName)

	// Scanning forward again from the restored position must reproduce the
	// same token stream, proving the underlying cursor was actually rewound
	// and not just the Token field.
	l.Next(lexer.GoalDefault)
	require.Equal(t, "bar", l.Token.IdentifierName)
}

func TestASIPrecedingLineBreakFlag(t *testing.T) {
	l := lexer.New("a\nb")
	require.False(t, l.Token.PrecedingLineBreak)
	l.Next(lexer.GoalDefault)
	require.True(t, l.Token.PrecedingLineBreak)
}
