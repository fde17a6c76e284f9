// Package lexer turns source text into a lazy stream of tokens with
// attached spans. It is context-sensitive: the parser requests a goal
// (division vs. regular expression) at every token boundary, and drives
// re-entry into template literals after a "${...}" substitution closes.
// Grounded on the token/goal design of esbuild's internal/js_lexer package,
// rebuilt to emit the token shapes internal/parser needs for ESTree output
// rather than esbuild's own IR.
package lexer

import "github.com/jimmyhmiller/estree-go/internal/ast"

// Kind is the tagged variant of a token.
type Kind int

const (
	EOF Kind = iota
	Illegal

	Ident // includes contextual keywords; the parser promotes these
	PrivateIdent
	NumericLiteral
	BigIntLiteral
	StringLiteral
	RegExpLiteral
	NoSubstitutionTemplate
	TemplateHead
	TemplateMiddle
	TemplateTail

	// Punctuators
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Dot
	Ellipsis
	Semicolon
	Comma
	LT
	GT
	LE
	GE
	EqEq
	NotEq
	EqEqEq
	NotEqEq
	Plus
	Minus
	Star
	Slash
	Percent
	StarStar
	PlusPlus
	MinusMinus
	LtLt
	GtGt
	GtGtGt
	Amp
	Pipe
	Caret
	Not
	Tilde
	AmpAmp
	PipePipe
	QuestionQuestion
	Question
	Colon
	Eq
	PlusEq
	MinusEq
	StarEq
	SlashEq
	PercentEq
	StarStarEq
	LtLtEq
	GtGtEq
	GtGtGtEq
	AmpEq
	PipeEq
	CaretEq
	AmpAmpEq
	PipePipeEq
	QuestionQuestionEq
	Arrow
	QuestionDot
	At

	// Reserved words (unconditional keywords)
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Enum
	Export
	Extends
	False
	Finally
	For
	Function
	If
	Import
	In
	Instanceof
	New
	Null
	Return
	Super
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	While
	With
)

// Goal selects how an ambiguous "/" at the start of a token is scanned.
type Goal int

const (
	GoalDefault Goal = iota // "/" begins division
	GoalRegExp              // "/" begins a RegExpLiteral
)

// Token is a single lexical unit plus everything the parser needs about its
// surrounding trivia to implement ASI and literal decoding.
type Token struct {
	Kind Kind

	StartOffset, EndOffset int
	StartLine, StartColumn int
	EndLine, EndColumn     int

	// PrecedingLineBreak is set when a line terminator appeared anywhere in
	// the whitespace/comments skipped before this token. ASI and several
	// no-line-terminator-here restrictions depend on it.
	PrecedingLineBreak bool

	// Raw is the exact source text of the token.
	Raw string

	// Identifier payload: decoded name (escapes resolved) plus whether any
	// escape was used (an escaped reserved word is never a keyword).
	IdentifierName    string
	IdentifierEscaped bool

	// Numeric payload.
	NumberValue float64
	BigIntDigits string

	// IsLegacyOctal marks a NumericLiteral spelled with a leading zero
	// followed by a digit (e.g. "0777" or the invalid-digit "089" form):
	// legal in sloppy mode, an early error in strict mode and module goal.
	IsLegacyOctal bool

	// String / template payload.
	StringValue string
	Cooked      string
	CookedValid bool
	Tail        bool // TemplateMiddle/TemplateTail vs TemplateHead/NoSubstitutionTemplate

	// RegExp payload.
	RegexPattern string
	RegexFlags   string
}

// Loc returns the ast.Position pair for this token's span.
func (t Token) Loc() ast.Loc {
	return ast.Loc{
		Start: ast.Position{Line: t.StartLine, Column: t.StartColumn},
		End:   ast.Position{Line: t.EndLine, Column: t.EndColumn},
	}
}

var keywords = map[string]Kind{
	"break": Break, "case": Case, "catch": Catch, "class": Class,
	"const": Const, "continue": Continue, "debugger": Debugger,
	"default": Default, "delete": Delete, "do": Do, "else": Else,
	"enum": Enum, "export": Export, "extends": Extends, "false": False,
	"finally": Finally, "for": For, "function": Function, "if": If,
	"import": Import, "in": In, "instanceof": Instanceof, "new": New,
	"null": Null, "return": Return, "super": Super, "switch": Switch,
	"this": This, "throw": Throw, "true": True, "try": Try,
	"typeof": Typeof, "var": Var, "void": Void, "while": While,
	"with": With,
}

// KeywordKind returns the reserved-word Kind for name, or (Ident, false) if
// name is not a reserved word. Callers must additionally check that the
// identifier was not produced via an escape sequence: an escaped reserved
// word lexes as Ident and can never promote to the keyword token.
func KeywordKind(name string) (Kind, bool) {
	k, ok := keywords[name]
	return k, ok
}

// StrictReservedWords are identifiers that are ordinary identifiers in
// sloppy mode but early errors as binding names in strict mode.
var StrictReservedWords = map[string]bool{
	"implements": true, "interface": true, "let": true, "package": true,
	"private": true, "protected": true, "public": true, "static": true,
	"yield": true,
}

// String renders a human-readable token name for diagnostics.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "token"
}

var kindNames = map[Kind]string{
	EOF: "end of file", LBrace: "\"{\"", RBrace: "\"}\"", LParen: "\"(\"",
	RParen: "\")\"", LBracket: "\"[\"", RBracket: "\"]\"", Dot: "\".\"",
	Ellipsis: "\"...\"", Semicolon: "\";\"", Comma: "\",\"", Colon: "\":\"",
	Arrow: "\"=>\"", Question: "\"?\"", QuestionDot: "\"?.\"", Eq: "\"=\"",
}
