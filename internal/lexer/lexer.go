package lexer

import (
	"fmt"

	"github.com/jimmyhmiller/estree-go/internal/cursor"
	"github.com/jimmyhmiller/estree-go/internal/diag"
)

// Lexer scans one token at a time from a cursor.Cursor. It is driven by the
// parser: Next(goal) is called once per requested token, with goal telling
// the lexer whether a leading "/" should be read as division or as the
// start of a RegExpLiteral. Grounded on the pull-based, goal-parameterized
// design of esbuild's internal/js_lexer.Lexer, restructured to produce
// lexer.Token values instead of mutating lexer-owned fields consumed
// in-place by the parser.
type Lexer struct {
	cur   *cursor.Cursor
	Token Token
}

// New creates a lexer over src and scans the first token (goal: regular
// expression, since nothing precedes it that a "/" could divide).
// A "#!" hashbang, if present, is only ever recognized here at file start.
func New(src string) *Lexer {
	l := &Lexer{cur: cursor.New(src)}
	l.scanHashbang()
	l.Next(GoalRegExp)
	return l
}

func (l *Lexer) fail(offset, line, column int, format string, args ...any) {
	panic(diag.New(fmt.Sprintf(format, args...), offset, line, column))
}

func (l *Lexer) failAt(format string, args ...any) {
	l.fail(l.cur.Offset(), l.cur.Line(), l.cur.Column(), format, args...)
}

func (l *Lexer) scanHashbang() {
	if l.cur.Current() == '#' && l.cur.Peek(1) == '!' {
		for !l.cur.IsAtEnd() && !isLineTerminatorRune(l.cur.Current()) {
			l.cur.Advance()
		}
	}
}

func isLineTerminatorRune(r rune) bool {
	return cursor.IsLineTerminator(r)
}

// Next scans the next token under the given goal and stores it in l.Token.
func (l *Lexer) Next(goal Goal) {
	precedingLineBreak := l.skipTrivia()

	startOffset := l.cur.Offset()
	startLine, startColumn := l.cur.Line(), l.cur.Column()

	tok := Token{
		StartOffset:        startOffset,
		StartLine:          startLine,
		StartColumn:        startColumn,
		PrecedingLineBreak: precedingLineBreak,
	}

	if l.cur.IsAtEnd() {
		tok.Kind = EOF
		l.finish(&tok)
		return
	}

	c := l.cur.Current()
	switch {
	case c == '"' || c == '\'':
		l.scanString(&tok, c)
	case c == '`':
		l.cur.Advance()
		l.scanTemplatePart(&tok, true)
	case c >= '0' && c <= '9':
		l.scanNumber(&tok)
	case c == '.' && l.cur.Peek(1) >= '0' && l.cur.Peek(1) <= '9':
		l.scanNumber(&tok)
	case c == '/' :
		if goal == GoalRegExp {
			l.scanRegExp(&tok)
		} else {
			l.scanPunctuator(&tok)
		}
	case c == '#':
		l.scanPrivateIdentifier(&tok)
	case IsIdentifierStart(c) || c == '\\':
		l.scanIdentifier(&tok)
	default:
		l.scanPunctuator(&tok)
	}

	l.finish(&tok)
}

func (l *Lexer) finish(tok *Token) {
	tok.EndOffset = l.cur.Offset()
	tok.EndLine, tok.EndColumn = l.cur.Line(), l.cur.Column()
	tok.Raw = l.cur.Slice(tok.StartOffset, tok.EndOffset)
	l.Token = *tok
}

// skipTrivia consumes whitespace and comments, returning whether any line
// terminator was seen along the way (including inside a block comment).
func (l *Lexer) skipTrivia() bool {
	sawLineBreak := false
	for {
		switch c := l.cur.Current(); {
		case c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == 0xFEFF || c == 0xA0:
			l.cur.Advance()
		case isLineTerminatorRune(c):
			sawLineBreak = true
			l.cur.Advance()
		case c == '/' && l.cur.Peek(1) == '/':
			l.cur.Advance()
			l.cur.Advance()
			for !l.cur.IsAtEnd() && !isLineTerminatorRune(l.cur.Current()) {
				l.cur.Advance()
			}
		case c == '/' && l.cur.Peek(1) == '*':
			l.cur.Advance()
			l.cur.Advance()
			closed := false
			for !l.cur.IsAtEnd() {
				if isLineTerminatorRune(l.cur.Current()) {
					sawLineBreak = true
				}
				if l.cur.Current() == '*' && l.cur.Peek(1) == '/' {
					l.cur.Advance()
					l.cur.Advance()
					closed = true
					break
				}
				l.cur.Advance()
			}
			if !closed {
				l.failAt("unterminated block comment")
			}
		case unicodeSpaceSeparator(c):
			l.cur.Advance()
		default:
			return sawLineBreak
		}
	}
}

func unicodeSpaceSeparator(r rune) bool {
	switch r {
	case 0x1680, 0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006,
		0x2007, 0x2008, 0x2009, 0x200A, 0x202F, 0x205F, 0x3000:
		return true
	}
	return false
}

// --- Identifiers ---------------------------------------------------------

func (l *Lexer) scanIdentifier(tok *Token) {
	var raw []rune
	escaped := false

	readEscape := func() rune {
		l.cur.Advance() // consume 'u'
		if l.cur.Current() == '{' {
			l.cur.Advance()
			var v rune
			for l.cur.Current() != '}' {
				d, ok := hexDigit(l.cur.Current())
				if !ok {
					l.failAt("invalid Unicode escape sequence")
				}
				v = v*16 + rune(d)
				l.cur.Advance()
			}
			l.cur.Advance() // consume '}'
			return v
		}
		var v rune
		for i := 0; i < 4; i++ {
			d, ok := hexDigit(l.cur.Current())
			if !ok {
				l.failAt("invalid Unicode escape sequence")
			}
			v = v*16 + rune(d)
			l.cur.Advance()
		}
		return v
	}

	first := true
	for {
		if l.cur.Current() == '\\' && l.cur.Peek(1) == 'u' {
			escaped = true
			l.cur.Advance() // consume '\\'
			r := readEscape()
			if first {
				if !IsIdentifierStart(r) {
					l.failAt("invalid character in identifier escape")
				}
			} else if !IsIdentifierContinue(r) {
				break
			}
			raw = append(raw, r)
		} else {
			r := l.cur.Current()
			ok := first && IsIdentifierStart(r) || !first && IsIdentifierContinue(r)
			if !ok {
				break
			}
			raw = append(raw, r)
			l.cur.Advance()
		}
		first = false
	}

	name := string(raw)
	tok.IdentifierName = name
	tok.IdentifierEscaped = escaped

	if !escaped {
		if kind, ok := KeywordKind(name); ok {
			tok.Kind = kind
			return
		}
	}
	tok.Kind = Ident
}

func (l *Lexer) scanPrivateIdentifier(tok *Token) {
	l.cur.Advance() // '#'
	if !IsIdentifierStart(l.cur.Current()) && l.cur.Current() != '\\' {
		l.failAt("expected identifier after \"#\"")
	}
	var raw []rune
	first := true
	for {
		r := l.cur.Current()
		if first && IsIdentifierStart(r) || !first && IsIdentifierContinue(r) {
			raw = append(raw, r)
			l.cur.Advance()
			first = false
			continue
		}
		break
	}
	tok.IdentifierName = string(raw)
	tok.Kind = PrivateIdent
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// --- Punctuators ---------------------------------------------------------

type punct struct {
	text string
	kind Kind
}

// Longest-match-first punctuator table, grounded on the switch-based
// approach in esbuild's js_lexer.go Next() but expressed as a data table
// scanned in descending length order for clarity.
var punctTable = []punct{
	{">>>=", GtGtGtEq},
	{"...", Ellipsis}, {"===", EqEqEq}, {"!==", NotEqEq}, {"**=", StarStarEq},
	{"<<=", LtLtEq}, {">>=", GtGtEq}, {">>>", GtGtGt}, {"&&=", AmpAmpEq},
	{"||=", PipePipeEq}, {"??=", QuestionQuestionEq},
	{"=>", Arrow}, {"==", EqEq}, {"!=", NotEq}, {"<=", LE}, {">=", GE},
	{"&&", AmpAmp}, {"||", PipePipe}, {"??", QuestionQuestion}, {"?.", QuestionDot},
	{"++", PlusPlus}, {"--", MinusMinus}, {"**", StarStar},
	{"<<", LtLt}, {">>", GtGt},
	{"+=", PlusEq}, {"-=", MinusEq}, {"*=", StarEq}, {"/=", SlashEq},
	{"%=", PercentEq}, {"&=", AmpEq}, {"|=", PipeEq}, {"^=", CaretEq},
	{"{", LBrace}, {"}", RBrace}, {"(", LParen}, {")", RParen},
	{"[", LBracket}, {"]", RBracket}, {".", Dot}, {";", Semicolon},
	{",", Comma}, {"<", LT}, {">", GT}, {"+", Plus}, {"-", Minus},
	{"*", Star}, {"/", Slash}, {"%", Percent}, {"&", Amp}, {"|", Pipe},
	{"^", Caret}, {"!", Not}, {"~", Tilde}, {"?", Question}, {":", Colon},
	{"=", Eq}, {"@", At},
}

func (l *Lexer) scanPunctuator(tok *Token) {
	for _, p := range punctTable {
		if l.cur.PeekString(len(p.text)) == p.text {
			for range p.text {
				l.cur.Advance()
			}
			tok.Kind = p.kind
			return
		}
	}
	l.failAt("unexpected character %q", string(l.cur.Current()))
}

// --- Template re-entry ---------------------------------------------------

// ContinueTemplate rescans starting from the current RBrace token (which
// the parser has determined closes a substitution, not a block) as the
// next TemplateMiddle or TemplateTail. Mirrors esbuild's
// RescanCloseBraceAsTemplateToken: the parser owns the decision of when a
// "}" belongs to a template rather than to nested braces in the
// substitution expression.
func (l *Lexer) ContinueTemplate() {
	if l.Token.Kind != RBrace {
		panic("ContinueTemplate called without a pending \"}\"")
	}
	// Rewind to the "}" byte and rescan it as the start of a template part.
	l.rewindTo(l.Token.StartOffset, l.Token.StartLine, l.Token.StartColumn)
	l.cur.Advance() // consume '}'

	tok := Token{
		StartOffset:        l.Token.StartOffset,
		StartLine:          l.Token.StartLine,
		StartColumn:        l.Token.StartColumn,
		PrecedingLineBreak: l.Token.PrecedingLineBreak,
	}
	l.scanTemplatePart(&tok, false)
	l.finish(&tok)
}

// rewindTo resets the cursor to a previously recorded position. Only ever
// used to step back exactly one token (the "}" just scanned), so a fresh
// cursor re-synced by offset/line/column is sufficient and avoids carrying
// extra rewind bookkeeping through the whole lexer.
func (l *Lexer) rewindTo(offset, line, column int) {
	l.cur = cursor.NewAt(l.cur.FullSource(), offset, line, column)
}

// Checkpoint is an opaque snapshot of lexer position, used by the parser to
// speculatively scan ahead (arrow-function and async-arrow disambiguation)
// and cheaply backtrack when the lookahead doesn't pan out.
type Checkpoint struct {
	offset, line, column int
	tok                  Token
}

// Mark captures the current token together with the position just after it,
// so that after Restore that token is current again and the next Next call
// scans the token that follows it, as if the lookahead had never happened.
func (l *Lexer) Mark() Checkpoint {
	return Checkpoint{offset: l.Token.EndOffset, line: l.Token.EndLine, column: l.Token.EndColumn, tok: l.Token}
}

// Restore rewinds the lexer to a previously captured Checkpoint.
func (l *Lexer) Restore(cp Checkpoint) {
	l.rewindTo(cp.offset, cp.line, cp.column)
	l.Token = cp.tok
}
