// Package parser is the hand-written recursive-descent/Pratt hybrid that
// drives internal/lexer and builds internal/ast nodes. It implements
// ECMA-262's cover grammars, strict/sloppy mode resolution, async/yield
// contextual keyword promotion, module-vs-script goal selection, and
// produces ESTree nodes with accurate source locations.
//
// Grounded on the overall shape of esbuild's internal/js_parser.parser
// (pull-based lexer, Pratt precedence climbing via a numeric level, a
// struct of saved/restored mode flags for each function/class boundary,
// panic-based fatal errors recovered at the top-level entry point) but
// retargeted to build ESTree nodes directly rather than esbuild's bundler
// IR.
package parser

import (
	"fmt"

	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/diag"
	"github.com/jimmyhmiller/estree-go/internal/lexer"
)

// scopeFlags is the mode-flag bundle saved on entry to, and restored on
// exit from, every function/arrow/class boundary. It is kept as a plain
// value rather than a class hierarchy of parser states, since it is
// stack-like: push on entry, pop on exit.
type scopeFlags struct {
	strict       bool
	allowAwait   bool
	allowYield   bool
	allowReturn  bool
	inIteration  bool
	inSwitch     bool
	allowIn      bool
	labelSet     map[string]bool
	loopLabelSet map[string]bool
	allowSuper      bool
	allowSuperCall  bool
	allowNewTarget  bool
	privateNames    map[string]bool
	allowPrivate    bool
}

func newScopeFlags() scopeFlags {
	return scopeFlags{
		allowIn:      true,
		labelSet:     map[string]bool{},
		loopLabelSet: map[string]bool{},
	}
}

// Parser holds the lexer, the current mode-flag bundle, and bookkeeping
// shared across the whole parse (source text for slicing raw literal text,
// the selected goal symbol).
type Parser struct {
	lex        *lexer.Lexer
	src        string
	sourceType string // "script" | "module"
	flags      scopeFlags

	// prevEnd is the end position of the most recently consumed token; it
	// becomes the End of whatever node is currently being closed out.
	prevEndOffset int
	prevEndLine   int
	prevEndColumn int

	// afterArrowBodyOffset marks a position immediately after a
	// concise-arrow-body expression ends, used the same way esbuild uses
	// afterArrowBodyLoc: parseSuffix must not keep consuming a sequence
	// expression across that boundary.
	afterArrowBodyOffset int

	// pendingCoverInit tracks every ObjectExpression Property built from a
	// CoverInitializedName ("{a = 1}") that has not yet been legitimized by
	// reinterpretAsPattern. Anything still pending when the program has
	// finished parsing was used as a plain expression, which is a syntax
	// error.
	pendingCoverInit map[*ast.Property]coverInitPos

	// pendingPrivateRefs tracks every #name reference not yet matched to a
	// declaration in its enclosing class, since a reference may occur
	// before its declaration in source order. Each class body resolves the
	// references recorded while it was parsed against its own now-complete
	// set of declared names; anything still unresolved bubbles up to an
	// enclosing class, or is rejected once the whole program has parsed.
	pendingPrivateRefs []privateRef
}

type coverInitPos struct {
	offset, line, col int
}

type privateRef struct {
	name              string
	offset, line, col int
}

// New creates a parser over src with the given goal symbol.
func New(src string, sourceType string) *Parser {
	p := &Parser{
		lex:        lexer.New(src),
		src:        src,
		sourceType: sourceType,
		flags:      newScopeFlags(),
	}
	if sourceType == "module" {
		p.flags.strict = true
		p.flags.allowAwait = true
	}
	return p
}

// Parse runs the parser to completion, converting any fatal diag.Error
// panic (raised by the lexer or by p.fail) into a returned error. This is
// the only recover point in the whole module: there is no error recovery,
// only a clean conversion from "panic during a single parse" to "one
// returned *diag.Error" on the first syntax error encountered.
func Parse(src string, sourceType string) (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*diag.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	p := New(src, sourceType)
	prog = p.parseProgram()
	p.rejectPendingCoverInitializedNames()
	p.rejectPendingPrivateRefs()
	return prog, nil
}

// rejectPendingCoverInitializedNames fails on the earliest still-unresolved
// CoverInitializedName recorded during the parse (see pendingCoverInit).
func (p *Parser) rejectPendingCoverInitializedNames() {
	if len(p.pendingCoverInit) == 0 {
		return
	}
	var first coverInitPos
	found := false
	for _, pos := range p.pendingCoverInit {
		if !found || pos.offset < first.offset {
			first, found = pos, true
		}
	}
	panic(diag.New("invalid shorthand property initializer", first.offset, first.line, first.col))
}

// rejectPendingPrivateRefs fails on the earliest #name reference that no
// enclosing class ever declared.
func (p *Parser) rejectPendingPrivateRefs() {
	if len(p.pendingPrivateRefs) == 0 {
		return
	}
	ref := p.pendingPrivateRefs[0]
	panic(diag.New(fmt.Sprintf("private name #%s is not defined", ref.name), ref.offset, ref.line, ref.col))
}

// markCoverInitializedName records prop as a pending CoverInitializedName;
// reinterpretAsPattern clears it once the property is legitimized as part
// of a destructuring pattern.
func (p *Parser) markCoverInitializedName(prop *ast.Property, offset, line, col int) {
	if p.pendingCoverInit == nil {
		p.pendingCoverInit = map[*ast.Property]coverInitPos{}
	}
	p.pendingCoverInit[prop] = coverInitPos{offset: offset, line: line, col: col}
}

func (p *Parser) clearCoverInitializedName(prop *ast.Property) {
	delete(p.pendingCoverInit, prop)
}

// usePrivateName records a #name reference as pending unless the nearest
// enclosing class has already declared it by this point in the parse.
func (p *Parser) usePrivateName(name string, offset, line, col int) {
	if p.flags.privateNames != nil && p.flags.privateNames[name] {
		return
	}
	p.pendingPrivateRefs = append(p.pendingPrivateRefs, privateRef{name: name, offset: offset, line: line, col: col})
}

func (p *Parser) fail(format string, args ...any) {
	tok := p.lex.Token
	panic(diag.New(fmt.Sprintf(format, args...), tok.StartOffset, tok.StartLine, tok.StartColumn))
}

func (p *Parser) failExpected(expected string) {
	tok := p.lex.Token
	found := describeToken(tok)
	panic(diag.NewExpected(fmt.Sprintf("Unexpected token, expected %s but found %s", expected, found),
		tok.StartOffset, tok.StartLine, tok.StartColumn, expected))
}

func describeToken(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.EOF:
		return "end of file"
	case lexer.Ident:
		return fmt.Sprintf("identifier %q", tok.IdentifierName)
	case lexer.StringLiteral:
		return "a string literal"
	case lexer.NumericLiteral, lexer.BigIntLiteral:
		return "a numeric literal"
	default:
		if tok.Raw != "" {
			return fmt.Sprintf("%q", tok.Raw)
		}
		return tok.Kind.String()
	}
}

// --- token-stream helpers -------------------------------------------------

func (p *Parser) tok() lexer.Token { return p.lex.Token }

func (p *Parser) is(k lexer.Kind) bool { return p.lex.Token.Kind == k }

// next advances the lexer under the given goal, recording the end of the
// token just consumed so the caller can close out a node's span.
func (p *Parser) next(goal lexer.Goal) {
	t := p.lex.Token
	p.prevEndOffset = t.EndOffset
	p.prevEndLine = t.EndLine
	p.prevEndColumn = t.EndColumn
	p.lex.Next(goal)
}

// nextDefault advances under GoalDefault, the common case: a "/" here
// would be division, not the start of a regex.
func (p *Parser) nextDefault() { p.next(lexer.GoalDefault) }

// nextRegex advances under GoalRegExp: a "/" here starts a regex literal
// (statement starts, operators, "return", "yield", "typeof", etc).
func (p *Parser) nextRegex() { p.next(lexer.GoalRegExp) }

func (p *Parser) expect(k lexer.Kind) {
	if !p.is(k) {
		p.failExpected(k.String())
	}
	p.nextDefault()
}

func (p *Parser) expectRegexGoalAfter(k lexer.Kind) {
	if !p.is(k) {
		p.failExpected(k.String())
	}
	p.nextRegex()
}

// isContextualKeyword reports whether the current token is an
// unescaped identifier spelled exactly name — the mechanism behind every
// contextual keyword (let, async, of, from, as, get, set, static, yield,
// await, target, meta).
func (p *Parser) isContextualKeyword(name string) bool {
	return p.is(lexer.Ident) && !p.tok().IdentifierEscaped && p.tok().IdentifierName == name
}

func (p *Parser) expectContextualKeyword(name string) {
	if !p.isContextualKeyword(name) {
		p.failExpected(fmt.Sprintf("%q", name))
	}
	p.nextDefault()
}

// startPos captures the current token's start as the beginning of a node
// about to be parsed.
func (p *Parser) startPos() (offset, line, column int) {
	t := p.tok()
	return t.StartOffset, t.StartLine, t.StartColumn
}

// span builds the ast.Loc/offsets for a node that began at the given
// start position and ends at the most recently consumed token.
func (p *Parser) span(startOffset, startLine, startColumn int) (ast.BaseNode) {
	return ast.BaseNode{
		Start: startOffset,
		End:   p.prevEndOffset,
		Loc: ast.Loc{
			Start: ast.Position{Line: startLine, Column: startColumn},
			End:   ast.Position{Line: p.prevEndLine, Column: p.prevEndColumn},
		},
	}
}

// rawText returns the exact source text between two byte offsets, used for
// Literal.Raw and TemplateElement.Value.Raw.
func (p *Parser) rawText(start, end int) string { return p.src[start:end] }

// --- mode flag save/restore -----------------------------------------------

// withFunctionScope runs fn with a fresh function-level scope (new label
// sets, new iteration/switch context, caller-specified async/generator
// allowances), then restores the caller's scope. Grounded on the "mode flag
// stack... saved on entry to and restored on exit" design note.
func (p *Parser) withFunctionScope(isAsync, isGenerator bool, body func()) {
	saved := p.flags
	p.flags = scopeFlags{
		strict:         p.flags.strict,
		allowAwait:     isAsync,
		allowYield:     isGenerator,
		allowReturn:    true,
		allowIn:        true,
		labelSet:       map[string]bool{},
		loopLabelSet:   map[string]bool{},
		allowSuper:     p.flags.allowSuper,
		allowSuperCall: p.flags.allowSuperCall,
		allowNewTarget: true,
		privateNames:   p.flags.privateNames,
		allowPrivate:   p.flags.allowPrivate,
	}
	body()
	p.flags = saved
}

// withArrowScope runs body with the caller's flags unchanged (unlike
// withFunctionScope, nothing is reset: allowReturn, the label sets and the
// await/yield allowances are all inherited from the enclosing scope), then
// restores the caller's flags, undoing anything body changed.
func (p *Parser) withArrowScope(body func()) {
	saved := p.flags
	body()
	p.flags = saved
}

func (p *Parser) withClassBodyScope(privateNames map[string]bool, body func()) {
	saved := p.flags
	p.flags.strict = true
	p.flags.privateNames = privateNames
	p.flags.allowPrivate = true
	body()
	p.flags = saved
}

func (p *Parser) withLoop(body func()) {
	savedIter := p.flags.inIteration
	p.flags.inIteration = true
	body()
	p.flags.inIteration = savedIter
}

func (p *Parser) withSwitch(body func()) {
	saved := p.flags.inSwitch
	p.flags.inSwitch = true
	body()
	p.flags.inSwitch = saved
}
