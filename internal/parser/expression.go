package parser

import (
	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/lexer"
)

// Precedence levels for the Pratt expression parser, lowest to highest.
// Grounded on esbuild's js_parser.go level ladder, collapsed to the
// operators ESTree distinguishes (LogicalExpression for &&/||/?? rather
// than BinaryExpression).
const (
	levelLowest = iota
	levelComma
	levelAssign
	levelConditional
	levelNullish
	levelLogicalOr
	levelLogicalAnd
	levelBitwiseOr
	levelBitwiseXor
	levelBitwiseAnd
	levelEquals
	levelCompare
	levelShift
	levelAdd
	levelMultiply
	levelExponent
	levelPrefix
	levelPostfix
	levelCall
)

type binOp struct {
	op    string
	level int
	logic bool // builds a LogicalExpression instead of BinaryExpression
}

var binaryOps = map[lexer.Kind]binOp{
	lexer.PipePipe:         {"||", levelLogicalOr, true},
	lexer.AmpAmp:           {"&&", levelLogicalAnd, true},
	lexer.QuestionQuestion: {"??", levelNullish, true},
	lexer.Pipe:             {"|", levelBitwiseOr, false},
	lexer.Caret:            {"^", levelBitwiseXor, false},
	lexer.Amp:               {"&", levelBitwiseAnd, false},
	lexer.EqEq:             {"==", levelEquals, false},
	lexer.NotEq:            {"!=", levelEquals, false},
	lexer.EqEqEq:           {"===", levelEquals, false},
	lexer.NotEqEq:          {"!==", levelEquals, false},
	lexer.LT:               {"<", levelCompare, false},
	lexer.GT:               {">", levelCompare, false},
	lexer.LE:               {"<=", levelCompare, false},
	lexer.GE:               {">=", levelCompare, false},
	lexer.Instanceof:       {"instanceof", levelCompare, false},
	lexer.In:               {"in", levelCompare, false},
	lexer.LtLt:             {"<<", levelShift, false},
	lexer.GtGt:             {">>", levelShift, false},
	lexer.GtGtGt:           {">>>", levelShift, false},
	lexer.Plus:             {"+", levelAdd, false},
	lexer.Minus:            {"-", levelAdd, false},
	lexer.Star:             {"*", levelMultiply, false},
	lexer.Slash:            {"/", levelMultiply, false},
	lexer.Percent:          {"%", levelMultiply, false},
	lexer.StarStar:         {"**", levelExponent, false},
}

var assignOps = map[lexer.Kind]string{
	lexer.Eq: "=", lexer.PlusEq: "+=", lexer.MinusEq: "-=", lexer.StarEq: "*=",
	lexer.SlashEq: "/=", lexer.PercentEq: "%=", lexer.StarStarEq: "**=",
	lexer.LtLtEq: "<<=", lexer.GtGtEq: ">>=", lexer.GtGtGtEq: ">>>=",
	lexer.AmpEq: "&=", lexer.PipeEq: "|=", lexer.CaretEq: "^=",
	lexer.AmpAmpEq: "&&=", lexer.PipePipeEq: "||=", lexer.QuestionQuestionEq: "??=",
}

// parseExpression parses an Expression production, including the top-level
// comma operator (SequenceExpression).
func (p *Parser) parseExpression() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	expr := p.parseAssign()
	if !p.is(lexer.Comma) {
		return expr
	}
	exprs := []ast.Node{expr}
	for p.is(lexer.Comma) {
		p.nextRegex()
		exprs = append(exprs, p.parseAssign())
	}
	return &ast.SequenceExpression{BaseNode: p.span(startOffset, startLine, startCol), Expressions: exprs}
}

// parseAssign parses an AssignmentExpression, handling the arrow-function
// and cover-grammar lookaheads that must happen before committing to a
// conditional-expression parse.
func (p *Parser) parseAssign() ast.Node {
	startOffset, startLine, startCol := p.startPos()

	if p.isContextualKeyword("async") && p.couldBeAsyncArrow() {
		if arrow := p.tryParseAsyncArrow(startOffset, startLine, startCol); arrow != nil {
			return arrow
		}
	}

	if p.is(lexer.Ident) && !p.isContextualKeyword("yield") {
		if arrow := p.tryParseSingleParamArrow(startOffset, startLine, startCol); arrow != nil {
			return arrow
		}
	}

	if p.isContextualKeyword("yield") && p.flags.allowYield {
		return p.parseYield(startOffset, startLine, startCol)
	}
	if p.isContextualKeyword("yield") && !p.flags.allowYield {
		if arrow := p.tryParseSingleParamArrow(startOffset, startLine, startCol); arrow != nil {
			return arrow
		}
	}

	if p.is(lexer.LParen) {
		if arrow := p.tryParseParenArrow(startOffset, startLine, startCol); arrow != nil {
			return arrow
		}
	}

	left := p.parseConditional()

	if op, ok := assignOps[p.tok().Kind]; ok {
		left = p.reinterpretAsPattern(left)
		p.nextRegex()
		right := p.parseAssign()
		return &ast.AssignmentExpression{
			BaseNode: p.span(startOffset, startLine, startCol),
			Operator: op, Left: left, Right: right,
		}
	}
	return left
}

func (p *Parser) parseYield(startOffset, startLine, startCol int) ast.Node {
	p.nextRegex()
	delegate := false
	if p.is(lexer.Star) {
		delegate = true
		p.nextRegex()
	}
	var arg ast.Node
	if !p.yieldArgumentAbsent() {
		arg = p.parseAssign()
	}
	return &ast.YieldExpression{BaseNode: p.span(startOffset, startLine, startCol), Argument: arg, Delegate: delegate}
}

// yieldArgumentAbsent reports whether the current position cannot start an
// AssignmentExpression, per the YieldExpression grammar's optional operand
// (no line terminator is checked here beyond the common ASI boundary set).
func (p *Parser) yieldArgumentAbsent() bool {
	if p.tok().PrecedingLineBreak {
		switch p.tok().Kind {
		case lexer.Semicolon, lexer.RParen, lexer.RBracket, lexer.RBrace, lexer.Comma, lexer.Colon, lexer.EOF:
			return true
		}
	}
	switch p.tok().Kind {
	case lexer.Semicolon, lexer.RParen, lexer.RBracket, lexer.RBrace, lexer.Comma, lexer.Colon, lexer.EOF:
		return true
	}
	return false
}

func (p *Parser) parseConditional() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	test := p.parseBinary(levelLowest)
	if !p.is(lexer.Question) {
		return test
	}
	p.nextRegex()
	saved := p.flags.allowIn
	p.flags.allowIn = true
	cons := p.parseAssign()
	p.flags.allowIn = saved
	p.expectRegexGoalAfter(lexer.Colon)
	alt := p.parseAssign()
	return &ast.ConditionalExpression{
		BaseNode: p.span(startOffset, startLine, startCol),
		Test:     test, Consequent: cons, Alternate: alt,
	}
}

// parseBinary implements precedence climbing over binaryOps, stopping "in"
// when allowIn is false (the for-statement head's ExpressionNoIn contract).
func (p *Parser) parseBinary(minLevel int) ast.Node {
	startOffset, startLine, startCol := p.startPos()
	left := p.parseUnary()

	for {
		info, ok := binaryOps[p.tok().Kind]
		if !ok || info.level < minLevel {
			return left
		}
		if p.tok().Kind == lexer.In && !p.flags.allowIn {
			return left
		}
		opTok := p.tok().Kind
		p.nextRegex()
		nextMin := info.level + 1
		if opTok == lexer.StarStar {
			nextMin = info.level // ** is right-associative
		}
		right := p.parseBinary(nextMin)
		base := p.span(startOffset, startLine, startCol)
		if info.logic {
			left = &ast.LogicalExpression{BaseNode: base, Operator: info.op, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpression{BaseNode: base, Operator: info.op, Left: left, Right: right}
		}
	}
}

func (p *Parser) parseUnary() ast.Node {
	startOffset, startLine, startCol := p.startPos()

	switch p.tok().Kind {
	case lexer.Plus, lexer.Minus, lexer.Not, lexer.Tilde:
		op := unaryOpText(p.tok().Kind)
		p.nextRegex()
		arg := p.parseUnaryAtPrec(levelPrefix)
		return &ast.UnaryExpression{BaseNode: p.span(startOffset, startLine, startCol), Operator: op, Argument: arg, Prefix: true}
	case lexer.Typeof, lexer.Void, lexer.Delete:
		op := keywordUnaryText(p.tok().Kind)
		p.nextRegex()
		arg := p.parseUnaryAtPrec(levelPrefix)
		return &ast.UnaryExpression{BaseNode: p.span(startOffset, startLine, startCol), Operator: op, Argument: arg, Prefix: true}
	case lexer.PlusPlus, lexer.MinusMinus:
		op := "++"
		if p.tok().Kind == lexer.MinusMinus {
			op = "--"
		}
		p.nextRegex()
		arg := p.parseUnaryAtPrec(levelPrefix)
		return &ast.UpdateExpression{BaseNode: p.span(startOffset, startLine, startCol), Operator: op, Argument: arg, Prefix: true}
	default:
		if p.isContextualKeyword("await") && p.flags.allowAwait {
			p.nextRegex()
			arg := p.parseUnaryAtPrec(levelPrefix)
			return &ast.AwaitExpression{BaseNode: p.span(startOffset, startLine, startCol), Argument: arg}
		}
	}

	return p.parseExponentOrPostfix(startOffset, startLine, startCol)
}

func (p *Parser) parseUnaryAtPrec(_ int) ast.Node { return p.parseUnary() }

func (p *Parser) parseExponentOrPostfix(startOffset, startLine, startCol int) ast.Node {
	base := p.parsePostfix(startOffset, startLine, startCol)
	if p.is(lexer.StarStar) {
		p.nextRegex()
		exp := p.parseUnaryAtPrec(levelExponent)
		return &ast.BinaryExpression{BaseNode: p.span(startOffset, startLine, startCol), Operator: "**", Left: base, Right: exp}
	}
	return base
}

func (p *Parser) parsePostfix(startOffset, startLine, startCol int) ast.Node {
	expr := p.parseLeftHandSide()
	if (p.is(lexer.PlusPlus) || p.is(lexer.MinusMinus)) && !p.tok().PrecedingLineBreak {
		op := "++"
		if p.is(lexer.MinusMinus) {
			op = "--"
		}
		p.nextDefault()
		return &ast.UpdateExpression{BaseNode: p.span(startOffset, startLine, startCol), Operator: op, Argument: expr, Prefix: false}
	}
	return expr
}

func unaryOpText(k lexer.Kind) string {
	switch k {
	case lexer.Plus:
		return "+"
	case lexer.Minus:
		return "-"
	case lexer.Not:
		return "!"
	case lexer.Tilde:
		return "~"
	}
	return ""
}

func keywordUnaryText(k lexer.Kind) string {
	switch k {
	case lexer.Typeof:
		return "typeof"
	case lexer.Void:
		return "void"
	case lexer.Delete:
		return "delete"
	}
	return ""
}

// parseLeftHandSide parses NewExpression/CallExpression/MemberExpression,
// including optional chaining, and wraps the result in a ChainExpression
// when any optional link appeared (Open Question (c)).
func (p *Parser) parseLeftHandSide() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	var expr ast.Node
	if p.is(lexer.New) {
		expr = p.parseNew(startOffset, startLine, startCol)
	} else {
		expr = p.parsePrimary()
	}
	expr, hadOptional := p.parseCallAndMemberTail(expr, startOffset, startLine, startCol, true)
	if hadOptional {
		return &ast.ChainExpression{BaseNode: p.span(startOffset, startLine, startCol), Expression: expr}
	}
	return expr
}

func (p *Parser) parseNew(startOffset, startLine, startCol int) ast.Node {
	p.nextDefault()
	if p.is(lexer.Dot) {
		p.nextDefault()
		if !p.isContextualKeyword("target") {
			p.failExpected("\"target\"")
		}
		p.nextDefault()
		return &ast.MetaProperty{
			BaseNode: p.span(startOffset, startLine, startCol),
			Meta:     &ast.Identifier{Name: "new"},
			Property: &ast.Identifier{Name: "target"},
		}
	}
	calleeStart, calleeLine, calleeCol := p.startPos()
	var callee ast.Node
	if p.is(lexer.New) {
		callee = p.parseNew(calleeStart, calleeLine, calleeCol)
	} else {
		callee = p.parsePrimary()
	}
	callee, _ = p.parseCallAndMemberTail(callee, calleeStart, calleeLine, calleeCol, false)
	var args []ast.Node
	if p.is(lexer.LParen) {
		args = p.parseArguments()
	} else {
		args = []ast.Node{}
	}
	return &ast.NewExpression{BaseNode: p.span(startOffset, startLine, startCol), Callee: callee, Arguments: args}
}

// parseCallAndMemberTail consumes member accesses, calls, and tagged
// templates following expr. allowCall controls whether "(" starts a call
// (false while re-scanning a `new` callee, per the grammar's
// MemberExpression-only callee rule).
func (p *Parser) parseCallAndMemberTail(expr ast.Node, startOffset, startLine, startCol int, allowCall bool) (ast.Node, bool) {
	hadOptional := false
	for {
		switch {
		case p.is(lexer.Dot):
			p.nextDefault()
			prop := p.parsePropertyNameAfterDot()
			expr = &ast.MemberExpression{BaseNode: p.span(startOffset, startLine, startCol), Object: expr, Property: prop, Computed: false, Optional: false}
		case p.is(lexer.QuestionDot):
			hadOptional = true
			p.nextDefault()
			switch {
			case p.is(lexer.LParen) && allowCall:
				args := p.parseArguments()
				expr = &ast.CallExpression{BaseNode: p.span(startOffset, startLine, startCol), Callee: expr, Arguments: args, Optional: true}
			case p.is(lexer.LBracket):
				p.nextRegex()
				prop := p.parseExpression()
				p.expect(lexer.RBracket)
				expr = &ast.MemberExpression{BaseNode: p.span(startOffset, startLine, startCol), Object: expr, Property: prop, Computed: true, Optional: true}
			default:
				prop := p.parsePropertyNameAfterDot()
				expr = &ast.MemberExpression{BaseNode: p.span(startOffset, startLine, startCol), Object: expr, Property: prop, Computed: false, Optional: true}
			}
		case p.is(lexer.LBracket):
			p.nextRegex()
			prop := p.parseExpression()
			p.expect(lexer.RBracket)
			expr = &ast.MemberExpression{BaseNode: p.span(startOffset, startLine, startCol), Object: expr, Property: prop, Computed: true, Optional: false}
		case p.is(lexer.LParen) && allowCall:
			args := p.parseArguments()
			expr = &ast.CallExpression{BaseNode: p.span(startOffset, startLine, startCol), Callee: expr, Arguments: args, Optional: false}
		case p.is(lexer.NoSubstitutionTemplate) || p.is(lexer.TemplateHead):
			tmpl := p.parseTemplateLiteralWithTag(true)
			expr = &ast.TaggedTemplateExpression{BaseNode: p.span(startOffset, startLine, startCol), Tag: expr, Quasi: tmpl}
		default:
			return expr, hadOptional
		}
	}
}

func (p *Parser) parsePropertyNameAfterDot() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	if p.is(lexer.PrivateIdent) {
		name := p.tok().IdentifierName
		p.usePrivateName(name, startOffset, startLine, startCol)
		p.nextDefault()
		return &ast.PrivateIdentifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}
	}
	name := p.identifierNameAnyKeyword()
	p.nextDefault()
	return &ast.Identifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}
}

// identifierNameAnyKeyword returns the current token's text as an
// IdentifierName, accepting reserved words (property names are not
// restricted the way binding identifiers are).
func (p *Parser) identifierNameAnyKeyword() string {
	t := p.tok()
	if t.Kind == lexer.Ident || t.Kind == lexer.PrivateIdent {
		return t.IdentifierName
	}
	if t.Raw != "" {
		return t.Raw
	}
	p.failExpected("a property name")
	return ""
}

func (p *Parser) parseArguments() []ast.Node {
	p.expectRegexGoalAfter(lexer.LParen)
	var args []ast.Node
	for !p.is(lexer.RParen) {
		if p.is(lexer.Ellipsis) {
			startOffset, startLine, startCol := p.startPos()
			p.nextRegex()
			arg := p.parseAssign()
			args = append(args, &ast.SpreadElement{BaseNode: p.span(startOffset, startLine, startCol), Argument: arg})
		} else {
			args = append(args, p.parseAssign())
		}
		if p.is(lexer.Comma) {
			p.nextRegex()
			continue
		}
		break
	}
	p.expect(lexer.RParen)
	if args == nil {
		args = []ast.Node{}
	}
	return args
}

// --- primary expressions ---------------------------------------------------

func (p *Parser) parsePrimary() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	t := p.tok()

	switch t.Kind {
	case lexer.This:
		p.nextDefault()
		return &ast.ThisExpression{BaseNode: p.span(startOffset, startLine, startCol)}
	case lexer.Super:
		p.nextDefault()
		return &ast.Super{BaseNode: p.span(startOffset, startLine, startCol)}
	case lexer.Null:
		p.nextDefault()
		return &ast.Literal{BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralNull, Raw: "null", Value: nil, HasValue: true}
	case lexer.True, lexer.False:
		raw := t.Raw
		val := t.Kind == lexer.True
		p.nextDefault()
		return &ast.Literal{BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralBoolean, Raw: raw, Value: val, HasValue: true}
	case lexer.NumericLiteral:
		raw := t.Raw
		val := t.NumberValue
		if t.IsLegacyOctal && p.flags.strict {
			p.fail("legacy octal literals are not allowed in strict mode")
		}
		p.nextDefault()
		return &ast.Literal{BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralNumber, Raw: raw, Value: val, HasValue: true}
	case lexer.BigIntLiteral:
		raw := t.Raw
		digits := t.BigIntDigits
		p.nextDefault()
		return &ast.Literal{BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralBigInt, Raw: raw, BigInt: digits, HasValue: false}
	case lexer.StringLiteral:
		raw := t.Raw
		val := t.StringValue
		p.nextDefault()
		return &ast.Literal{BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralString, Raw: raw, Value: val, HasValue: true}
	case lexer.RegExpLiteral:
		raw := t.Raw
		pattern, flags := t.RegexPattern, t.RegexFlags
		p.nextDefault()
		return &ast.Literal{
			BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralRegExp, Raw: raw,
			Regex: &ast.RegexValue{Pattern: pattern, Flags: flags}, HasValue: false,
		}
	case lexer.NoSubstitutionTemplate, lexer.TemplateHead:
		return p.parseTemplateLiteral()
	case lexer.LBracket:
		return p.parseArrayLiteral()
	case lexer.LBrace:
		return p.parseObjectLiteral()
	case lexer.LParen:
		return p.parseParenthesizedExpression()
	case lexer.Function:
		return p.parseFunctionExpression(false)
	case lexer.Class:
		return p.parseClassExpression()
	case lexer.Import:
		return p.parseImportExpressionOrMeta(startOffset, startLine, startCol)
	case lexer.PrivateIdent:
		// Only legal as the left operand of "in" (ergonomic brand checks);
		// the parser accepts it here and lets parseBinary's "in" handling
		// make sense of it.
		name := t.IdentifierName
		p.usePrivateName(name, startOffset, startLine, startCol)
		p.nextDefault()
		return &ast.PrivateIdentifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}
	}

	if p.isContextualKeyword("async") {
		return p.parseAsyncPrimary(startOffset, startLine, startCol)
	}

	if t.Kind == lexer.Ident {
		name := t.IdentifierName
		p.nextDefault()
		return &ast.Identifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}
	}

	p.failExpected("an expression")
	return nil
}

// bindingIdentifierName returns the current token's identifier text. Since
// "yield" and "await" are contextual keywords (lexed as plain Ident), the
// strict-mode/generator/async restrictions on using them as binding names
// are enforced by callers that know the surrounding context.
func (p *Parser) bindingIdentifierName() string {
	return p.tok().IdentifierName
}

func (p *Parser) parseAsyncPrimary(startOffset, startLine, startCol int) ast.Node {
	// "async function" expression, or else plain identifier "async".
	mark := p.lex.Mark()
	p.nextDefault()
	if p.is(lexer.Function) && !p.tok().PrecedingLineBreak {
		return p.parseFunctionExpression(true)
	}
	p.lex.Restore(mark)
	name := p.tok().IdentifierName
	p.nextDefault()
	return &ast.Identifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}
}

func (p *Parser) parseArrayLiteral() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	var elems []ast.Node
	for !p.is(lexer.RBracket) {
		if p.is(lexer.Comma) {
			elems = append(elems, nil)
			p.nextRegex()
			continue
		}
		if p.is(lexer.Ellipsis) {
			spStart, spLine, spCol := p.startPos()
			p.nextRegex()
			arg := p.parseAssign()
			elems = append(elems, &ast.SpreadElement{BaseNode: p.span(spStart, spLine, spCol), Argument: arg})
		} else {
			elems = append(elems, p.parseAssign())
		}
		if p.is(lexer.Comma) {
			p.nextRegex()
		} else {
			break
		}
	}
	p.expectRegexGoalAfter(lexer.RBracket)
	return &ast.ArrayExpression{BaseNode: p.span(startOffset, startLine, startCol), Elements: elems}
}

func (p *Parser) parseObjectLiteral() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault()
	var props []ast.Node
	for !p.is(lexer.RBrace) {
		props = append(props, p.parseObjectMember())
		if p.is(lexer.Comma) {
			p.nextDefault()
		} else {
			break
		}
	}
	p.expectRegexGoalAfter(lexer.RBrace)
	return &ast.ObjectExpression{BaseNode: p.span(startOffset, startLine, startCol), Properties: props}
}

func (p *Parser) parseObjectMember() ast.Node {
	startOffset, startLine, startCol := p.startPos()

	if p.is(lexer.Ellipsis) {
		p.nextRegex()
		arg := p.parseAssign()
		return &ast.SpreadElement{BaseNode: p.span(startOffset, startLine, startCol), Argument: arg}
	}

	async, generator := false, false
	kind := "init"

	if p.isContextualKeyword("async") && p.peekStartsPropertyName() {
		async = true
		p.nextDefault()
	}
	if p.is(lexer.Star) {
		generator = true
		p.nextDefault()
	}
	if (p.isContextualKeyword("get") || p.isContextualKeyword("set")) && p.peekStartsPropertyName() {
		if p.isContextualKeyword("get") {
			kind = "get"
		} else {
			kind = "set"
		}
		p.nextDefault()
	}

	computed := p.is(lexer.LBracket)
	key, keyIsPrivate := p.parsePropertyKey()
	_ = keyIsPrivate

	switch {
	case p.is(lexer.LParen):
		fn := p.parseMethodBody(async, generator)
		return &ast.Property{
			BaseNode: p.span(startOffset, startLine, startCol), Key: key, Value: fn,
			Kind: methodPropertyKind(kind), Method: kind == "init", Computed: computed,
		}
	case kind == "get" || kind == "set":
		fn := p.parseMethodBody(false, false)
		return &ast.Property{
			BaseNode: p.span(startOffset, startLine, startCol), Key: key, Value: fn,
			Kind: kind, Method: false, Computed: computed,
		}
	case p.is(lexer.Colon):
		p.nextRegex()
		val := p.parseAssign()
		return &ast.Property{BaseNode: p.span(startOffset, startLine, startCol), Key: key, Value: val, Kind: "init", Computed: computed}
	case p.is(lexer.Eq):
		// CoverInitializedName: only legal once reinterpreted as a pattern.
		p.nextRegex()
		def := p.parseAssign()
		ident, ok := key.(*ast.Identifier)
		if !ok {
			p.fail("invalid shorthand property initializer")
		}
		value := &ast.AssignmentPattern{BaseNode: p.span(startOffset, startLine, startCol), Left: ident, Right: def}
		prop := &ast.Property{BaseNode: p.span(startOffset, startLine, startCol), Key: ident, Value: value, Kind: "init", Shorthand: true}
		p.markCoverInitializedName(prop, startOffset, startLine, startCol)
		return prop
	default:
		ident, ok := key.(*ast.Identifier)
		if !ok {
			p.fail("expected a shorthand property")
		}
		return &ast.Property{BaseNode: p.span(startOffset, startLine, startCol), Key: ident, Value: ident, Kind: "init", Shorthand: true}
	}
}

func methodPropertyKind(kind string) string {
	if kind == "get" || kind == "set" {
		return kind
	}
	return "init"
}

// peekStartsPropertyName reports whether the token after the current one
// can start a PropertyName, distinguishing "get foo() {}" from a shorthand
// property literally named "get".
func (p *Parser) peekStartsPropertyName() bool {
	mark := p.lex.Mark()
	p.nextDefault()
	ok := p.is(lexer.Ident) || p.is(lexer.StringLiteral) || p.is(lexer.NumericLiteral) ||
		p.is(lexer.LBracket) || p.is(lexer.PrivateIdent) ||
		(p.tok().Raw != "" && !p.is(lexer.Comma) && !p.is(lexer.RBrace) && !p.is(lexer.Colon) && !p.is(lexer.LParen) && !p.is(lexer.Eq))
	p.lex.Restore(mark)
	return ok
}

// parsePropertyKey parses a PropertyName (identifier, string, number, or
// computed) and reports whether it was a PrivateIdentifier.
func (p *Parser) parsePropertyKey() (ast.Node, bool) {
	startOffset, startLine, startCol := p.startPos()
	switch {
	case p.is(lexer.LBracket):
		p.nextRegex()
		expr := p.parseAssign()
		p.expect(lexer.RBracket)
		return expr, false
	case p.is(lexer.StringLiteral):
		raw, val := p.tok().Raw, p.tok().StringValue
		p.nextDefault()
		return &ast.Literal{BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralString, Raw: raw, Value: val, HasValue: true}, false
	case p.is(lexer.NumericLiteral):
		raw, val := p.tok().Raw, p.tok().NumberValue
		p.nextDefault()
		return &ast.Literal{BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralNumber, Raw: raw, Value: val, HasValue: true}, false
	case p.is(lexer.PrivateIdent):
		name := p.tok().IdentifierName
		p.nextDefault()
		return &ast.PrivateIdentifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}, true
	default:
		name := p.identifierNameAnyKeyword()
		p.nextDefault()
		return &ast.Identifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}, false
	}
}

// parseMethodBody parses the "(" params ")" "{" body "}" shared by object
// and class methods, given that async/generator/kind have already been
// consumed by the caller.
func (p *Parser) parseMethodBody(async, generator bool) *ast.FunctionExpression {
	startOffset, startLine, startCol := p.startPos()
	var params []ast.Node
	var body *ast.BlockStatement
	p.withFunctionScope(async, generator, func() {
		params = p.parseParams()
		body = p.parseFunctionBody()
	})
	return &ast.FunctionExpression{
		BaseNode: p.span(startOffset, startLine, startCol), Params: params, Body: body,
		Generator: generator, Async: async,
	}
}

func (p *Parser) parseParenthesizedExpression() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	saved := p.flags.allowIn
	p.flags.allowIn = true
	expr := p.parseExpression()
	p.flags.allowIn = saved
	p.expectRegexGoalAfter(lexer.RParen)
	_ = startOffset
	_ = startLine
	_ = startCol
	return expr
}

func (p *Parser) parseImportExpressionOrMeta(startOffset, startLine, startCol int) ast.Node {
	p.nextDefault()
	if p.is(lexer.Dot) {
		p.nextDefault()
		if !p.isContextualKeyword("meta") {
			p.failExpected("\"meta\"")
		}
		p.nextDefault()
		return &ast.MetaProperty{
			BaseNode: p.span(startOffset, startLine, startCol),
			Meta:     &ast.Identifier{Name: "import"},
			Property: &ast.Identifier{Name: "meta"},
		}
	}
	p.expectRegexGoalAfter(lexer.LParen)
	source := p.parseAssign()
	var options ast.Node
	if p.is(lexer.Comma) {
		p.nextRegex()
		if !p.is(lexer.RParen) {
			options = p.parseAssign()
			if p.is(lexer.Comma) {
				p.nextRegex()
			}
		}
	}
	p.expect(lexer.RParen)
	return &ast.ImportExpression{BaseNode: p.span(startOffset, startLine, startCol), Source: source, Options: options}
}
