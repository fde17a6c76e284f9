package parser

import (
	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/lexer"
)

func (p *Parser) parseProgram() *ast.Program {
	startOffset, startLine, startCol := p.startPos()
	body := p.parseStatementListUntilEOF()
	return &ast.Program{BaseNode: p.span(startOffset, startLine, startCol), SourceType: p.sourceType, Body: body}
}

// parseStatementListUntilEOF parses the program/module body, recognizing a
// leading directive prologue (consecutive bare string-literal expression
// statements) and promoting "use strict" into strict mode for everything
// that follows.
func (p *Parser) parseStatementListUntilEOF() []ast.Node {
	var body []ast.Node
	inPrologue := true
	for !p.is(lexer.EOF) {
		stmt := p.parseStatementListItem()
		if inPrologue {
			if es, ok := stmt.(*ast.ExpressionStatement); ok && es.Directive != "" {
				if es.Directive == "use strict" {
					p.flags.strict = true
				}
			} else {
				inPrologue = false
			}
		}
		body = append(body, stmt)
	}
	if body == nil {
		body = []ast.Node{}
	}
	return body
}

// parseStatementListItem parses one StatementListItem: a Statement, a
// Declaration (function/class/let/const), or (in a module) a module item.
func (p *Parser) parseStatementListItem() ast.Node {
	if p.sourceType == "module" {
		if p.is(lexer.Import) && !p.importStartsExpression() {
			return p.parseImportDeclaration()
		}
		if p.is(lexer.Export) {
			return p.parseExportDeclaration()
		}
	}
	return p.parseStatement()
}

// importStartsExpression distinguishes ImportDeclaration from
// ImportExpression/import.meta: only "import" followed by "(" or "." is an
// expression-level use.
func (p *Parser) importStartsExpression() bool {
	mark := p.lex.Mark()
	p.nextDefault()
	isExpr := p.is(lexer.LParen) || p.is(lexer.Dot)
	p.lex.Restore(mark)
	return isExpr
}

func (p *Parser) parseBlockStatementBody() []ast.Node {
	p.expect(lexer.LBrace)
	var body []ast.Node
	for !p.is(lexer.RBrace) {
		body = append(body, p.parseStatementListItem())
	}
	p.expectRegexGoalAfter(lexer.RBrace)
	if body == nil {
		body = []ast.Node{}
	}
	return body
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	startOffset, startLine, startCol := p.startPos()
	body := p.parseBlockStatementBody()
	return &ast.BlockStatement{BaseNode: p.span(startOffset, startLine, startCol), Body: body}
}

func (p *Parser) parseStatement() ast.Node {
	switch {
	case p.is(lexer.LBrace):
		return p.parseBlockStatement()
	case p.is(lexer.Var):
		return p.parseVariableStatement("var")
	case p.isContextualKeyword("let") && p.letStartsDeclaration():
		return p.parseVariableStatement("let")
	case p.is(lexer.Const):
		return p.parseVariableStatement("const")
	case p.is(lexer.Function):
		return p.parseFunctionDeclaration(false)
	case p.isContextualKeyword("async") && p.asyncStartsFunctionDeclaration():
		p.nextDefault()
		return p.parseFunctionDeclaration(true)
	case p.is(lexer.Class):
		return p.parseClassDeclaration(true)
	case p.is(lexer.If):
		return p.parseIfStatement()
	case p.is(lexer.Do):
		return p.parseDoWhileStatement()
	case p.is(lexer.While):
		return p.parseWhileStatement()
	case p.is(lexer.For):
		return p.parseForStatement()
	case p.is(lexer.Switch):
		return p.parseSwitchStatement()
	case p.is(lexer.Continue):
		return p.parseContinueStatement()
	case p.is(lexer.Break):
		return p.parseBreakStatement()
	case p.is(lexer.Return):
		return p.parseReturnStatement()
	case p.is(lexer.With):
		return p.parseWithStatement()
	case p.is(lexer.Throw):
		return p.parseThrowStatement()
	case p.is(lexer.Try):
		return p.parseTryStatement()
	case p.is(lexer.Debugger):
		return p.parseDebuggerStatement()
	case p.is(lexer.Semicolon):
		return p.parseEmptyStatement()
	default:
		return p.parseLabeledOrExpressionStatement()
	}
}

func (p *Parser) letStartsDeclaration() bool {
	mark := p.lex.Mark()
	p.nextDefault()
	ok := p.is(lexer.Ident) || p.is(lexer.LBracket) || p.is(lexer.LBrace)
	p.lex.Restore(mark)
	return ok
}

func (p *Parser) asyncStartsFunctionDeclaration() bool {
	mark := p.lex.Mark()
	p.nextDefault()
	ok := p.is(lexer.Function) && !p.tok().PrecedingLineBreak
	p.lex.Restore(mark)
	return ok
}

func (p *Parser) parseDebuggerStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	p.consumeSemicolon()
	return &ast.DebuggerStatement{BaseNode: p.span(startOffset, startLine, startCol)}
}

func (p *Parser) parseEmptyStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	return &ast.EmptyStatement{BaseNode: p.span(startOffset, startLine, startCol)}
}

func (p *Parser) parseWithStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	if p.flags.strict {
		p.fail("'with' statements are not allowed in strict mode")
	}
	p.nextRegex()
	p.expectRegexGoalAfter(lexer.LParen)
	obj := p.parseExpression()
	p.expectRegexGoalAfter(lexer.RParen)
	body := p.parseStatement()
	return &ast.WithStatement{BaseNode: p.span(startOffset, startLine, startCol), Object: obj, Body: body}
}

func (p *Parser) parseIfStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	p.expectRegexGoalAfter(lexer.LParen)
	test := p.parseExpression()
	p.expectRegexGoalAfter(lexer.RParen)
	cons := p.parseStatement()
	var alt ast.Node
	if p.is(lexer.Else) {
		p.nextRegex()
		alt = p.parseStatement()
	}
	return &ast.IfStatement{BaseNode: p.span(startOffset, startLine, startCol), Test: test, Consequent: cons, Alternate: alt}
}

func (p *Parser) parseWhileStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	p.expectRegexGoalAfter(lexer.LParen)
	test := p.parseExpression()
	p.expectRegexGoalAfter(lexer.RParen)
	var body ast.Node
	p.withLoop(func() { body = p.parseStatement() })
	return &ast.WhileStatement{BaseNode: p.span(startOffset, startLine, startCol), Test: test, Body: body}
}

func (p *Parser) parseDoWhileStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	var body ast.Node
	p.withLoop(func() { body = p.parseStatement() })
	if !p.is(lexer.While) {
		p.failExpected("\"while\"")
	}
	p.nextRegex()
	p.expectRegexGoalAfter(lexer.LParen)
	test := p.parseExpression()
	p.expectRegexGoalAfter(lexer.RParen)
	// A trailing ";" here is always optional, per ECMA-262's special case
	// for do-while (ASI rule 4: inserted unconditionally before "}"/EOF is
	// not even required, but an explicit ";" is still consumed if present).
	if p.is(lexer.Semicolon) {
		p.nextRegex()
	}
	return &ast.DoWhileStatement{BaseNode: p.span(startOffset, startLine, startCol), Body: body, Test: test}
}

func (p *Parser) parseSwitchStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	p.expectRegexGoalAfter(lexer.LParen)
	disc := p.parseExpression()
	p.expectRegexGoalAfter(lexer.RParen)
	p.expect(lexer.LBrace)

	var cases []*ast.SwitchCase
	seenDefault := false
	p.withSwitch(func() {
		for !p.is(lexer.RBrace) {
			cStart, cLine, cCol := p.startPos()
			var test ast.Node
			if p.is(lexer.Case) {
				p.nextRegex()
				test = p.parseExpression()
			} else if p.is(lexer.Default) {
				if seenDefault {
					p.fail("a switch statement may have at most one default clause")
				}
				seenDefault = true
				p.nextDefault()
			} else {
				p.failExpected("\"case\" or \"default\"")
			}
			p.expectRegexGoalAfter(lexer.Colon)
			var consequent []ast.Node
			for !p.is(lexer.Case) && !p.is(lexer.Default) && !p.is(lexer.RBrace) {
				consequent = append(consequent, p.parseStatementListItem())
			}
			cases = append(cases, &ast.SwitchCase{BaseNode: p.span(cStart, cLine, cCol), Test: test, Consequent: consequent})
		}
	})
	p.expectRegexGoalAfter(lexer.RBrace)
	return &ast.SwitchStatement{BaseNode: p.span(startOffset, startLine, startCol), Discriminant: disc, Cases: cases}
}

func (p *Parser) parseTryStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault()
	block := p.parseBlockStatement()

	var handler *ast.CatchClause
	if p.is(lexer.Catch) {
		cStart, cLine, cCol := p.startPos()
		p.nextDefault()
		var param ast.Node
		if p.is(lexer.LParen) {
			p.nextRegex()
			param = p.parseBindingTarget()
			p.expectRegexGoalAfter(lexer.RParen)
		}
		body := p.parseBlockStatement()
		handler = &ast.CatchClause{BaseNode: p.span(cStart, cLine, cCol), Param: param, Body: body}
	}

	var finalizer *ast.BlockStatement
	if p.is(lexer.Finally) {
		p.nextDefault()
		finalizer = p.parseBlockStatement()
	}

	if handler == nil && finalizer == nil {
		p.failExpected("\"catch\" or \"finally\"")
	}
	return &ast.TryStatement{BaseNode: p.span(startOffset, startLine, startCol), Block: block, Handler: handler, Finalizer: finalizer}
}

func (p *Parser) parseThrowStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	if p.tok().PrecedingLineBreak {
		p.fail("illegal newline after \"throw\"")
	}
	arg := p.parseExpression()
	p.consumeSemicolon()
	return &ast.ThrowStatement{BaseNode: p.span(startOffset, startLine, startCol), Argument: arg}
}

func (p *Parser) parseReturnStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextRegex()
	var arg ast.Node
	if !p.returnArgumentAbsent() {
		arg = p.parseExpression()
	}
	p.consumeSemicolon()
	return &ast.ReturnStatement{BaseNode: p.span(startOffset, startLine, startCol), Argument: arg}
}

func (p *Parser) returnArgumentAbsent() bool {
	if p.tok().PrecedingLineBreak {
		return true
	}
	switch p.tok().Kind {
	case lexer.Semicolon, lexer.RBrace, lexer.EOF:
		return true
	}
	return false
}

func (p *Parser) parseBreakStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault()
	var label *ast.Identifier
	if p.is(lexer.Ident) && !p.tok().PrecedingLineBreak {
		label = p.parseBindingIdentifier()
	}
	p.consumeSemicolon()
	return &ast.BreakStatement{BaseNode: p.span(startOffset, startLine, startCol), Label: label}
}

func (p *Parser) parseContinueStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault()
	var label *ast.Identifier
	if p.is(lexer.Ident) && !p.tok().PrecedingLineBreak {
		label = p.parseBindingIdentifier()
	}
	p.consumeSemicolon()
	return &ast.ContinueStatement{BaseNode: p.span(startOffset, startLine, startCol), Label: label}
}

// parseLabeledOrExpressionStatement disambiguates "Identifier ':' Statement"
// from an ExpressionStatement starting with that identifier, by speculative
// one-token lookahead.
func (p *Parser) parseLabeledOrExpressionStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()

	if p.is(lexer.Ident) && !p.isContextualKeyword("async") {
		mark := p.lex.Mark()
		labelStartOffset, labelStartLine, labelStartCol := p.startPos()
		name := p.tok().IdentifierName
		p.nextDefault()
		if p.is(lexer.Colon) {
			label := &ast.Identifier{BaseNode: p.span(labelStartOffset, labelStartLine, labelStartCol), Name: name}
			p.nextRegex()
			body := p.parseStatement()
			return &ast.LabeledStatement{BaseNode: p.span(startOffset, startLine, startCol), Label: label, Body: body}
		}
		p.lex.Restore(mark)
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	startTok := p.tok()
	isStringLiteral := startTok.Kind == lexer.StringLiteral
	expr := p.parseExpression()
	p.consumeSemicolon()

	directive := ""
	if isStringLiteral {
		if lit, ok := expr.(*ast.Literal); ok && lit.Kind == ast.LiteralString {
			directive = directiveValueFromRaw(lit.Raw)
		}
	}
	return &ast.ExpressionStatement{BaseNode: p.span(startOffset, startLine, startCol), Expression: expr, Directive: directive}
}

// directiveValueFromRaw strips the literal's quote characters only (no
// escape decoding), per ESTree's convention that Directive is the raw
// source text between the quotes.
func directiveValueFromRaw(raw string) string {
	if len(raw) < 2 {
		return ""
	}
	return raw[1 : len(raw)-1]
}

// --- Variable declarations -------------------------------------------------

func (p *Parser) parseVariableStatement(kind string) ast.Node {
	startOffset, startLine, startCol := p.startPos()
	decl := p.parseVariableDeclaration(kind, true)
	p.consumeSemicolon()
	decl.BaseNode = p.span(startOffset, startLine, startCol)
	return decl
}

func (p *Parser) parseVariableDeclaration(kind string, requireInit bool) *ast.VariableDeclaration {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault() // consume var/let/const

	var decls []*ast.VariableDeclarator
	for {
		decls = append(decls, p.parseVariableDeclarator(kind, requireInit))
		if p.is(lexer.Comma) {
			p.nextRegex()
			continue
		}
		break
	}
	return &ast.VariableDeclaration{BaseNode: p.span(startOffset, startLine, startCol), Kind: kind, Declarations: decls}
}

func (p *Parser) parseVariableDeclarator(kind string, requireInit bool) *ast.VariableDeclarator {
	startOffset, startLine, startCol := p.startPos()
	id := p.parseBindingTarget()
	var init ast.Node
	if p.is(lexer.Eq) {
		p.nextRegex()
		init = p.parseAssign()
	} else if requireInit && kind != "var" {
		if _, isPattern := id.(*ast.Identifier); !isPattern {
			p.fail("missing initializer in destructuring declaration")
		}
	}
	return &ast.VariableDeclarator{BaseNode: p.span(startOffset, startLine, startCol), ID: id, Init: init}
}

// --- for / for-in / for-of ------------------------------------------------

func (p *Parser) parseForStatement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault()

	isAwait := false
	if p.isContextualKeyword("await") {
		isAwait = true
		p.nextDefault()
	}
	p.expectRegexGoalAfter(lexer.LParen)

	if p.is(lexer.Semicolon) {
		return p.finishCStyleFor(startOffset, startLine, startCol, nil)
	}

	if p.is(lexer.Var) || p.isContextualKeyword("let") || p.is(lexer.Const) {
		kind := "var"
		switch {
		case p.is(lexer.Const):
			kind = "const"
		case p.isContextualKeyword("let"):
			kind = "let"
		}
		declStart, declLine, declCol := p.startPos()
		p.flags.allowIn = false
		decl := p.parseVariableDeclaration(kind, false)
		p.flags.allowIn = true
		decl.BaseNode = p.span(declStart, declLine, declCol)

		if p.is(lexer.In) || p.isContextualKeyword("of") {
			return p.finishForInOf(startOffset, startLine, startCol, decl, isAwait)
		}
		return p.finishCStyleFor(startOffset, startLine, startCol, decl)
	}

	p.flags.allowIn = false
	initExpr := p.parseExpression()
	p.flags.allowIn = true

	if p.is(lexer.In) || p.isContextualKeyword("of") {
		target := p.reinterpretAsPattern(initExpr)
		return p.finishForInOf(startOffset, startLine, startCol, target, isAwait)
	}
	return p.finishCStyleFor(startOffset, startLine, startCol, initExpr)
}

func (p *Parser) finishForInOf(startOffset, startLine, startCol int, left ast.Node, isAwait bool) ast.Node {
	isOf := p.isContextualKeyword("of")
	p.nextRegex()
	var right ast.Node
	if isOf {
		right = p.parseAssign()
	} else {
		right = p.parseExpression()
	}
	p.expectRegexGoalAfter(lexer.RParen)
	var body ast.Node
	p.withLoop(func() { body = p.parseStatement() })
	if isOf {
		return &ast.ForOfStatement{BaseNode: p.span(startOffset, startLine, startCol), Left: left, Right: right, Body: body, Await: isAwait}
	}
	return &ast.ForInStatement{BaseNode: p.span(startOffset, startLine, startCol), Left: left, Right: right, Body: body}
}

func (p *Parser) finishCStyleFor(startOffset, startLine, startCol int, init ast.Node) ast.Node {
	p.expect(lexer.Semicolon)
	var test ast.Node
	if !p.is(lexer.Semicolon) {
		test = p.parseExpression()
	}
	p.expectRegexGoalAfter(lexer.Semicolon)
	var update ast.Node
	if !p.is(lexer.RParen) {
		update = p.parseExpression()
	}
	p.expectRegexGoalAfter(lexer.RParen)
	var body ast.Node
	p.withLoop(func() { body = p.parseStatement() })
	return &ast.ForStatement{BaseNode: p.span(startOffset, startLine, startCol), Init: init, Test: test, Update: update, Body: body}
}

// --- Functions -------------------------------------------------------------

func (p *Parser) parseFunctionDeclaration(async bool) *ast.FunctionDeclaration {
	startOffset, startLine, startCol := p.startPos()
	p.expect(lexer.Function)
	generator := false
	if p.is(lexer.Star) {
		generator = true
		p.nextDefault()
	}
	var id *ast.Identifier
	if p.is(lexer.Ident) {
		id = p.parseBindingIdentifier()
	}
	var params []ast.Node
	var body *ast.BlockStatement
	p.withFunctionScope(async, generator, func() {
		params = p.parseParams()
		body = p.parseFunctionBody()
	})
	return &ast.FunctionDeclaration{
		BaseNode: p.span(startOffset, startLine, startCol), ID: id, Params: params, Body: body,
		Generator: generator, Async: async,
	}
}

func (p *Parser) parseFunctionExpression(async bool) ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.expect(lexer.Function)
	generator := false
	if p.is(lexer.Star) {
		generator = true
		p.nextDefault()
	}
	var id *ast.Identifier
	var params []ast.Node
	var body *ast.BlockStatement
	p.withFunctionScope(async, generator, func() {
		if p.is(lexer.Ident) {
			id = p.parseBindingIdentifier()
		}
		params = p.parseParams()
		body = p.parseFunctionBody()
	})
	return &ast.FunctionExpression{
		BaseNode: p.span(startOffset, startLine, startCol), ID: id, Params: params, Body: body,
		Generator: generator, Async: async,
	}
}

func (p *Parser) parseFunctionBody() *ast.BlockStatement {
	startOffset, startLine, startCol := p.startPos()
	var body []ast.Node
	savedStrict := p.flags.strict
	wasPrologue := true
	p.expect(lexer.LBrace)
	for !p.is(lexer.RBrace) {
		stmt := p.parseStatementListItem()
		if wasPrologue {
			if es, ok := stmt.(*ast.ExpressionStatement); ok && es.Directive != "" {
				if es.Directive == "use strict" {
					p.flags.strict = true
				}
			} else {
				wasPrologue = false
			}
		}
		body = append(body, stmt)
	}
	p.expectRegexGoalAfter(lexer.RBrace)
	if body == nil {
		body = []ast.Node{}
	}
	result := &ast.BlockStatement{BaseNode: p.span(startOffset, startLine, startCol), Body: body}
	p.flags.strict = savedStrict
	return result
}
