package parser

import (
	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/diag"
	"github.com/jimmyhmiller/estree-go/internal/lexer"
)

// reinterpretAsPattern converts an already-parsed expression into the
// equivalent Pattern/destructuring-target shape required on the left side
// of "=" and inside a ForInStatement/ForOfStatement's Left. This mirrors
// the CoverInitializedName / ArrayAssignmentPattern /
// ObjectAssignmentPattern "reinterpret, don't reparse" approach ECMA-262's
// cover grammars require; grounded on esbuild's convertExprToBinding.
func (p *Parser) reinterpretAsPattern(n ast.Node) ast.Node {
	switch e := n.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return e
	case *ast.ArrayExpression:
		elems := make([]ast.Node, len(e.Elements))
		for i, el := range e.Elements {
			if el == nil {
				continue
			}
			if sp, ok := el.(*ast.SpreadElement); ok {
				elems[i] = &ast.RestElement{BaseNode: sp.BaseNode, Argument: p.reinterpretAsPattern(sp.Argument)}
				continue
			}
			elems[i] = p.reinterpretAsPattern(el)
		}
		return &ast.ArrayPattern{BaseNode: e.BaseNode, Elements: elems}
	case *ast.ObjectExpression:
		props := make([]ast.Node, len(e.Properties))
		for i, pr := range e.Properties {
			switch m := pr.(type) {
			case *ast.SpreadElement:
				props[i] = &ast.RestElement{BaseNode: m.BaseNode, Argument: p.reinterpretAsPattern(m.Argument)}
			case *ast.Property:
				p.clearCoverInitializedName(m)
				np := *m
				np.Value = p.reinterpretAsPattern(m.Value)
				props[i] = &np
			default:
				props[i] = pr
			}
		}
		return &ast.ObjectPattern{BaseNode: e.BaseNode, Properties: props}
	case *ast.AssignmentExpression:
		if e.Operator != "=" {
			p.failExpectedNode("a destructuring target", e)
		}
		return &ast.AssignmentPattern{BaseNode: e.BaseNode, Left: p.reinterpretAsPattern(e.Left), Right: e.Right}
	case *ast.AssignmentPattern:
		return e
	case *ast.RestElement, *ast.ArrayPattern, *ast.ObjectPattern:
		return e
	default:
		p.failExpectedNode("a destructuring target", e)
		return nil
	}
}

func (p *Parser) failExpectedNode(what string, _ ast.Node) {
	p.fail("Invalid left-hand side: expected %s", what)
}

// --- Arrow-function lookahead ---------------------------------------------

// couldBeAsyncArrow is a best-effort syntactic filter: "async" is already
// the current token; an async arrow must be followed (with no line break
// before the params) by either an identifier and "=>" or a "(".
func (p *Parser) couldBeAsyncArrow() bool {
	mark := p.lex.Mark()
	p.nextDefault()
	ok := !p.tok().PrecedingLineBreak && (p.is(lexer.Ident) || p.is(lexer.LParen))
	p.lex.Restore(mark)
	return ok
}

// tryParseAsyncArrow attempts to parse "async" IdentifierName "=>" Body or
// "async" "(" ArrowParams ")" "=>" Body, restoring the lexer and returning
// nil if the lookahead doesn't pan out (so the caller can fall back to
// parsing "async" as a plain identifier expression).
func (p *Parser) tryParseAsyncArrow(startOffset, startLine, startCol int) ast.Node {
	mark := p.lex.Mark()
	p.nextDefault() // consume "async"

	if p.is(lexer.Ident) && !p.tok().PrecedingLineBreak {
		paramName := p.tok().IdentifierName
		pStart, pLine, pCol := p.startPos()
		p.nextDefault()
		if !p.is(lexer.Arrow) || p.tok().PrecedingLineBreak {
			p.lex.Restore(mark)
			return nil
		}
		param := &ast.Identifier{BaseNode: p.span(pStart, pLine, pCol), Name: paramName}
		return p.finishArrow(startOffset, startLine, startCol, []ast.Node{param}, true)
	}

	if p.is(lexer.LParen) {
		params, ok := p.tryParseArrowParams()
		if !ok || !p.is(lexer.Arrow) || p.tok().PrecedingLineBreak {
			p.lex.Restore(mark)
			return nil
		}
		return p.finishArrow(startOffset, startLine, startCol, params, true)
	}

	p.lex.Restore(mark)
	return nil
}

// tryParseSingleParamArrow handles the common "x => ..." shorthand (no
// parens around a single identifier parameter).
func (p *Parser) tryParseSingleParamArrow(startOffset, startLine, startCol int) ast.Node {
	mark := p.lex.Mark()
	name := p.bindingIdentifierName()
	p.nextDefault()
	if !p.is(lexer.Arrow) || p.tok().PrecedingLineBreak {
		p.lex.Restore(mark)
		return nil
	}
	param := &ast.Identifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}
	return p.finishArrow(startOffset, startLine, startCol, []ast.Node{param}, false)
}

// tryParseParenArrow handles "(" ArrowParams ")" "=>" Body, the
// CoverParenthesizedExpressionAndArrowParameterList resolution. On failure
// (it was an ordinary parenthesized expression) it restores the lexer and
// returns nil so parseAssign falls through to parseConditional, which
// re-parses the parenthesized expression for real.
func (p *Parser) tryParseParenArrow(startOffset, startLine, startCol int) ast.Node {
	mark := p.lex.Mark()
	params, ok := p.tryParseArrowParams()
	if !ok || !p.is(lexer.Arrow) || p.tok().PrecedingLineBreak {
		p.lex.Restore(mark)
		return nil
	}
	return p.finishArrow(startOffset, startLine, startCol, params, false)
}

// tryParseArrowParams speculatively parses "(" a comma-separated list of
// binding targets (with defaults/rest) ")" and reports whether it
// succeeded without a fatal diagnostic. A *diag.Error panic raised inside
// this speculative region is caught and treated as "not an arrow param
// list"; any other panic is re-raised, so only diag.Error panics are
// swallowed here.
func (p *Parser) tryParseArrowParams() (params []ast.Node, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isDiag := r.(*diag.Error); !isDiag {
				panic(r)
			}
			ok = false
			params = nil
		}
	}()
	p.expectRegexGoalAfter(lexer.LParen)
	var list []ast.Node
	for !p.is(lexer.RParen) {
		if p.is(lexer.Ellipsis) {
			rStart, rLine, rCol := p.startPos()
			p.nextRegex()
			target := p.parseBindingTarget()
			list = append(list, &ast.RestElement{BaseNode: p.span(rStart, rLine, rCol), Argument: target})
		} else {
			list = append(list, p.parseBindingElement())
		}
		if p.is(lexer.Comma) {
			p.nextRegex()
			continue
		}
		break
	}
	p.expect(lexer.RParen)
	if list == nil {
		list = []ast.Node{}
	}
	return list, true
}

func (p *Parser) finishArrow(startOffset, startLine, startCol int, params []ast.Node, async bool) ast.Node {
	var body ast.Node
	isExpr := false
	p.withArrowScope(func() {
		p.flags.allowAwait = async || p.flags.allowAwait
		p.nextRegex() // consume "=>"
		if p.is(lexer.LBrace) {
			body = p.parseFunctionBody()
		} else {
			isExpr = true
			body = p.parseAssign()
		}
	})
	return &ast.ArrowFunctionExpression{
		BaseNode: p.span(startOffset, startLine, startCol), Params: params, Body: body,
		Expression: isExpr, Async: async,
	}
}

// --- Binding targets --------------------------------------------------

// parseBindingTarget parses a BindingIdentifier or a destructuring
// BindingPattern (array/object), without a default value.
func (p *Parser) parseBindingTarget() ast.Node {
	switch {
	case p.is(lexer.LBracket):
		return p.parseArrayBindingPattern()
	case p.is(lexer.LBrace):
		return p.parseObjectBindingPattern()
	default:
		return p.parseBindingIdentifier()
	}
}

func (p *Parser) parseBindingIdentifier() *ast.Identifier {
	startOffset, startLine, startCol := p.startPos()
	t := p.tok()
	if t.Kind != lexer.Ident {
		p.failExpected("a binding identifier")
	}
	name := t.IdentifierName
	if name == "yield" && (p.flags.strict || p.flags.allowYield) {
		p.fail("%q is not a valid binding identifier here", name)
	}
	if name == "await" && p.flags.allowAwait {
		p.fail("%q is not a valid binding identifier here", name)
	}
	if p.flags.strict && lexer.StrictReservedWords[name] {
		p.fail("%q is a reserved identifier in strict mode", name)
	}
	p.nextDefault()
	return &ast.Identifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}
}

// parseBindingElement parses a single element of a parameter/pattern list:
// a binding target, optionally followed by a default-value initializer.
func (p *Parser) parseBindingElement() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	target := p.parseBindingTarget()
	if p.is(lexer.Eq) {
		p.nextRegex()
		def := p.parseAssign()
		return &ast.AssignmentPattern{BaseNode: p.span(startOffset, startLine, startCol), Left: target, Right: def}
	}
	return target
}

func (p *Parser) parseArrayBindingPattern() ast.Node {
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
			rStart, rLine, rCol := p.startPos()
			p.nextRegex()
			target := p.parseBindingTarget()
			elems = append(elems, &ast.RestElement{BaseNode: p.span(rStart, rLine, rCol), Argument: target})
		} else {
			elems = append(elems, p.parseBindingElement())
		}
		if p.is(lexer.Comma) {
			p.nextRegex()
		} else {
			break
		}
	}
	p.expectRegexGoalAfter(lexer.RBracket)
	return &ast.ArrayPattern{BaseNode: p.span(startOffset, startLine, startCol), Elements: elems}
}

func (p *Parser) parseObjectBindingPattern() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault()
	var props []ast.Node
	for !p.is(lexer.RBrace) {
		if p.is(lexer.Ellipsis) {
			rStart, rLine, rCol := p.startPos()
			p.nextRegex()
			arg := p.parseBindingIdentifier()
			props = append(props, &ast.RestElement{BaseNode: p.span(rStart, rLine, rCol), Argument: arg})
		} else {
			props = append(props, p.parseObjectBindingProperty())
		}
		if p.is(lexer.Comma) {
			p.nextDefault()
		} else {
			break
		}
	}
	p.expectRegexGoalAfter(lexer.RBrace)
	return &ast.ObjectPattern{BaseNode: p.span(startOffset, startLine, startCol), Properties: props}
}

func (p *Parser) parseObjectBindingProperty() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	computed := p.is(lexer.LBracket)
	key, _ := p.parsePropertyKey()

	var value ast.Node
	shorthand := false
	switch {
	case p.is(lexer.Colon):
		p.nextRegex()
		value = p.parseBindingElement()
	default:
		ident, ok := key.(*ast.Identifier)
		if !ok {
			p.fail("expected a shorthand binding property")
		}
		shorthand = true
		if p.is(lexer.Eq) {
			p.nextRegex()
			def := p.parseAssign()
			value = &ast.AssignmentPattern{BaseNode: p.span(startOffset, startLine, startCol), Left: ident, Right: def}
		} else {
			value = ident
		}
	}
	return &ast.Property{
		BaseNode: p.span(startOffset, startLine, startCol), Key: key, Value: value,
		Kind: "init", Shorthand: shorthand, Computed: computed,
	}
}

// parseParams parses a parenthesized FormalParameters list for a function
// declaration/expression/method.
func (p *Parser) parseParams() []ast.Node {
	p.expectRegexGoalAfter(lexer.LParen)
	var params []ast.Node
	for !p.is(lexer.RParen) {
		if p.is(lexer.Ellipsis) {
			rStart, rLine, rCol := p.startPos()
			p.nextRegex()
			target := p.parseBindingTarget()
			params = append(params, &ast.RestElement{BaseNode: p.span(rStart, rLine, rCol), Argument: target})
		} else {
			params = append(params, p.parseBindingElement())
		}
		if p.is(lexer.Comma) {
			p.nextRegex()
			continue
		}
		break
	}
	p.expect(lexer.RParen)
	if params == nil {
		params = []ast.Node{}
	}
	return params
}
