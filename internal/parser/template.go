package parser

import (
	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/lexer"
)

// parseTemplateLiteral parses a template literal, alternating quasis
// (TemplateElement) with substitution expressions. Re-entry after each
// "${...}" substitution is delegated to the lexer's ContinueTemplate,
// which rescans the current "}" as the start of the next template part;
// this parser only ever decides *when* a "}" belongs to a template versus
// a nested block or object literal, by virtue of calling it at exactly the
// point the substitution expression production finishes.
func (p *Parser) parseTemplateLiteral() *ast.TemplateLiteral {
	return p.parseTemplateLiteralWithTag(false)
}

// parseTemplateLiteralWithTag parses a template literal. An invalid escape
// sequence in a quasi is a SyntaxError unless the template is tagged, per
// ECMA-262 12.2.9.1: only a tag function can see a null cooked value.
func (p *Parser) parseTemplateLiteralWithTag(tagged bool) *ast.TemplateLiteral {
	startOffset, startLine, startCol := p.startPos()
	var quasis []*ast.TemplateElement
	var exprs []ast.Node

	for {
		t := p.tok()
		qStartOffset, qStartLine, qStartCol := t.StartOffset, t.StartLine, t.StartColumn
		tail := t.Tail
		cooked := t.Cooked
		cookedValid := t.CookedValid
		raw := t.StringValue

		if !cookedValid && !tagged {
			p.fail("invalid escape sequence in template literal")
		}

		if tail {
			p.nextDefault()
		} else {
			p.nextRegex()
		}
		quasis = append(quasis, &ast.TemplateElement{
			BaseNode: p.span(qStartOffset, qStartLine, qStartCol),
			Tail:     tail,
			Value:    ast.TemplateElementValue{Raw: raw, Cooked: cooked, CookedValid: cookedValid},
		})
		if tail {
			break
		}

		saved := p.flags.allowIn
		p.flags.allowIn = true
		exprs = append(exprs, p.parseExpression())
		p.flags.allowIn = saved

		if !p.is(lexer.RBrace) {
			p.failExpected("\"}\"")
		}
		p.lex.ContinueTemplate()
	}

	return &ast.TemplateLiteral{BaseNode: p.span(startOffset, startLine, startCol), Quasis: quasis, Expressions: exprs}
}
