package parser

import (
	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/lexer"
)

// parseImportDeclaration parses every ImportDeclaration form: default,
// namespace, named, combinations thereof, and the bare "import './x'"
// side-effect-only form, plus a trailing import attributes clause
// ("with { type: 'json' }").
func (p *Parser) parseImportDeclaration() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault()

	var specifiers []ast.Node

	if p.is(lexer.StringLiteral) {
		source := p.parseStringLiteral()
		attrs := p.parseImportAttributesClause()
		p.consumeSemicolon()
		return &ast.ImportDeclaration{BaseNode: p.span(startOffset, startLine, startCol), Specifiers: []ast.Node{}, Source: source, Attributes: attrs}
	}

	if p.is(lexer.Ident) {
		local := p.parseBindingIdentifier()
		specifiers = append(specifiers, &ast.ImportDefaultSpecifier{BaseNode: local.BaseNode, Local: local})
		if p.is(lexer.Comma) {
			p.nextDefault()
		}
	}

	if p.is(lexer.Star) {
		sStart, sLine, sCol := p.startPos()
		p.nextDefault()
		p.expectContextualKeyword("as")
		local := p.parseBindingIdentifier()
		specifiers = append(specifiers, &ast.ImportNamespaceSpecifier{BaseNode: p.span(sStart, sLine, sCol), Local: local})
	} else if p.is(lexer.LBrace) {
		specifiers = append(specifiers, p.parseNamedImportSpecifiers()...)
	}

	p.expectContextualKeyword("from")
	source := p.parseStringLiteral()
	attrs := p.parseImportAttributesClause()
	p.consumeSemicolon()

	if specifiers == nil {
		specifiers = []ast.Node{}
	}
	return &ast.ImportDeclaration{BaseNode: p.span(startOffset, startLine, startCol), Specifiers: specifiers, Source: source, Attributes: attrs}
}

func (p *Parser) parseNamedImportSpecifiers() []ast.Node {
	p.nextDefault()
	var specs []ast.Node
	for !p.is(lexer.RBrace) {
		sStart, sLine, sCol := p.startPos()
		imported := p.parseModuleExportName()
		var local *ast.Identifier
		if p.isContextualKeyword("as") {
			p.nextDefault()
			local = p.parseBindingIdentifier()
		} else {
			ident, ok := imported.(*ast.Identifier)
			if !ok {
				p.fail("a string import name requires an explicit \"as\" binding")
			}
			local = ident
		}
		specs = append(specs, &ast.ImportSpecifier{BaseNode: p.span(sStart, sLine, sCol), Imported: imported, Local: local})
		if p.is(lexer.Comma) {
			p.nextDefault()
			continue
		}
		break
	}
	p.expect(lexer.RBrace)
	return specs
}

// parseModuleExportName parses the ModuleExportName production: either a
// binding-identifier-shaped name or (2022+) a plain string literal, used on
// both sides of import/export specifiers.
func (p *Parser) parseModuleExportName() ast.Node {
	if p.is(lexer.StringLiteral) {
		return p.parseStringLiteral()
	}
	startOffset, startLine, startCol := p.startPos()
	name := p.identifierNameAnyKeyword()
	p.nextDefault()
	return &ast.Identifier{BaseNode: p.span(startOffset, startLine, startCol), Name: name}
}

func (p *Parser) parseStringLiteral() *ast.Literal {
	startOffset, startLine, startCol := p.startPos()
	if !p.is(lexer.StringLiteral) {
		p.failExpected("a string literal")
	}
	raw, val := p.tok().Raw, p.tok().StringValue
	p.nextDefault()
	return &ast.Literal{BaseNode: p.span(startOffset, startLine, startCol), Kind: ast.LiteralString, Raw: raw, Value: val, HasValue: true}
}

// parseImportAttributesClause parses an optional "with { ... }" / legacy
// "assert { ... }" attributes clause.
func (p *Parser) parseImportAttributesClause() []*ast.ImportAttribute {
	if !p.is(lexer.With) && !p.isContextualKeyword("assert") {
		return nil
	}
	p.nextDefault()
	p.expect(lexer.LBrace)
	var attrs []*ast.ImportAttribute
	for !p.is(lexer.RBrace) {
		aStart, aLine, aCol := p.startPos()
		key := p.parseModuleExportName()
		p.expect(lexer.Colon)
		value := p.parseStringLiteral()
		attrs = append(attrs, &ast.ImportAttribute{BaseNode: p.span(aStart, aLine, aCol), Key: key, Value: value})
		if p.is(lexer.Comma) {
			p.nextDefault()
			continue
		}
		break
	}
	p.expect(lexer.RBrace)
	return attrs
}

// parseExportDeclaration parses every ExportDeclaration form.
func (p *Parser) parseExportDeclaration() ast.Node {
	startOffset, startLine, startCol := p.startPos()
	p.nextDefault()

	switch {
	case p.is(lexer.Default):
		return p.parseExportDefault(startOffset, startLine, startCol)
	case p.is(lexer.Star):
		return p.parseExportAll(startOffset, startLine, startCol)
	case p.is(lexer.LBrace):
		return p.parseExportNamed(startOffset, startLine, startCol)
	default:
		decl := p.parseExportableDeclaration()
		return &ast.ExportNamedDeclaration{BaseNode: p.span(startOffset, startLine, startCol), Declaration: decl}
	}
}

// parseExportableDeclaration parses the declaration forms that can follow
// a bare "export": var/let/const, function, async function, class.
func (p *Parser) parseExportableDeclaration() ast.Node {
	switch {
	case p.is(lexer.Var):
		return p.parseVariableStatement("var")
	case p.isContextualKeyword("let"):
		return p.parseVariableStatement("let")
	case p.is(lexer.Const):
		return p.parseVariableStatement("const")
	case p.is(lexer.Function):
		return p.parseFunctionDeclaration(false)
	case p.isContextualKeyword("async"):
		p.nextDefault()
		return p.parseFunctionDeclaration(true)
	case p.is(lexer.Class):
		return p.parseClassDeclaration(true)
	default:
		p.failExpected("a declaration")
		return nil
	}
}

func (p *Parser) parseExportDefault(startOffset, startLine, startCol int) ast.Node {
	p.nextDefault()
	var decl ast.Node
	switch {
	case p.is(lexer.Function):
		decl = p.parseFunctionDeclaration(false)
	case p.isContextualKeyword("async") && p.asyncStartsFunctionDeclaration():
		p.nextDefault()
		decl = p.parseFunctionDeclaration(true)
	case p.is(lexer.Class):
		decl = p.parseClassDeclaration(false)
	default:
		decl = p.parseAssign()
		p.consumeSemicolon()
	}
	return &ast.ExportDefaultDeclaration{BaseNode: p.span(startOffset, startLine, startCol), Declaration: decl}
}

func (p *Parser) parseExportAll(startOffset, startLine, startCol int) ast.Node {
	p.nextDefault()
	var exported ast.Node
	if p.isContextualKeyword("as") {
		p.nextDefault()
		exported = p.parseModuleExportName()
	}
	p.expectContextualKeyword("from")
	source := p.parseStringLiteral()
	attrs := p.parseImportAttributesClause()
	p.consumeSemicolon()
	return &ast.ExportAllDeclaration{BaseNode: p.span(startOffset, startLine, startCol), Exported: exported, Source: source, Attributes: attrs}
}

func (p *Parser) parseExportNamed(startOffset, startLine, startCol int) ast.Node {
	p.nextDefault()
	var specs []*ast.ExportSpecifier
	for !p.is(lexer.RBrace) {
		sStart, sLine, sCol := p.startPos()
		local := p.parseModuleExportName()
		exported := local
		if p.isContextualKeyword("as") {
			p.nextDefault()
			exported = p.parseModuleExportName()
		}
		specs = append(specs, &ast.ExportSpecifier{BaseNode: p.span(sStart, sLine, sCol), Local: local, Exported: exported})
		if p.is(lexer.Comma) {
			p.nextDefault()
			continue
		}
		break
	}
	p.expect(lexer.RBrace)

	var source *ast.Literal
	var attrs []*ast.ImportAttribute
	if p.isContextualKeyword("from") {
		p.nextDefault()
		source = p.parseStringLiteral()
		attrs = p.parseImportAttributesClause()
	}
	p.consumeSemicolon()
	return &ast.ExportNamedDeclaration{BaseNode: p.span(startOffset, startLine, startCol), Specifiers: specs, Source: source, Attributes: attrs}
}
