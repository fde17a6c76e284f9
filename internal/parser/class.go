package parser

import (
	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/lexer"
)

func (p *Parser) parseClassExpression() ast.Node {
	n := p.parseClass(false)
	return &ast.ClassExpression{BaseNode: n.BaseNode, ID: n.id, SuperClass: n.superClass, Body: n.body}
}

// parseClassDeclaration parses a class declaration. idRequired is false
// only directly after "export default", where an anonymous class is legal.
func (p *Parser) parseClassDeclaration(idRequired bool) *ast.ClassDeclaration {
	n := p.parseClass(true)
	decl := &ast.ClassDeclaration{BaseNode: n.BaseNode, ID: n.id, SuperClass: n.superClass, Body: n.body}
	if idRequired && decl.ID == nil {
		p.failExpected("a class name")
	}
	return decl
}

func (p *Parser) parseClass(asDeclaration bool) *classResultNode {
	startOffset, startLine, startCol := p.startPos()
	p.expect(lexer.Class)

	var id *ast.Identifier
	if p.is(lexer.Ident) && !p.isContextualKeyword("extends") {
		id = p.parseBindingIdentifier()
	}

	var super ast.Node
	if p.is(lexer.Extends) {
		p.nextRegex()
		super = p.parseLeftHandSide()
	}

	body := p.parseClassBody()

	res := &classResultNode{
		id: id, superClass: super, body: body,
	}
	res.BaseNode = p.span(startOffset, startLine, startCol)
	_ = asDeclaration
	return res
}

// classResultNode is a small indirection so parseClass can hand back one
// value that both parseClassExpression and parseClassDeclaration adapt into
// the ESTree node their call site needs.
type classResultNode struct {
	BaseNode   ast.BaseNode
	id         *ast.Identifier
	superClass ast.Node
	body       *ast.ClassBody
}

func (p *Parser) parseClassBody() *ast.ClassBody {
	startOffset, startLine, startCol := p.startPos()
	p.expect(lexer.LBrace)

	privateNames := map[string]bool{}
	pendingStart := len(p.pendingPrivateRefs)
	var members []ast.Node
	sawConstructor := false
	p.withClassBodyScope(privateNames, func() {
		for !p.is(lexer.RBrace) {
			if p.is(lexer.Semicolon) {
				p.nextDefault()
				continue
			}
			m := p.parseClassMember()
			if md, ok := m.(*ast.MethodDefinition); ok && !md.Static && md.Kind == "constructor" {
				if sawConstructor {
					p.fail("a class may only have one constructor")
				}
				sawConstructor = true
			}
			members = append(members, m)
		}
	})
	p.expectRegexGoalAfter(lexer.RBrace)
	p.resolvePendingPrivateRefs(pendingStart, privateNames)
	return &ast.ClassBody{BaseNode: p.span(startOffset, startLine, startCol), Body: members}
}

// resolvePendingPrivateRefs checks every #name reference recorded while
// parsing this class body against its now-complete set of declared private
// names (a reference may occur before its declaration in source order).
// Anything still unresolved is left pending for an enclosing class to
// resolve, or is rejected once the whole program has finished parsing.
func (p *Parser) resolvePendingPrivateRefs(start int, names map[string]bool) {
	kept := p.pendingPrivateRefs[:start:start]
	for _, ref := range p.pendingPrivateRefs[start:] {
		if !names[ref.name] {
			kept = append(kept, ref)
		}
	}
	p.pendingPrivateRefs = kept
}

func (p *Parser) parseClassMember() ast.Node {
	startOffset, startLine, startCol := p.startPos()

	static := false
	if p.isContextualKeyword("static") {
		mark := p.lex.Mark()
		p.nextDefault()
		switch {
		case p.is(lexer.LBrace):
			return p.parseStaticBlock(startOffset, startLine, startCol)
		case p.is(lexer.LParen) || p.is(lexer.Eq) || p.is(lexer.Semicolon) || p.classMemberTerminates():
			// "static" itself is the member name.
			p.lex.Restore(mark)
		default:
			static = true
		}
	}

	async, generator := false, false
	kind := "method"

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
	key, isPrivate := p.parsePropertyKey()
	if isPrivate {
		name := key.(*ast.PrivateIdentifier).Name
		p.flags.privateNames[name] = true
	}

	if p.is(lexer.LParen) {
		isConstructor := !static && !computed && !isPrivate && kind == "method" && !async && !generator && identifierKeyName(key) == "constructor"
		fn := p.parseMethodBody(async, generator)
		mkind := kind
		if mkind == "method" && isConstructor {
			mkind = "constructor"
		}
		return &ast.MethodDefinition{
			BaseNode: p.span(startOffset, startLine, startCol), Key: key, Value: fn,
			Kind: mkind, Static: static, Computed: computed,
		}
	}

	// Field definition (kind forced back to plain property; "get"/"set"
	// without a following "(" means a field literally named get/set).
	var value ast.Node
	if p.is(lexer.Eq) {
		p.nextRegex()
		saved := p.flags.allowAwait
		p.flags.allowAwait = false
		value = p.parseAssign()
		p.flags.allowAwait = saved
	}
	p.consumeClassMemberTerminator()
	return &ast.PropertyDefinition{
		BaseNode: p.span(startOffset, startLine, startCol), Key: key, Value: value,
		Static: static, Computed: computed,
	}
}

func identifierKeyName(n ast.Node) string {
	switch k := n.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.Literal:
		if s, ok := k.Value.(string); ok {
			return s
		}
	}
	return ""
}

func (p *Parser) classMemberTerminates() bool {
	return p.tok().PrecedingLineBreak || p.is(lexer.RBrace)
}

// consumeClassMemberTerminator applies ASI to a field declaration's
// trailing ";".
func (p *Parser) consumeClassMemberTerminator() {
	if p.is(lexer.Semicolon) {
		p.nextDefault()
		return
	}
	if p.is(lexer.RBrace) || p.tok().Kind == lexer.EOF || p.tok().PrecedingLineBreak {
		return
	}
	p.failExpected("\";\"")
}

func (p *Parser) parseStaticBlock(startOffset, startLine, startCol int) ast.Node {
	var body []ast.Node
	p.withFunctionScope(false, false, func() {
		p.flags.allowReturn = false
		block := p.parseBlockStatementBody()
		body = block
	})
	return &ast.StaticBlock{BaseNode: p.span(startOffset, startLine, startCol), Body: body}
}
