package parser

import "github.com/jimmyhmiller/estree-go/internal/lexer"

// consumeSemicolon implements ECMA-262's Automatic Semicolon Insertion
// rules 1-3 for the common "statement ends here" position: an explicit
// ";" is always accepted; otherwise a "}", EOF, or a line break before the
// current token lets the semicolon be inserted silently. Anything else is
// a syntax error. Grounded on the same three-rule shape esbuild's parser
// applies at every statement boundary (lexer.ExpectOrInsertSemicolon).
func (p *Parser) consumeSemicolon() {
	if p.is(lexer.Semicolon) {
		p.nextRegex()
		return
	}
	if p.is(lexer.RBrace) || p.tok().Kind == lexer.EOF || p.tok().PrecedingLineBreak {
		return
	}
	p.failExpected("\";\"")
}
