// Package estree is the public, programmatic entry point: parse ECMAScript
// source text into an ESTree-shaped internal/ast.Program. Grounded on the
// small top-level API esbuild exposes from its own api package (a handful
// of functions wrapping an internal parser plus an Options struct), cut
// down to exactly the surface this parser needs.
package estree

import (
	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/lexer"
	"github.com/jimmyhmiller/estree-go/internal/parser"
)

// SourceType selects the goal symbol used to parse a file, matching
// ESTree's Program.sourceType field.
type SourceType string

const (
	Script SourceType = "script"
	Module SourceType = "module"
)

// Options controls how source text is parsed. The zero value parses as a
// Script.
type Options struct {
	SourceType SourceType
}

// Parse parses src as either a Script or a Module, per opts.SourceType.
func Parse(src string, opts Options) (*ast.Program, error) {
	sourceType := string(opts.SourceType)
	if sourceType == "" {
		sourceType = string(Script)
	}
	return parser.Parse(src, sourceType)
}

// ParseScript parses src as a Script (SourceType: "script").
func ParseScript(src string) (*ast.Program, error) {
	return parser.Parse(src, string(Script))
}

// ParseModule parses src as a Module (SourceType: "module").
func ParseModule(src string) (*ast.Program, error) {
	return parser.Parse(src, string(Module))
}

// ParseAutoDetect parses src as a Module if it contains any import/export
// keyword, and as a Script otherwise. A source without import/export that
// parses only as a Module (top-level await, for example) is returned as a
// Module. When the Module parse fails and an import/export keyword is
// present, that Module error is returned as-is rather than a confusing
// Script one. Whether the keyword is present is decided by a cheap lexical
// scan of the whole token stream (looksLikeModule), not by a full parse.
func ParseAutoDetect(src string) (*ast.Program, error) {
	isModule := looksLikeModule(src)
	prog, modErr := ParseModule(src)
	if modErr == nil {
		if !isModule {
			if scriptProg, err := ParseScript(src); err == nil {
				return scriptProg, nil
			}
		}
		return prog, nil
	}
	if isModule {
		return nil, modErr
	}
	return ParseScript(src)
}

// looksLikeModule does a best-effort token scan for an import or export
// keyword, without fully parsing. If tokenizing itself fails, it reports
// true so the caller keeps the original Module error rather than risk
// masking a real failure with a confusing Script-goal one.
func looksLikeModule(src string) (found bool) {
	defer func() {
		if recover() != nil {
			found = true
		}
	}()
	lex := lexer.New(src)
	for lex.Token.Kind != lexer.EOF {
		if lex.Token.Kind == lexer.Import || lex.Token.Kind == lexer.Export {
			return true
		}
		lex.Next(lexer.GoalDefault)
	}
	return false
}
