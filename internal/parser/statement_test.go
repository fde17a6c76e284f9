package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/parser"
)

func parseScript(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src, "script")
	require.NoError(t, err)
	return prog
}

func parseScriptErr(t *testing.T, src string) error {
	t.Helper()
	_, err := parser.Parse(src, "script")
	return err
}

func TestVariableDeclarationKinds(t *testing.T) {
	for _, kind := range []string{"var", "let", "const"} {
		prog := parseScript(t, kind+" x = 1;")
		decl := prog.Body[0].(*ast.VariableDeclaration)
		require.Equal(t, kind, decl.Kind)
		require.Len(t, decl.Declarations, 1)
		require.Equal(t, "x", decl.Declarations[0].ID.(*ast.Identifier).Name)
	}
}

func TestLetAsIdentifierWhenNotFollowedByBindingTarget(t *testing.T) {
	// "let" followed by "(" cannot start a LexicalDeclaration, so it must be
	// parsed as a plain identifier expression statement.
	prog := parseScript(t, "let(1);")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	call := stmt.Expression.(*ast.CallExpression)
	require.Equal(t, "let", call.Callee.(*ast.Identifier).Name)
}

func TestASIInsertsBeforeClosingBrace(t *testing.T) {
	prog := parseScript(t, "{ 1 }")
	block := prog.Body[0].(*ast.BlockStatement)
	require.Len(t, block.Body, 1)
}

func TestASIInsertsAtEOF(t *testing.T) {
	prog := parseScript(t, "1")
	require.Len(t, prog.Body, 1)
}

func TestASIInsertsOnLineBreak(t *testing.T) {
	prog := parseScript(t, "a = 1\nb = 2")
	require.Len(t, prog.Body, 2)
}

func TestASIRejectsTwoStatementsOnOneLineWithoutSemicolon(t *testing.T) {
	err := parseScriptErr(t, "a = 1 b = 2")
	require.Error(t, err)
}

func TestReturnStatementASIOnLineBreak(t *testing.T) {
	// A line break after "return" forces an empty return, per the
	// no-LineTerminator-here restriction: the "1" becomes a separate,
	// unreachable expression statement rather than the return's argument.
	prog := parseScript(t, "function f() {\n  return\n  1\n}")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	ret := fn.Body.Body[0].(*ast.ReturnStatement)
	require.Nil(t, ret.Argument)
	require.Len(t, fn.Body.Body, 2)
}

func TestThrowDisallowsLineBreakBeforeArgument(t *testing.T) {
	err := parseScriptErr(t, "throw\n1;")
	require.Error(t, err)
}

func TestIfElseStatement(t *testing.T) {
	prog := parseScript(t, "if (a) b(); else c();")
	ifStmt := prog.Body[0].(*ast.IfStatement)
	require.NotNil(t, ifStmt.Consequent)
	require.NotNil(t, ifStmt.Alternate)
}

func TestForStatementAllThreeParts(t *testing.T) {
	prog := parseScript(t, "for (let i = 0; i < 10; i++) {}")
	f := prog.Body[0].(*ast.ForStatement)
	require.NotNil(t, f.Init)
	require.NotNil(t, f.Test)
	require.NotNil(t, f.Update)
}

func TestForOfStatement(t *testing.T) {
	prog := parseScript(t, "for (const x of xs) {}")
	f := prog.Body[0].(*ast.ForOfStatement)
	require.False(t, f.Await)
	decl := f.Left.(*ast.VariableDeclaration)
	require.Equal(t, "const", decl.Kind)
}

func TestForAwaitOfStatement(t *testing.T) {
	prog, err := parser.Parse("async function f() { for await (const x of xs) {} }", "script")
	require.NoError(t, err)
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	f := fn.Body.Body[0].(*ast.ForOfStatement)
	require.True(t, f.Await)
}

func TestForInStatementWithExistingBinding(t *testing.T) {
	prog := parseScript(t, "for (x in xs) {}")
	f := prog.Body[0].(*ast.ForInStatement)
	require.IsType(t, &ast.Identifier{}, f.Left)
}

func TestLabeledStatement(t *testing.T) {
	prog := parseScript(t, "outer: while (true) { break outer; }")
	label := prog.Body[0].(*ast.LabeledStatement)
	require.Equal(t, "outer", label.Label.Name)
}

func TestSwitchStatementWithDefault(t *testing.T) {
	prog := parseScript(t, "switch (x) { case 1: a(); break; default: b(); }")
	sw := prog.Body[0].(*ast.SwitchStatement)
	require.Len(t, sw.Cases, 2)
	require.Nil(t, sw.Cases[1].Test)
}

func TestSwitchStatementRejectsSecondDefault(t *testing.T) {
	err := parseScriptErr(t, "switch (x) { default: a(); default: b(); }")
	require.Error(t, err)
}

func TestTryCatchFinally(t *testing.T) {
	prog := parseScript(t, "try { a(); } catch (e) { b(); } finally { c(); }")
	tryStmt := prog.Body[0].(*ast.TryStatement)
	require.NotNil(t, tryStmt.Handler)
	require.NotNil(t, tryStmt.Finalizer)
	require.Equal(t, "e", tryStmt.Handler.Param.(*ast.Identifier).Name)
}

func TestTryCatchWithoutBindingParam(t *testing.T) {
	prog := parseScript(t, "try { a(); } catch { b(); }")
	tryStmt := prog.Body[0].(*ast.TryStatement)
	require.Nil(t, tryStmt.Handler.Param)
}

func TestTryRequiresCatchOrFinally(t *testing.T) {
	err := parseScriptErr(t, "try { a(); }")
	require.Error(t, err)
}

func TestDoWhileSemicolonIsOptional(t *testing.T) {
	prog := parseScript(t, "do a(); while (x)")
	_, ok := prog.Body[0].(*ast.DoWhileStatement)
	require.True(t, ok)
}

func TestUseStrictDirectivePrologueIsRecorded(t *testing.T) {
	prog := parseScript(t, "\"use strict\";\nx;")
	first := prog.Body[0].(*ast.ExpressionStatement)
	require.Equal(t, "use strict", first.Directive)
}

func TestFunctionDeclarationGeneratorAndAsyncFlags(t *testing.T) {
	prog := parseScript(t, "function* g() {}")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	require.True(t, fn.Generator)
	require.False(t, fn.Async)

	prog = parseScript(t, "async function f() {}")
	fn = prog.Body[0].(*ast.FunctionDeclaration)
	require.True(t, fn.Async)
	require.False(t, fn.Generator)
}

func TestDestructuringDeclarationRequiresInitializer(t *testing.T) {
	err := parseScriptErr(t, "let { x };")
	require.Error(t, err)
}

func TestVarDestructuringWithoutInitializerIsLegal(t *testing.T) {
	prog := parseScript(t, "var { x };")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	require.Nil(t, decl.Declarations[0].Init)
}

func TestWithStatementAllowedInSloppyModeRejectedInStrict(t *testing.T) {
	prog := parseScript(t, "with (x) { y; }")
	_, ok := prog.Body[0].(*ast.WithStatement)
	require.True(t, ok)

	err := parseScriptErr(t, `"use strict"; with (x) { y; }`)
	require.Error(t, err)
}
