package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/parser"
)

func exprOf(t *testing.T, src string) ast.Node {
	t.Helper()
	prog := parseScript(t, src)
	return prog.Body[0].(*ast.ExpressionStatement).Expression
}

func TestBinaryOperatorPrecedence(t *testing.T) {
	expr := exprOf(t, "1 + 2 * 3;")
	bin := expr.(*ast.BinaryExpression)
	require.Equal(t, "+", bin.Operator)
	require.Equal(t, float64(1), bin.Left.(*ast.Literal).Value)
	rhs := bin.Right.(*ast.BinaryExpression)
	require.Equal(t, "*", rhs.Operator)
}

func TestExponentIsRightAssociative(t *testing.T) {
	expr := exprOf(t, "2 ** 3 ** 2;")
	bin := expr.(*ast.BinaryExpression)
	require.Equal(t, "**", bin.Operator)
	require.Equal(t, float64(2), bin.Left.(*ast.Literal).Value)
	rhs := bin.Right.(*ast.BinaryExpression)
	require.Equal(t, "**", rhs.Operator)
}

func TestLogicalOperatorsBuildLogicalExpressionNotBinary(t *testing.T) {
	for _, op := range []string{"&&", "||", "??"} {
		expr := exprOf(t, "a "+op+" b;")
		logical, ok := expr.(*ast.LogicalExpression)
		require.True(t, ok, "operator %q should produce a LogicalExpression", op)
		require.Equal(t, op, logical.Operator)
	}
}

func TestNullishCoalescingBindsLooserThanLogicalOr(t *testing.T) {
	expr := exprOf(t, "a ?? b || c;")
	outer := expr.(*ast.LogicalExpression)
	require.Equal(t, "??", outer.Operator)
	inner := outer.Right.(*ast.LogicalExpression)
	require.Equal(t, "||", inner.Operator)
}

func TestOptionalChainingWrapsInChainExpression(t *testing.T) {
	expr := exprOf(t, "a?.b.c;")
	chain, ok := expr.(*ast.ChainExpression)
	require.True(t, ok)
	outer := chain.Expression.(*ast.MemberExpression)
	require.False(t, outer.Optional)
	inner := outer.Object.(*ast.MemberExpression)
	require.True(t, inner.Optional)
}

func TestOptionalCallChaining(t *testing.T) {
	expr := exprOf(t, "a?.()?.b;")
	chain := expr.(*ast.ChainExpression)
	outer := chain.Expression.(*ast.MemberExpression)
	require.True(t, outer.Optional)
	call := outer.Object.(*ast.CallExpression)
	require.True(t, call.Optional)
}

func TestNonOptionalExpressionIsNotWrappedInChainExpression(t *testing.T) {
	expr := exprOf(t, "a.b.c;")
	_, ok := expr.(*ast.ChainExpression)
	require.False(t, ok)
}

func TestLogicalAssignmentOperators(t *testing.T) {
	for _, op := range []string{"&&=", "||=", "??="} {
		expr := exprOf(t, "a " + op + " b;")
		assign := expr.(*ast.AssignmentExpression)
		require.Equal(t, op, assign.Operator)
	}
}

func TestSpreadInArrayLiteral(t *testing.T) {
	expr := exprOf(t, "[1, ...a, 2];")
	arr := expr.(*ast.ArrayExpression)
	require.Len(t, arr.Elements, 3)
	_, ok := arr.Elements[1].(*ast.SpreadElement)
	require.True(t, ok)
}

func TestArrayLiteralElisionProducesNilElement(t *testing.T) {
	expr := exprOf(t, "[1, , 3];")
	arr := expr.(*ast.ArrayExpression)
	require.Len(t, arr.Elements, 3)
	require.Nil(t, arr.Elements[1])
}

func TestObjectLiteralShorthandAndComputedAndMethods(t *testing.T) {
	expr := exprOf(t, "({ x, [y]: 1, m() {}, get g() {}, set s(v) {} });")
	obj := expr.(*ast.ObjectExpression)
	require.Len(t, obj.Properties, 5)

	shorthand := obj.Properties[0].(*ast.Property)
	require.True(t, shorthand.Shorthand)

	computed := obj.Properties[1].(*ast.Property)
	require.True(t, computed.Computed)

	method := obj.Properties[2].(*ast.Property)
	require.True(t, method.Method)

	getter := obj.Properties[3].(*ast.Property)
	require.Equal(t, "get", getter.Kind)
}

func TestObjectLiteralSpread(t *testing.T) {
	expr := exprOf(t, "({ ...a, b: 1 });")
	obj := expr.(*ast.ObjectExpression)
	_, ok := obj.Properties[0].(*ast.SpreadElement)
	require.True(t, ok)
}

func TestDestructuringAssignmentArrayAndObjectPatterns(t *testing.T) {
	expr := exprOf(t, "[a, ...b] = c;")
	assign := expr.(*ast.AssignmentExpression)
	pattern := assign.Left.(*ast.ArrayPattern)
	require.Len(t, pattern.Elements, 2)
	_, ok := pattern.Elements[1].(*ast.RestElement)
	require.True(t, ok)

	expr = exprOf(t, "({ a, b: c } = d);")
	assign = expr.(*ast.AssignmentExpression)
	objPattern := assign.Left.(*ast.ObjectPattern)
	require.Len(t, objPattern.Properties, 2)
}

func TestCoverInitializedNameLegalOnlyAsDestructuringTarget(t *testing.T) {
	expr := exprOf(t, "({ a = 1 } = {});")
	assign := expr.(*ast.AssignmentExpression)
	objPattern := assign.Left.(*ast.ObjectPattern)
	prop := objPattern.Properties[0].(*ast.Property)
	_, ok := prop.Value.(*ast.AssignmentPattern)
	require.True(t, ok)

	_, err := parser.Parse("var x = { a = 1 };", "script")
	require.Error(t, err)
}

func TestCoverInitializedNameRejectedAsCallArgument(t *testing.T) {
	_, err := parser.Parse(`f({ a = 1 });`, "script")
	require.Error(t, err)
}

func TestArrowFunctionSingleIdentifierParam(t *testing.T) {
	expr := exprOf(t, "x => x + 1;")
	arrow := expr.(*ast.ArrowFunctionExpression)
	require.True(t, arrow.Expression)
	require.Len(t, arrow.Params, 1)
	require.Equal(t, "x", arrow.Params[0].(*ast.Identifier).Name)
}

func TestArrowFunctionParenthesizedParamsWithBlockBody(t *testing.T) {
	expr := exprOf(t, "(a, b) => { return a + b; };")
	arrow := expr.(*ast.ArrowFunctionExpression)
	require.False(t, arrow.Expression)
	require.Len(t, arrow.Params, 2)
	_, ok := arrow.Body.(*ast.BlockStatement)
	require.True(t, ok)
}

func TestAsyncArrowFunction(t *testing.T) {
	expr := exprOf(t, "async x => x;")
	arrow := expr.(*ast.ArrowFunctionExpression)
	require.True(t, arrow.Async)

	expr = exprOf(t, "async (a, b) => a;")
	arrow = expr.(*ast.ArrowFunctionExpression)
	require.True(t, arrow.Async)
	require.Len(t, arrow.Params, 2)
}

func TestAsyncIdentifierIsNotConfusedWithAsyncArrow(t *testing.T) {
	// No arrow follows, so "async" must parse as a plain identifier call.
	expr := exprOf(t, "async(1);")
	call := expr.(*ast.CallExpression)
	require.Equal(t, "async", call.Callee.(*ast.Identifier).Name)
}

func TestParenthesizedExpressionIsNotArrowWhenNoArrowFollows(t *testing.T) {
	expr := exprOf(t, "(a, b);")
	_, ok := expr.(*ast.SequenceExpression)
	require.True(t, ok)
}

func TestAwaitExpressionInsideAsyncFunction(t *testing.T) {
	prog, err := parser.Parse("async function f() { await x; }", "script")
	require.NoError(t, err)
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	stmt := fn.Body.Body[0].(*ast.ExpressionStatement)
	_, ok := stmt.Expression.(*ast.AwaitExpression)
	require.True(t, ok)
}

func TestTopLevelAwaitInModule(t *testing.T) {
	prog, err := parser.Parse("await foo();", "module")
	require.NoError(t, err)
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	_, ok := stmt.Expression.(*ast.AwaitExpression)
	require.True(t, ok)
}

func TestYieldAndYieldDelegateInGenerator(t *testing.T) {
	prog, err := parser.Parse("function* g() { yield 1; yield* xs; }", "script")
	require.NoError(t, err)
	fn := prog.Body[0].(*ast.FunctionDeclaration)

	first := fn.Body.Body[0].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression)
	require.False(t, first.Delegate)

	second := fn.Body.Body[1].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression)
	require.True(t, second.Delegate)
}

func TestNewExpressionAndNewTarget(t *testing.T) {
	expr := exprOf(t, "new Foo(1, 2);")
	n := expr.(*ast.NewExpression)
	require.Len(t, n.Arguments, 2)

	prog, err := parser.Parse("function f() { new.target; }", "script")
	require.NoError(t, err)
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	stmt := fn.Body.Body[0].(*ast.ExpressionStatement)
	meta := stmt.Expression.(*ast.MetaProperty)
	require.Equal(t, "new", meta.Meta.Name)
	require.Equal(t, "target", meta.Property.Name)
}

func TestTaggedTemplateExpression(t *testing.T) {
	expr := exprOf(t, "tag`a${1}b`;")
	tt := expr.(*ast.TaggedTemplateExpression)
	require.Equal(t, "tag", tt.Tag.(*ast.Identifier).Name)
	require.Len(t, tt.Quasi.Quasis, 2)
	require.Len(t, tt.Quasi.Expressions, 1)
}

func TestTemplateLiteralQuasisAndExpressions(t *testing.T) {
	expr := exprOf(t, "`a${1}b${2}c`;")
	tmpl := expr.(*ast.TemplateLiteral)
	require.Len(t, tmpl.Quasis, 3)
	require.Len(t, tmpl.Expressions, 2)
	require.True(t, tmpl.Quasis[2].Tail)
	require.False(t, tmpl.Quasis[0].Tail)
}

func TestNumericSeparatorsAndBigIntLiteral(t *testing.T) {
	expr := exprOf(t, "1_000_000;")
	lit := expr.(*ast.Literal)
	require.Equal(t, float64(1000000), lit.Value)

	expr = exprOf(t, "123n;")
	lit = expr.(*ast.Literal)
	require.Equal(t, ast.LiteralBigInt, lit.Kind)
	require.Equal(t, "123", lit.BigInt)
}

func TestRegexLiteralVsDivisionDisambiguation(t *testing.T) {
	expr := exprOf(t, "/ab+c/gi;")
	lit := expr.(*ast.Literal)
	require.Equal(t, ast.LiteralRegExp, lit.Kind)
	require.Equal(t, "ab+c", lit.Regex.Pattern)
	require.Equal(t, "gi", lit.Regex.Flags)

	expr = exprOf(t, "a / b / c;")
	bin := expr.(*ast.BinaryExpression)
	require.Equal(t, "/", bin.Operator)
}

func TestPrivateFieldBrandCheck(t *testing.T) {
	prog, err := parser.Parse("class C { #x = 1; m() { return #x in this; } }", "script")
	require.NoError(t, err)
	class := prog.Body[0].(*ast.ClassDeclaration)
	method := class.Body.Body[1].(*ast.MethodDefinition)
	fn := method.Value
	ret := fn.Body.Body[0].(*ast.ReturnStatement)
	bin := ret.Argument.(*ast.BinaryExpression)
	require.Equal(t, "in", bin.Operator)
	priv := bin.Left.(*ast.PrivateIdentifier)
	require.Equal(t, "x", priv.Name)
}

func TestPrivateFieldForwardReferenceWithinClassIsAllowed(t *testing.T) {
	_, err := parser.Parse("class C { m() { return this.#x; } #x = 1; }", "script")
	require.NoError(t, err)
}

func TestPrivateFieldUndeclaredInClassIsRejected(t *testing.T) {
	_, err := parser.Parse("class C { m() { return this.#undeclared; } }", "script")
	require.Error(t, err)
}

func TestPrivateFieldReferenceOutsideAnyClassIsRejected(t *testing.T) {
	_, err := parser.Parse("x.#y;", "script")
	require.Error(t, err)
}

func TestLegacyOctalLiteralRejectedInStrictModeAndAllowedInSloppy(t *testing.T) {
	_, err := parser.Parse("0777;", "script")
	require.NoError(t, err)

	_, err = parser.Parse(`"use strict"; 0777;`, "script")
	require.Error(t, err)

	_, err = parser.Parse("0777;", "module")
	require.Error(t, err)
}

func TestSequenceExpressionAtCommaLevel(t *testing.T) {
	expr := exprOf(t, "a, b, c;")
	seq := expr.(*ast.SequenceExpression)
	require.Len(t, seq.Expressions, 3)
}

func TestConditionalExpression(t *testing.T) {
	expr := exprOf(t, "a ? b : c;")
	cond := expr.(*ast.ConditionalExpression)
	require.NotNil(t, cond.Test)
	require.NotNil(t, cond.Consequent)
	require.NotNil(t, cond.Alternate)
}

func TestUnaryAndUpdateExpressions(t *testing.T) {
	expr := exprOf(t, "typeof x;")
	un := expr.(*ast.UnaryExpression)
	require.Equal(t, "typeof", un.Operator)
	require.True(t, un.Prefix)

	expr = exprOf(t, "x++;")
	upd := expr.(*ast.UpdateExpression)
	require.Equal(t, "++", upd.Operator)
	require.False(t, upd.Prefix)

	expr = exprOf(t, "++x;")
	upd = expr.(*ast.UpdateExpression)
	require.True(t, upd.Prefix)
}

func TestPostfixUpdateDoesNotCrossLineBreak(t *testing.T) {
	prog := parseScript(t, "a\n++b;")
	require.Len(t, prog.Body, 2)
	first := prog.Body[0].(*ast.ExpressionStatement)
	_, ok := first.Expression.(*ast.Identifier)
	require.True(t, ok)
}
