package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/parser"
)

func TestClassDeclarationWithSuperClass(t *testing.T) {
	prog := parseScript(t, "class C extends Base {}")
	class := prog.Body[0].(*ast.ClassDeclaration)
	require.Equal(t, "C", class.ID.Name)
	require.Equal(t, "Base", class.SuperClass.(*ast.Identifier).Name)
}

func TestClassExpressionMayBeAnonymous(t *testing.T) {
	expr := exprOf(t, "(class {});")
	class := expr.(*ast.ClassExpression)
	require.Nil(t, class.ID)
}

func TestClassDeclarationRequiresName(t *testing.T) {
	err := parseScriptErr(t, "class {}")
	require.Error(t, err)
}

func TestClassConstructorIsTaggedConstructorKind(t *testing.T) {
	prog := parseScript(t, "class C { constructor() {} method() {} }")
	class := prog.Body[0].(*ast.ClassDeclaration)
	ctor := class.Body.Body[0].(*ast.MethodDefinition)
	require.Equal(t, "constructor", ctor.Kind)
	method := class.Body.Body[1].(*ast.MethodDefinition)
	require.Equal(t, "method", method.Kind)
}

func TestClassStaticMethodAndField(t *testing.T) {
	prog := parseScript(t, "class C { static x = 1; static m() {} }")
	class := prog.Body[0].(*ast.ClassDeclaration)
	field := class.Body.Body[0].(*ast.PropertyDefinition)
	require.True(t, field.Static)
	method := class.Body.Body[1].(*ast.MethodDefinition)
	require.True(t, method.Static)
}

func TestClassFieldNamedStaticIsNotAStaticModifier(t *testing.T) {
	prog := parseScript(t, "class C { static = 1; }")
	class := prog.Body[0].(*ast.ClassDeclaration)
	field := class.Body.Body[0].(*ast.PropertyDefinition)
	require.False(t, field.Static)
	require.Equal(t, "static", field.Key.(*ast.Identifier).Name)
}

func TestClassPrivateFieldAndMethod(t *testing.T) {
	prog := parseScript(t, "class C { #x = 1; #m() { return this.#x; } }")
	class := prog.Body[0].(*ast.ClassDeclaration)
	field := class.Body.Body[0].(*ast.PropertyDefinition)
	require.Equal(t, "x", field.Key.(*ast.PrivateIdentifier).Name)

	method := class.Body.Body[1].(*ast.MethodDefinition)
	require.Equal(t, "m", method.Key.(*ast.PrivateIdentifier).Name)
}

func TestClassGetterAndSetter(t *testing.T) {
	prog := parseScript(t, "class C { get x() { return 1; } set x(v) {} }")
	class := prog.Body[0].(*ast.ClassDeclaration)
	getter := class.Body.Body[0].(*ast.MethodDefinition)
	require.Equal(t, "get", getter.Kind)
	setter := class.Body.Body[1].(*ast.MethodDefinition)
	require.Equal(t, "set", setter.Kind)
}

func TestClassStaticBlock(t *testing.T) {
	prog := parseScript(t, "class C { static { x = 1; } }")
	class := prog.Body[0].(*ast.ClassDeclaration)
	block := class.Body.Body[0].(*ast.StaticBlock)
	require.Len(t, block.Body, 1)
}

func TestClassAsyncGeneratorMethod(t *testing.T) {
	prog := parseScript(t, "class C { async *m() {} }")
	class := prog.Body[0].(*ast.ClassDeclaration)
	method := class.Body.Body[0].(*ast.MethodDefinition)
	require.True(t, method.Value.Async)
	require.True(t, method.Value.Generator)
}

func TestClassComputedMemberName(t *testing.T) {
	prog := parseScript(t, "class C { [x]() {} }")
	class := prog.Body[0].(*ast.ClassDeclaration)
	method := class.Body.Body[0].(*ast.MethodDefinition)
	require.True(t, method.Computed)
}

func TestClassExpressionAsAssignmentTarget(t *testing.T) {
	prog, err := parser.Parse("const C = class Named extends Base {};", "script")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	class := decl.Declarations[0].Init.(*ast.ClassExpression)
	require.Equal(t, "Named", class.ID.Name)
}

func TestClassRejectsDuplicateConstructor(t *testing.T) {
	_, err := parser.Parse("class C { constructor() {} constructor() {} }", "script")
	require.Error(t, err)
}

func TestClassAllowsStaticMethodNamedConstructor(t *testing.T) {
	_, err := parser.Parse("class C { constructor() {} static constructor() {} }", "script")
	require.NoError(t, err)
}
