package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/parser"
)

func parseModule(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src, "module")
	require.NoError(t, err)
	return prog
}

func TestImportDefaultNamespaceAndNamedTogether(t *testing.T) {
	prog := parseModule(t, `import def, * as ns from "mod";`)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	require.Len(t, decl.Specifiers, 2)
	_, ok := decl.Specifiers[0].(*ast.ImportDefaultSpecifier)
	require.True(t, ok)
	_, ok = decl.Specifiers[1].(*ast.ImportNamespaceSpecifier)
	require.True(t, ok)
	require.Equal(t, "mod", decl.Source.Value)
}

func TestImportNamedWithRename(t *testing.T) {
	prog := parseModule(t, `import { a as b, c } from "mod";`)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	require.Len(t, decl.Specifiers, 2)
	first := decl.Specifiers[0].(*ast.ImportSpecifier)
	require.Equal(t, "a", first.Imported.(*ast.Identifier).Name)
	require.Equal(t, "b", first.Local.Name)
}

func TestBareImportForSideEffectsOnly(t *testing.T) {
	prog := parseModule(t, `import "mod";`)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	require.Empty(t, decl.Specifiers)
	require.Equal(t, "mod", decl.Source.Value)
}

func TestImportAttributesClause(t *testing.T) {
	prog := parseModule(t, `import data from "data.json" with { type: "json" };`)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	require.Len(t, decl.Attributes, 1)
	require.Equal(t, "type", decl.Attributes[0].Key.(*ast.Identifier).Name)
	require.Equal(t, "json", decl.Attributes[0].Value.Value)
}

func TestDynamicImportExpression(t *testing.T) {
	prog := parseModule(t, `import("mod");`)
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	imp := stmt.Expression.(*ast.ImportExpression)
	require.Equal(t, "mod", imp.Source.(*ast.Literal).Value)
}

func TestImportMeta(t *testing.T) {
	prog := parseModule(t, `import.meta.url;`)
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	member := stmt.Expression.(*ast.MemberExpression)
	meta := member.Object.(*ast.MetaProperty)
	require.Equal(t, "import", meta.Meta.Name)
	require.Equal(t, "meta", meta.Property.Name)
}

func TestImportKeywordStillStartsDeclarationNotExpression(t *testing.T) {
	prog := parseModule(t, `import x from "mod"; import("y");`)
	require.Len(t, prog.Body, 2)
	_, ok := prog.Body[0].(*ast.ImportDeclaration)
	require.True(t, ok)
	stmt := prog.Body[1].(*ast.ExpressionStatement)
	_, ok = stmt.Expression.(*ast.ImportExpression)
	require.True(t, ok)
}

func TestExportNamedDeclarationWrapsVariableStatement(t *testing.T) {
	prog := parseModule(t, `export const x = 1;`)
	exp := prog.Body[0].(*ast.ExportNamedDeclaration)
	require.Nil(t, exp.Source)
	decl := exp.Declaration.(*ast.VariableDeclaration)
	require.Equal(t, "const", decl.Kind)
}

func TestExportNamedSpecifierList(t *testing.T) {
	prog := parseModule(t, `const a = 1, b = 2; export { a, b as renamed };`)
	exp := prog.Body[1].(*ast.ExportNamedDeclaration)
	require.Nil(t, exp.Declaration)
	require.Len(t, exp.Specifiers, 2)
	require.Equal(t, "b", exp.Specifiers[1].Local.(*ast.Identifier).Name)
	require.Equal(t, "renamed", exp.Specifiers[1].Exported.(*ast.Identifier).Name)
}

func TestExportNamedReExportFromSource(t *testing.T) {
	prog := parseModule(t, `export { a } from "mod";`)
	exp := prog.Body[0].(*ast.ExportNamedDeclaration)
	require.Equal(t, "mod", exp.Source.Value)
}

func TestExportDefaultFunctionDeclarationMayBeAnonymous(t *testing.T) {
	prog := parseModule(t, `export default function () {}`)
	exp := prog.Body[0].(*ast.ExportDefaultDeclaration)
	fn := exp.Declaration.(*ast.FunctionDeclaration)
	require.Nil(t, fn.ID)
}

func TestExportDefaultExpression(t *testing.T) {
	prog := parseModule(t, `export default 1 + 2;`)
	exp := prog.Body[0].(*ast.ExportDefaultDeclaration)
	_, ok := exp.Declaration.(*ast.BinaryExpression)
	require.True(t, ok)
}

func TestExportAllWithAndWithoutAlias(t *testing.T) {
	prog := parseModule(t, `export * from "mod";`)
	all := prog.Body[0].(*ast.ExportAllDeclaration)
	require.Nil(t, all.Exported)

	prog = parseModule(t, `export * as ns from "mod";`)
	all = prog.Body[0].(*ast.ExportAllDeclaration)
	require.Equal(t, "ns", all.Exported.(*ast.Identifier).Name)
}

func TestModuleExportNameStringLiteralForm(t *testing.T) {
	prog := parseModule(t, `const a = 1; export { a as "a string name" };`)
	exp := prog.Body[1].(*ast.ExportNamedDeclaration)
	require.Equal(t, "a string name", exp.Specifiers[0].Exported.(*ast.Literal).Value)
}

func TestProgramSourceTypeReflectsParseMode(t *testing.T) {
	script := parseScript(t, "1;")
	require.Equal(t, "script", script.SourceType)

	module := parseModule(t, "1;")
	require.Equal(t, "module", module.SourceType)
}

func TestWithStatementRejectedInModule(t *testing.T) {
	_, err := parser.Parse("with (x) { y; }", "module")
	require.Error(t, err)
}
