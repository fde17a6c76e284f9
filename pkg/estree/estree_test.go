package estree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/pkg/estree"
)

func TestParseScriptRejectsImportDeclaration(t *testing.T) {
	_, err := estree.ParseScript(`import x from "mod";`)
	require.Error(t, err)
}

func TestParseModuleAllowsImportDeclaration(t *testing.T) {
	prog, err := estree.ParseModule(`import x from "mod";`)
	require.NoError(t, err)
	require.Equal(t, "module", prog.SourceType)
}

func TestParseUsesOptionsSourceType(t *testing.T) {
	prog, err := estree.Parse(`1;`, estree.Options{SourceType: estree.Module})
	require.NoError(t, err)
	require.Equal(t, "module", prog.SourceType)
}

func TestParseDefaultsToScript(t *testing.T) {
	prog, err := estree.Parse(`1;`, estree.Options{})
	require.NoError(t, err)
	require.Equal(t, "script", prog.SourceType)
}

func TestParseAutoDetectPicksModuleWhenImportPresent(t *testing.T) {
	prog, err := estree.ParseAutoDetect(`import x from "mod"; x();`)
	require.NoError(t, err)
	require.Equal(t, "module", prog.SourceType)
}

func TestParseAutoDetectPicksScriptForPlainCode(t *testing.T) {
	prog, err := estree.ParseAutoDetect(`var x = 1;`)
	require.NoError(t, err)
	require.Equal(t, "script", prog.SourceType)
}

func TestParseAutoDetectReportsRealSyntaxErrorsNotAModuleMismatch(t *testing.T) {
	_, err := estree.ParseAutoDetect(`import x from ;`)
	require.Error(t, err)
}

func TestParseAutoDetectReportsTheModuleErrorLocationNotAScriptFallback(t *testing.T) {
	src := "import { foo } from \"./x\";\nif (x {\n"
	_, modErr := estree.ParseModule(src)
	require.Error(t, modErr)

	_, autoErr := estree.ParseAutoDetect(src)
	require.Error(t, autoErr)
	require.Equal(t, modErr.Error(), autoErr.Error())
}

func TestParseReturnsDiagErrorWithPosition(t *testing.T) {
	_, err := estree.ParseScript(`const = 1;`)
	require.Error(t, err)
	require.NotEmpty(t, err.Error())
}

func TestParseProducesWellFormedProgramNode(t *testing.T) {
	prog, err := estree.ParseScript(`let x = 1;`)
	require.NoError(t, err)
	require.Equal(t, "Program", prog.Type())
	require.Len(t, prog.Body, 1)
	_, ok := prog.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
}
