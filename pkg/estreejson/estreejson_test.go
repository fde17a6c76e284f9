package estreejson_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/ast"
	"github.com/jimmyhmiller/estree-go/internal/fixtures"
	"github.com/jimmyhmiller/estree-go/pkg/estree"
	"github.com/jimmyhmiller/estree-go/pkg/estreejson"
)

func TestFixturesMatchRecordedTrees(t *testing.T) {
	cases, err := fixtures.Load("../../internal/fixtures/testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		c := c
		if c.ExpectedJSON == nil {
			continue
		}
		t.Run(c.Name, func(t *testing.T) {
			var prog *ast.Program
			var perr error
			if c.SourceType == "module" {
				prog, perr = estree.ParseModule(c.Source)
			} else {
				prog, perr = estree.ParseScript(c.Source)
			}
			require.NoError(t, perr)

			got, err := estreejson.Marshal(prog)
			require.NoError(t, err)

			gotNorm, err := fixtures.Normalize(got)
			require.NoError(t, err)
			wantNorm, err := fixtures.Normalize(c.ExpectedJSON)
			require.NoError(t, err)
			require.Equal(t, wantNorm, gotNorm)
		})
	}
}

func TestProgramFieldOrderTypeFirstWithPositionFields(t *testing.T) {
	prog, err := estree.ParseScript("1;")
	require.NoError(t, err)

	out, err := estreejson.Marshal(prog)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &raw))
	require.Contains(t, raw, "start")
	require.Contains(t, raw, "end")
	require.Contains(t, raw, "loc")

	// "type" must be the very first key in the encoded object.
	require.Equal(t, byte('{'), out[0])
	require.Contains(t, string(out[:20]), `"type":"Program"`)
}

func TestRegexLiteralHasNullValueAndRegexField(t *testing.T) {
	prog, err := estree.ParseScript("/ab+c/gi;")
	require.NoError(t, err)

	out, err := estreejson.Marshal(prog)
	require.NoError(t, err)
	require.Contains(t, string(out), `"value":null`)
	require.Contains(t, string(out), `"regex":{"pattern":"ab+c","flags":"gi"}`)
}

func TestBigIntLiteralHasNullValueAndBigIntField(t *testing.T) {
	prog, err := estree.ParseScript("123n;")
	require.NoError(t, err)

	out, err := estreejson.Marshal(prog)
	require.NoError(t, err)
	require.Contains(t, string(out), `"value":null`)
	require.Contains(t, string(out), `"bigint":"123"`)
}
