package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmyhmiller/estree-go/internal/fixtures"
)

func TestNormalizeStripsPositionFields(t *testing.T) {
	raw := []byte(`{"type":"Literal","value":1,"start":0,"end":1,"loc":{"start":{"line":1,"column":0},"end":{"line":1,"column":1}}}`)

	got, err := fixtures.Normalize(raw)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"type": "Literal", "value": float64(1)}, got)
}

func TestNormalizeIsShapeEqualAcrossDifferentPositions(t *testing.T) {
	a := []byte(`{"type":"Identifier","name":"x","start":4,"end":5}`)
	b := []byte(`{"type":"Identifier","name":"x","start":40,"end":41,"range":[40,41]}`)

	na, err := fixtures.Normalize(a)
	require.NoError(t, err)
	nb, err := fixtures.Normalize(b)
	require.NoError(t, err)
	require.Equal(t, na, nb)
}

func TestWithSourceTypeMergesField(t *testing.T) {
	merged, err := fixtures.WithSourceType([]byte(`{"type":"Program","body":[]}`), "module")
	require.NoError(t, err)

	norm, err := fixtures.Normalize(merged)
	require.NoError(t, err)
	require.Equal(t, "module", norm.(map[string]interface{})["sourceType"])
}

func TestLoadPairsSourceWithReferenceTree(t *testing.T) {
	cases, err := fixtures.Load("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	var found bool
	for _, c := range cases {
		if c.Name == "basic" {
			found = true
			require.Equal(t, "script", c.SourceType)
			require.NotEmpty(t, c.ExpectedJSON)
		}
	}
	require.True(t, found, "expected a basic.js fixture")
}
