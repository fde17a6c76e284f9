// Package fixtures loads recorded reference-parser trees from testdata/ and
// normalizes both sides of a comparison (this module's own output and the
// recorded tree) before a structural diff: compare tree shape, not
// byte-for-byte output, since different reference parsers disagree on
// position-field conventions. Test-only collaborator: nothing outside
// _test.go files imports this package.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Case is one fixture: a source file plus, optionally, the reference tree
// it is expected to produce.
type Case struct {
	Name         string
	Source       string
	SourceType   string // "script" | "module"
	ExpectedJSON []byte // nil when the fixture has no recorded reference tree
}

// Load reads every "<name>.js" (or "<name>.module.js") file in dir, pairing
// it with a sibling "<name>.json" reference tree when one exists.
func Load(dir string) ([]Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.js"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var cases []Case
	for _, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), ".js")
		sourceType := "script"
		name := base
		if strings.HasSuffix(base, ".module") {
			sourceType = "module"
			name = strings.TrimSuffix(base, ".module")
		}

		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var expected []byte
		if b, err := os.ReadFile(filepath.Join(dir, name+".json")); err == nil {
			expected = b
		}

		cases = append(cases, Case{
			Name:         name,
			Source:       string(contents),
			SourceType:   sourceType,
			ExpectedJSON: expected,
		})
	}
	return cases, nil
}

// positionFields are dropped from both sides of a comparison: recorded
// reference trees and this parser's own offsets are not expected to agree
// on byte-vs-UTF16 column conventions, only on tree shape (Open Question
// (a)).
var positionFields = map[string]bool{
	"start": true,
	"end":   true,
	"loc":   true,
	"range": true,
}

// Normalize parses raw ESTree-shaped JSON and returns it as a plain Go
// value with every position field removed, suitable for
// testify/require.Equal structural comparison against another Normalize
// result.
func Normalize(raw []byte) (interface{}, error) {
	parsed := gjson.ParseBytes(raw)
	if !parsed.Exists() {
		return nil, fmt.Errorf("fixtures: invalid JSON")
	}
	return stripPositions(parsed), nil
}

func stripPositions(v gjson.Result) interface{} {
	switch {
	case v.IsArray():
		var arr []interface{}
		v.ForEach(func(_, item gjson.Result) bool {
			arr = append(arr, stripPositions(item))
			return true
		})
		return arr
	case v.IsObject():
		m := map[string]interface{}{}
		v.ForEach(func(key, item gjson.Result) bool {
			if positionFields[key.String()] {
				return true
			}
			m[key.String()] = stripPositions(item)
			return true
		})
		return m
	default:
		return v.Value()
	}
}

// WithSourceType merges an explicit "sourceType" field into a recorded
// reference tree, for reference parsers (Acorn in its default
// configuration) that only include sourceType when asked for it.
func WithSourceType(acornJSON []byte, sourceType string) ([]byte, error) {
	return sjson.SetBytes(acornJSON, "sourceType", sourceType)
}
