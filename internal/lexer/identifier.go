package lexer

import "unicode"

// idStartCategories and idContinueCategories approximate the Unicode
// ID_Start/ID_Continue properties using the standard library's general
// category tables. Grounded on esbuild's js_lexer.go IsIdentifierStart/
// IsIdentifierContinue fast-path-plus-table approach; this module builds
// the Unicode fallback from unicode.L/Nl/Mn/Mc/Nd/Pc directly since the
// standard library does not expose ID_Start/ID_Continue as named tables.
var idStartCategories = []*unicode.RangeTable{unicode.L, unicode.Nl, unicode.Other_ID_Start}
var idContinueCategories = []*unicode.RangeTable{
	unicode.L, unicode.Nl, unicode.Other_ID_Start,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
}

// IsIdentifierStart reports whether r can start an IdentifierName.
func IsIdentifierStart(r rune) bool {
	switch {
	case r == '_' || r == '$':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r < 0x80:
		return false
	}
	return unicode.In(r, idStartCategories...)
}

// IsIdentifierContinue reports whether r can continue an IdentifierName.
func IsIdentifierContinue(r rune) bool {
	switch {
	case r == '_' || r == '$':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r < 0x80:
		return false
	case r == 0x200C || r == 0x200D: // ZWNJ, ZWJ, explicitly allowed to continue
		return true
	}
	return unicode.In(r, idContinueCategories...)
}

// IsIdentifierName reports whether text (already escape-decoded) is a
// syntactically valid IdentifierName.
func IsIdentifierName(text string) bool {
	if text == "" {
		return false
	}
	for i, r := range text {
		if i == 0 {
			if !IsIdentifierStart(r) {
				return false
			}
		} else if !IsIdentifierContinue(r) {
			return false
		}
	}
	return true
}
