package lexer

import "strconv"

// scanNumber scans a decimal, hex, octal, or binary numeric literal,
// including numeric separators and the trailing BigInt "n" suffix.
// Grounded on esbuild's js_lexer.go parseNumericLiteralOrDot, rebuilt
// against lexer.Token's NumberValue/BigIntDigits payload instead of the
// lexer-global Number/Identifier fields esbuild mutates in place.
func (l *Lexer) scanNumber(tok *Token) {
	startOffset := l.cur.Offset()
	first := l.cur.Current()

	base := 0
	isLegacyOctal := false
	if first == '0' {
		switch l.cur.Peek(1) {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		case '0', '1', '2', '3', '4', '5', '6', '7', '_':
			base = 8
			isLegacyOctal = true
		}
	}

	underscoreCount := 0
	lastUnderscoreEnd := -1
	hasDotOrExponent := false
	sawInvalidOctalDigit := false

	digitOK := func(r rune, b int) (ok bool, digit int) {
		switch {
		case r >= '0' && r <= '9':
			digit = int(r - '0')
		case r >= 'a' && r <= 'f':
			digit = int(r-'a') + 10
		case r >= 'A' && r <= 'F':
			digit = int(r-'A') + 10
		default:
			return false, 0
		}
		if b == 0 {
			b = 10
		}
		return digit < b || (b == 8 && digit < 10), digit
	}

	if base != 0 {
		l.cur.Advance() // '0'
		if !isLegacyOctal {
			l.cur.Advance() // 'b'/'o'/'x'
		}
		isFirst := true
		for {
			r := l.cur.Current()
			if r == '_' {
				if lastUnderscoreEnd == l.cur.Offset()-1 || isFirst {
					l.failAt("numeric separator is not allowed here")
				}
				lastUnderscoreEnd = l.cur.Offset()
				underscoreCount++
				l.cur.Advance()
				continue
			}
			ok, digit := digitOK(r, base)
			if !ok {
				if isLegacyOctal && (r == '8' || r == '9') {
					sawInvalidOctalDigit = true
				} else {
					break
				}
			}
			if base == 2 && digit > 1 {
				l.failAt("invalid digit in binary literal")
			}
			l.cur.Advance()
			isFirst = false
		}
	} else {
		isInvalidLegacyOctal := first == '0' && (l.cur.Peek(1) == '8' || l.cur.Peek(1) == '9')
		for isDigitOrSeparator(l.cur.Current()) {
			if l.cur.Current() == '_' {
				if lastUnderscoreEnd == l.cur.Offset()-1 {
					l.failAt("numeric separator is not allowed here")
				}
				if isInvalidLegacyOctal {
					l.failAt("numeric separator is not allowed in legacy octal literals")
				}
				lastUnderscoreEnd = l.cur.Offset()
				underscoreCount++
			}
			l.cur.Advance()
		}
		if l.cur.Current() == '.' {
			hasDotOrExponent = true
			l.cur.Advance()
			for isDigitOrSeparator(l.cur.Current()) {
				if l.cur.Current() == '_' {
					if lastUnderscoreEnd == l.cur.Offset()-1 {
						l.failAt("numeric separator is not allowed here")
					}
					lastUnderscoreEnd = l.cur.Offset()
					underscoreCount++
				}
				l.cur.Advance()
			}
		}
		if l.cur.Current() == 'e' || l.cur.Current() == 'E' {
			hasDotOrExponent = true
			l.cur.Advance()
			if l.cur.Current() == '+' || l.cur.Current() == '-' {
				l.cur.Advance()
			}
			if l.cur.Current() < '0' || l.cur.Current() > '9' {
				l.failAt("invalid exponent in numeric literal")
			}
			for isDigitOrSeparator(l.cur.Current()) {
				l.cur.Advance()
			}
		}
		sawInvalidOctalDigit = isInvalidLegacyOctal
	}

	if lastUnderscoreEnd == l.cur.Offset()-1 {
		l.failAt("numeric separator must not appear at the end of a literal")
	}

	isBigInt := l.cur.Current() == 'n' && !hasDotOrExponent
	if isBigInt && isLegacyOctal {
		l.failAt("a BigInt literal cannot use a leading-zero octal form")
	}
	if isBigInt && base == 0 && first == '0' && l.cur.Offset()-startOffset > 1 {
		l.failAt("the only BigInt literal that can start with \"0\" is \"0n\"")
	}

	raw := l.cur.Slice(startOffset, l.cur.Offset())
	text := stripUnderscores(raw, underscoreCount)

	switch {
	case isBigInt:
		l.cur.Advance() // 'n'
		tok.Kind = BigIntLiteral
		tok.BigIntDigits = normalizeBigIntDigits(text, base)
	case isLegacyOctal:
		tok.Kind = NumericLiteral
		tok.IsLegacyOctal = true
		if sawInvalidOctalDigit {
			v, _ := strconv.ParseFloat(text, 64)
			tok.NumberValue = v
		} else {
			tok.NumberValue = float64(parseRadix(text[1:], 8))
		}
	case base != 0:
		tok.Kind = NumericLiteral
		tok.NumberValue = float64(parseRadix(text[2:], base))
	default:
		tok.Kind = NumericLiteral
		// A leading zero followed directly by "8"/"9" (e.g. "089") is the
		// NonOctalDecimalIntegerLiteral production: not octal, but subject
		// to the same strict-mode/module restriction as "0777".
		tok.IsLegacyOctal = sawInvalidOctalDigit && base == 0
		v, _ := strconv.ParseFloat(text, 64)
		tok.NumberValue = v
	}

	if IsIdentifierStart(l.cur.Current()) || l.cur.Current() == '\\' {
		l.failAt("identifier cannot start immediately after a numeric literal")
	}
}

func isDigitOrSeparator(r rune) bool {
	return (r >= '0' && r <= '9') || r == '_'
}

func stripUnderscores(text string, count int) string {
	if count == 0 {
		return text
	}
	out := make([]byte, 0, len(text)-count)
	for i := 0; i < len(text); i++ {
		if text[i] != '_' {
			out = append(out, text[i])
		}
	}
	return string(out)
}

func parseRadix(digits string, base int) uint64 {
	var v uint64
	for _, c := range digits {
		d, _ := hexDigit(c)
		v = v*uint64(base) + uint64(d)
	}
	return v
}

// normalizeBigIntDigits strips the "0x"/"0o"/"0b" prefix for non-decimal
// bases and converts to a plain base-10 digit string, since ESTree's
// bigint field is always a normalized decimal digit string.
func normalizeBigIntDigits(text string, base int) string {
	if base == 0 {
		return text
	}
	v := parseRadix(text[2:], base)
	return strconv.FormatUint(v, 10)
}
