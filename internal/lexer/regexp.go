package lexer

// scanRegExp scans a RegExpLiteral body and flag set. Only called when the
// parser has requested GoalRegExp at this token boundary, since "/" is
// ambiguous with division. The lexer only balances character-class
// brackets and escapes; it never validates the pattern itself.
func (l *Lexer) scanRegExp(tok *Token) {
	patternStart := l.cur.Offset()
	l.cur.Advance() // opening '/'

	inClass := false
	for {
		if l.cur.IsAtEnd() {
			l.failAt("unterminated regular expression literal")
		}
		c := l.cur.Current()
		switch {
		case c == '\\':
			l.cur.Advance()
			if l.cur.IsAtEnd() || isLineTerminatorRune(l.cur.Current()) {
				l.failAt("unterminated regular expression literal")
			}
			l.cur.Advance()
			continue
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			l.cur.Advance() // closing '/'
			goto scannedBody
		case isLineTerminatorRune(c):
			l.failAt("unterminated regular expression literal")
		}
		l.cur.Advance()
	}

scannedBody:
	pattern := l.cur.Slice(patternStart+1, l.cur.Offset()-1)

	flagsStart := l.cur.Offset()
	for IsIdentifierContinue(l.cur.Current()) {
		l.cur.Advance()
	}
	flags := l.cur.Slice(flagsStart, l.cur.Offset())

	tok.Kind = RegExpLiteral
	tok.RegexPattern = pattern
	tok.RegexFlags = flags
}
