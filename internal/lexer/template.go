package lexer

import "strings"

// scanTemplatePart scans the source between a template delimiter (a
// backtick or a re-entered "}") and the next delimiter ("${" or a closing
// backtick), producing a NoSubstitutionTemplate/TemplateHead (isStart) or
// TemplateMiddle/TemplateTail (!isStart) token. Grounded on esbuild's
// js_lexer.go template-scanning branch of Next() plus RawTemplateContents'
// CR/CRLF normalization, rebuilt to decode cooked text inline instead of
// deferring to a second pass over lexer.StringLiteral.
func (l *Lexer) scanTemplatePart(tok *Token, isStart bool) {
	rawStart := l.cur.Offset()
	isTail := false

	for {
		if l.cur.IsAtEnd() {
			l.failAt("unterminated template literal")
		}
		c := l.cur.Current()
		switch {
		case c == '\\':
			l.cur.Advance()
			if l.cur.IsAtEnd() {
				l.failAt("unterminated template literal")
			}
			l.cur.Advance()
			continue
		case c == '`':
			isTail = true
			goto scanned
		case c == '$' && l.cur.Peek(1) == '{':
			goto scanned
		}
		l.cur.Advance()
	}

scanned:
	raw := normalizeTemplateLineEndings(l.cur.Slice(rawStart, l.cur.Offset()))

	if isTail {
		l.cur.Advance() // '`'
	} else {
		l.cur.Advance() // '$'
		l.cur.Advance() // '{'
	}

	cooked, valid := decodeEscapes(raw, true)

	tok.Tail = isTail
	switch {
	case isStart && isTail:
		tok.Kind = NoSubstitutionTemplate
	case isStart && !isTail:
		tok.Kind = TemplateHead
	case !isStart && isTail:
		tok.Kind = TemplateTail
	default:
		tok.Kind = TemplateMiddle
	}
	tok.Cooked = cooked
	tok.CookedValid = valid
	tok.StringValue = raw
}

// normalizeTemplateLineEndings converts CRLF and lone CR into LF, per
// ECMA-262 11.8.6.1: both TV (cooked) and TRV (raw) normalize line endings
// this way; only an explicit "\r"/"\r\n" escape sequence can reintroduce a
// literal CR into either form.
func normalizeTemplateLineEndings(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\r' {
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			b.WriteByte('\n')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
