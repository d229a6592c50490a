// Package lexer tokenizes a byte view into JSON tokens, one at a time,
// never throwing: every call returns a diag.Result[Token].
package lexer

import (
	"github.com/yandex/haversine-workbench/internal/diag"
	"github.com/yandex/haversine-workbench/internal/jsonio/loc"
	"github.com/yandex/haversine-workbench/internal/jsonio/view"
)

const escapeWhitespace = " \t\r\n\f\b"

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func skipWhitespace(v view.View, at loc.Location) loc.Location {
	for at.Position < v.Len() && isWhitespace(v.At(at.Position)) {
		at = at.Advance(v.At(at.Position))
	}
	return at
}

// NextToken skips leading whitespace and returns the next token starting
// at "at", or an error describing an unterminated stream / invalid byte.
func NextToken(v view.View, at loc.Location) diag.Result[Token] {
	start := skipWhitespace(v, at)

	if start.Position >= v.Len() {
		return diag.Fail[Token](diag.Newf("Unexpected end of stream at location %s", start))
	}

	b := v.At(start.Position)

	switch b {
	case '{':
		return singleByteToken(OpenObject, start, b)
	case '}':
		return singleByteToken(CloseObject, start, b)
	case '[':
		return singleByteToken(OpenArray, start, b)
	case ']':
		return singleByteToken(CloseArray, start, b)
	case ':':
		return singleByteToken(Assign, start, b)
	case ',':
		return singleByteToken(Separator, start, b)
	case '"':
		return lexString(v, start)
	case '-', '+':
		return lexNumber(v, start)
	case 't', 'f', 'n':
		return lexKeyword(v, start)
	default:
		if isDigit(b) {
			return lexNumber(v, start)
		}
		return diag.Fail[Token](diag.Newf("Invalid character '%c' at location %s", b, start))
	}
}

func singleByteToken(kind Kind, start loc.Location, b byte) diag.Result[Token] {
	end := start.Advance(b)
	return diag.Ok(Token{
		Kind:  kind,
		Start: start,
		End:   end,
		Op:    b,
	})
}

func lexNumber(v view.View, start loc.Location) diag.Result[Token] {
	pos := start.Position
	n := v.Len()

	factor := 1.0
	if pos < n && v.At(pos) == '-' {
		factor = -1.0
		pos++
	} else if pos < n && v.At(pos) == '+' {
		return diag.Fail[Token](diag.Newf("Invalid number literal character '+' at location %s", start))
	}

	digitsStart := pos
	for pos < n && isDigit(v.At(pos)) {
		pos++
	}
	if pos == digitsStart {
		return diag.Fail[Token](diag.Newf("Invalid number literal at location %s", start))
	}

	mantissa := 0.0
	for i := digitsStart; i < pos; i++ {
		mantissa = 10.0*mantissa + float64(v.At(i)-'0')
	}

	isDecimal := false
	if pos < n && v.At(pos) == '.' {
		isDecimal = true
		pos++
		fracStart := pos
		for pos < n && isDigit(v.At(pos)) {
			mantissa = 10.0*mantissa + float64(v.At(pos)-'0')
			factor /= 10.0
			pos++
		}
		if pos == fracStart {
			return diag.Fail[Token](diag.Newf("Invalid number literal at location %s", start))
		}
	}

	number := mantissa * factor

	kind := IntegerLiteral
	if isDecimal {
		kind = DecimalLiteral
	}

	end := start.AdvanceSpan(pos - start.Position)
	return diag.Ok(Token{Kind: kind, Start: start, End: end, Number: number})
}

func lexString(v view.View, start loc.Location) diag.Result[Token] {
	pos := start.Position + 1 // skip opening quote
	n := v.Len()

	var out []byte
	for {
		if pos >= n {
			return diag.Fail[Token](diag.Newf("Unterminated string at location %s", start))
		}
		b := v.At(pos)
		if b == '"' {
			pos++
			break
		}
		if b == '\\' {
			if pos+1 >= n {
				return diag.Fail[Token](diag.Newf("Unterminated escape at location %s", start))
			}
			esc := v.At(pos + 1)
			decoded, ok := decodeEscape(esc)
			if !ok {
				return diag.Fail[Token](diag.Newf("Invalid escape sequence '\\%c' at location %s", esc, start))
			}
			out = append(out, decoded)
			pos += 2
			continue
		}
		if containsByte(escapeWhitespace, b) {
			return diag.Fail[Token](diag.Newf("Invalid whitespace character in string at location %s", start))
		}
		out = append(out, b)
		pos++
	}

	end := start.AdvanceSpan(pos - start.Position)
	return diag.Ok(Token{Kind: StringLiteral, Start: start, End: end, Text: string(out)})
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

func decodeEscape(b byte) (byte, bool) {
	switch b {
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	default:
		return 0, false
	}
}

func lexKeyword(v view.View, start loc.Location) diag.Result[Token] {
	for _, kw := range []struct {
		text string
		kind Kind
	}{
		{"true", TrueLiteral},
		{"false", FalseLiteral},
		{"null", NullLiteral},
	} {
		if matchKeyword(v, start.Position, kw.text) {
			end := start.AdvanceSpan(len(kw.text))
			return diag.Ok(Token{Kind: kw.kind, Start: start, End: end})
		}
	}
	return diag.Fail[Token](diag.Newf("Unknown keyword starting at '%s' at location %s", prefixFrom(v, start.Position), start))
}

func matchKeyword(v view.View, pos int, word string) bool {
	if pos+len(word) > v.Len() {
		return false
	}
	for i := 0; i < len(word); i++ {
		if v.At(pos+i) != word[i] {
			return false
		}
	}
	return true
}

func prefixFrom(v view.View, pos int) string {
	end := pos + 8
	if end > v.Len() {
		end = v.Len()
	}
	return string(v.Slice(pos, end))
}
