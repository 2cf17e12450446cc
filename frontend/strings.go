package frontend

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// cook returns the value of a quoted JavaScript string literal. Malformed
// escapes are kept verbatim.
func cook(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch e := body[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\n':
			// line continuation
		case '\r':
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case 'x':
			if r, ok := hexRune(body, i+1, 2); ok {
				sb.WriteRune(r)
				i += 2
			} else {
				sb.WriteString(`\x`)
			}
		case 'u':
			r, width, ok := unicodeEscape(body, i+1)
			if !ok {
				sb.WriteString(`\u`)
				continue
			}
			sb.WriteRune(r)
			i += width
		default:
			sb.WriteByte(e)
		}
	}
	return sb.String()
}

func hexRune(s string, start, n int) (rune, bool) {
	if start+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[start:start+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// unicodeEscape decodes the part after `\u`: either four hex digits or a
// braced code point. It returns the number of bytes consumed.
func unicodeEscape(s string, start int) (rune, int, bool) {
	if start < len(s) && s[start] == '{' {
		end := strings.IndexByte(s[start:], '}')
		if end < 2 {
			return 0, 0, false
		}
		r, ok := hexRune(s, start+1, end-1)
		if !ok || !utf8.ValidRune(r) {
			return 0, 0, false
		}
		return r, end + 1, true
	}
	r, ok := hexRune(s, start, 4)
	if !ok {
		return 0, 0, false
	}
	return r, 4, true
}
