// Package grammar validates the space-separated token lists carried by HTML
// attributes such as sandbox and rel.
package grammar

import (
	"unicode"
	"unicode/utf8"

	"github.com/speakeasy-api/jsxlint/ast"
)

// TokenSpan is a substring of an attribute value together with its absolute
// byte range in the file.
type TokenSpan struct {
	Value string
	Range ast.Range
}

// IsSpace reports whether r is whitespace in the ECMAScript sense.
func IsSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

// SplitTokens returns the maximal runs of non-whitespace in value. base is the
// absolute offset of value's first byte.
func SplitTokens(value string, base int) []TokenSpan {
	return runs(value, base, false)
}

// WhitespaceRuns returns the maximal runs of whitespace in value.
func WhitespaceRuns(value string, base int) []TokenSpan {
	return runs(value, base, true)
}

func runs(value string, base int, space bool) []TokenSpan {
	var out []TokenSpan
	start := -1
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if IsSpace(r) == space {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			out = append(out, span(value, base, start, i))
			start = -1
		}
		i += size
	}
	if start >= 0 {
		out = append(out, span(value, base, start, len(value)))
	}
	return out
}

func span(value string, base, start, end int) TokenSpan {
	return TokenSpan{
		Value: value[start:end],
		Range: ast.Range{Start: base + start, End: base + end},
	}
}
