package grammar

import (
	"slices"
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
)

// RelValidValues maps every known rel keyword to the tags it is valid on.
var RelValidValues = map[string][]string{
	"alternate":     {"link", "area", "a"},
	"author":        {"link", "area", "a"},
	"bookmark":      {"area", "a"},
	"canonical":     {"link"},
	"dns-prefetch":  {"link"},
	"external":      {"area", "a", "form"},
	"help":          {"link", "area", "a", "form"},
	"icon":          {"link"},
	"license":       {"link", "area", "a", "form"},
	"manifest":      {"link"},
	"modulepreload": {"link"},
	"next":          {"link", "area", "a", "form"},
	"nofollow":      {"area", "a", "form"},
	"noopener":      {"area", "a", "form"},
	"noreferrer":    {"area", "a", "form"},
	"opener":        {"area", "a", "form"},
	"pingback":      {"link"},
	"preconnect":    {"link"},
	"prefetch":      {"link"},
	"preload":       {"link"},
	"prerender":     {"link"},
	"prev":          {"link", "area", "a", "form"},
	"search":        {"link", "area", "a", "form"},
	"stylesheet":    {"link"},
	"tag":           {"area", "a"},
}

// RelTags lists the tags rel has meaning on, in reporting order.
var RelTags = []string{"link", "a", "area", "form"}

// IsRelTag reports whether tag accepts a rel attribute.
func IsRelTag(tag string) bool {
	return slices.Contains(RelTags, tag)
}

// RelProblemKind classifies a RelProblem.
type RelProblemKind int

const (
	// RelNeverValid is a token that is not a rel keyword at all.
	RelNeverValid RelProblemKind = iota
	// RelNotValidForTag is a known keyword used on a tag it does not apply to.
	RelNotValidForTag
	// RelBadWhitespace is a separator other than a single space, or leading
	// or trailing whitespace.
	RelBadWhitespace
)

// RelProblem is one issue found in a rel value. Range is the text to remove
// to resolve it.
type RelProblem struct {
	Kind  RelProblemKind
	Token string
	Range ast.Range
}

// ValidateRel checks a non-blank rel string body. base is the absolute offset
// of the first byte of body. Token problems come first in left-to-right
// order, followed by whitespace problems.
func ValidateRel(body string, base int, tag string) []RelProblem {
	var problems []RelProblem
	for _, tok := range SplitTokens(body, base) {
		tags, ok := RelValidValues[tok.Value]
		switch {
		case !ok:
			problems = append(problems, RelProblem{Kind: RelNeverValid, Token: tok.Value, Range: tok.Range})
		case !slices.Contains(tags, tag):
			problems = append(problems, RelProblem{Kind: RelNotValidForTag, Token: tok.Value, Range: tok.Range})
		}
	}

	end := base + len(body)
	for _, ws := range WhitespaceRuns(body, base) {
		if ws.Value != " " || ws.Range.Start == base || ws.Range.End == end {
			problems = append(problems, RelProblem{Kind: RelBadWhitespace, Token: ws.Value, Range: ws.Range})
		}
	}
	return problems
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, IsSpace) == ""
}
