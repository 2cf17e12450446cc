package grammar

import (
	"slices"
	"strings"
)

// SandboxAllowed lists the tokens accepted in an iframe sandbox attribute. The
// empty token is allowed so that repeated spaces are not reported.
var SandboxAllowed = []string{
	"",
	"allow-forms",
	"allow-modals",
	"allow-orientation-lock",
	"allow-pointer-lock",
	"allow-popups",
	"allow-popups-to-escape-sandbox",
	"allow-presentation",
	"allow-same-origin",
	"allow-scripts",
	"allow-top-navigation",
	"allow-top-navigation-by-user-activation",
}

// SandboxResult is the outcome of ValidateSandbox.
type SandboxResult struct {
	// InvalidTokens holds one entry per offending token, left to right.
	InvalidTokens []string
	// InvalidCombination is set when both allow-scripts and
	// allow-same-origin are present.
	InvalidCombination bool
}

// Valid reports whether nothing is wrong with the sandbox value.
func (r SandboxResult) Valid() bool {
	return len(r.InvalidTokens) == 0 && !r.InvalidCombination
}

// ValidateSandbox splits value on single spaces and checks each trimmed piece
// against SandboxAllowed. Matching is case-sensitive.
func ValidateSandbox(value string) SandboxResult {
	var res SandboxResult
	var scripts, sameOrigin bool
	for _, piece := range strings.Split(value, " ") {
		tok := strings.TrimFunc(piece, IsSpace)
		if !slices.Contains(SandboxAllowed, tok) {
			res.InvalidTokens = append(res.InvalidTokens, tok)
		}
		switch tok {
		case "allow-scripts":
			scripts = true
		case "allow-same-origin":
			sameOrigin = true
		}
	}
	res.InvalidCombination = scripts && sameOrigin
	return res
}
