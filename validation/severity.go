// Package validation defines the diagnostics produced by lint rules.
package validation

import "slices"

// Severity is the importance of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityHint    Severity = "hint"
)

// Severities lists the valid severities, most severe first.
var Severities = []Severity{SeverityError, SeverityWarning, SeverityHint}

func (s Severity) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	return slices.Contains(Severities, s)
}

// Rank orders severities, lower is more severe. Unknown severities rank last.
func (s Severity) Rank() int {
	if i := slices.Index(Severities, s); i >= 0 {
		return i
	}
	return len(Severities)
}
