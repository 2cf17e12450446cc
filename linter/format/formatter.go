// Package format renders lint results as text, JSON or a per-rule summary.
package format

import (
	"strings"

	"github.com/speakeasy-api/jsxlint/validation"
)

type Formatter interface {
	Format(results []error) (string, error)
}

// CategoryFunc maps a rule id to its category. It returns "" for unknown
// rules.
type CategoryFunc func(rule string) string

// categoryOf asks fn first and falls back to the rule id prefix.
func categoryOf(fn CategoryFunc, rule string) string {
	if fn != nil {
		if c := fn(rule); c != "" {
			return c
		}
	}
	if idx := strings.Index(rule, "-"); idx > 0 {
		return rule[:idx]
	}
	return "unknown"
}

type counts struct {
	errors   int
	warnings int
	hints    int
}

func (c *counts) add(s validation.Severity) {
	switch s {
	case validation.SeverityError:
		c.errors++
	case validation.SeverityWarning:
		c.warnings++
	case validation.SeverityHint:
		c.hints++
	}
}
