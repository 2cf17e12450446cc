package linter

import (
	"github.com/speakeasy-api/jsxlint/validation"
)

// Rule describes a single linting rule
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "jsx-no-target-blank")
	ID() string

	// Category returns the rule category (e.g., "security", "best-practices", "style")
	Category() string

	// Description returns a human-readable description of what the rule checks
	Description() string

	// Summary returns a short summary of what the rule checks
	Summary() string

	// Link returns an optional URL to documentation for this rule
	Link() string

	// DefaultSeverity returns the default severity level for this rule
	DefaultSeverity() validation.Severity
}

// RuleRunner is the interface rules must implement to take part in a lint run
type RuleRunner interface {
	Rule

	// Messages returns the message templates of the rule keyed by message id.
	// Templates use `{{name}}` placeholders.
	Messages() map[string]string

	// Create is called once per file and returns the callbacks the rule wants
	// to receive during the traversal. A nil visitor disables the rule for
	// the file.
	Create(ctx *Context) (*Visitor, error)
}

// ConfigurableRule indicates a rule has configurable options
type ConfigurableRule interface {
	Rule

	// ConfigSchema returns JSON Schema for rule-specific options
	ConfigSchema() map[string]any

	// ConfigDefaults returns default values for options
	ConfigDefaults() map[string]any
}

// FixableRule is implemented by rules that can produce fixes.
type FixableRule interface {
	Rule

	// FixAvailable returns true if the rule provides auto-fix suggestions
	FixAvailable() bool
}
