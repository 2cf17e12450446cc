package linter

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/speakeasy-api/jsxlint/errors"
	"github.com/speakeasy-api/jsxlint/validation"
)

// ErrInvalidConfig is returned when a configuration fails validation.
const ErrInvalidConfig = errors.Error("invalid config")

// Config represents the linter configuration
type Config struct {
	// Extends specifies rulesets to extend (e.g., "recommended", "all")
	Extends []string `yaml:"extends,omitempty" json:"extends,omitempty"`

	// Rules contains per-rule configuration
	Rules map[string]RuleConfig `yaml:"rules,omitempty" json:"rules,omitempty"`

	// Categories contains per-category configuration
	Categories map[string]CategoryConfig `yaml:"categories,omitempty" json:"categories,omitempty"`

	// Settings are shared by all rules
	Settings Settings `yaml:"settings,omitempty" json:"settings,omitempty"`

	// Ignores contains global ignore patterns
	Ignores []IgnorePattern `yaml:"ignores,omitempty" json:"ignores,omitempty"`

	// OutputFormat specifies the output format
	OutputFormat OutputFormat `yaml:"output_format,omitempty" json:"output_format,omitempty"`
}

// RuleConfig configures a specific rule
type RuleConfig struct {
	// Enabled controls whether the rule is active
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`

	// Severity overrides the default severity
	Severity *validation.Severity `yaml:"severity,omitempty" json:"severity,omitempty"`

	// Options contains rule-specific configuration
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// GetSeverity returns the effective severity, falling back to default if not overridden
func (c *RuleConfig) GetSeverity(defaultSeverity validation.Severity) validation.Severity {
	if c != nil && c.Severity != nil {
		return *c.Severity
	}
	return defaultSeverity
}

// CategoryConfig configures an entire category of rules
type CategoryConfig struct {
	// Enabled controls whether all rules in the category are active
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`

	// Severity overrides the default severity for all rules in the category
	Severity *validation.Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
}

// Settings are shared, rule-independent settings.
type Settings struct {
	// Pragma is the identifier JSX compiles against (default "React").
	Pragma string `yaml:"pragma,omitempty" json:"pragma,omitempty"`

	// CreateClass is the name of the legacy class factory (default "createReactClass").
	CreateClass string `yaml:"createClass,omitempty" json:"createClass,omitempty"`

	// LinkComponents are custom components rendering links.
	LinkComponents []ComponentAttribute `yaml:"linkComponents,omitempty" json:"linkComponents,omitempty"`

	// FormComponents are custom components rendering forms.
	FormComponents []ComponentAttribute `yaml:"formComponents,omitempty" json:"formComponents,omitempty"`

	// PropWrapperFunctions are functions wrapping propTypes declarations.
	PropWrapperFunctions []PropWrapper `yaml:"propWrapperFunctions,omitempty" json:"propWrapperFunctions,omitempty"`
}

// ComponentAttribute names a component and the attributes holding its URL.
type ComponentAttribute struct {
	Name       string   `yaml:"name" json:"name"`
	Attribute  string   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Attributes []string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// AttributeNames returns the configured attributes, or fallback when none
// are set.
func (c ComponentAttribute) AttributeNames(fallback string) []string {
	var out []string
	if c.Attribute != "" {
		out = append(out, c.Attribute)
	}
	out = append(out, c.Attributes...)
	if len(out) == 0 {
		out = []string{fallback}
	}
	return out
}

// PropWrapper is a function wrapping propTypes, such as `exact` from
// prop-types-exact or `PropTypes.exact`.
type PropWrapper struct {
	Property string `yaml:"property" json:"property"`
	Object   string `yaml:"object,omitempty" json:"object,omitempty"`
	Exact    bool   `yaml:"exact,omitempty" json:"exact,omitempty"`
}

// String renders the wrapper as it is called in source.
func (w PropWrapper) String() string {
	if w.Object != "" {
		return w.Object + "." + w.Property
	}
	return w.Property
}

// IgnorePattern specifies a pattern for ignoring results
type IgnorePattern struct {
	// Rule is the rule ID to ignore (empty = all rules)
	Rule string `yaml:"rule,omitempty" json:"rule,omitempty"`

	// Files is a doublestar glob matched against the document path (empty = all files)
	Files string `yaml:"files,omitempty" json:"files,omitempty"`

	// MessagePattern is a regular expression matched against the message (empty = all messages)
	MessagePattern string `yaml:"message_pattern,omitempty" json:"message_pattern,omitempty"`

	message *regexp.Regexp
}

// Matches reports whether a diagnostic is covered by the pattern.
func (p *IgnorePattern) Matches(vErr *validation.Error) bool {
	if p.Rule != "" && p.Rule != vErr.Rule {
		return false
	}
	if p.Files != "" {
		ok, err := doublestar.PathMatch(p.Files, vErr.Document)
		if err != nil || !ok {
			return false
		}
	}
	if p.MessagePattern != "" {
		re := p.message
		if re == nil {
			var err error
			if re, err = regexp.Compile(p.MessagePattern); err != nil {
				return false
			}
		}
		return re.MatchString(vErr.MessageText())
	}
	return true
}

type OutputFormat string

const (
	OutputFormatText    OutputFormat = "text"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatSummary OutputFormat = "summary"
)

// NewConfig creates a new default configuration
func NewConfig() *Config {
	return &Config{
		Extends:      []string{RulesetAll},
		Rules:        make(map[string]RuleConfig),
		Categories:   make(map[string]CategoryConfig),
		OutputFormat: OutputFormatText,
	}
}

// Validate checks severities, the output format and ignore patterns, and
// compiles message patterns.
func (c *Config) Validate() error {
	var errs []error
	for id, rc := range c.Rules {
		if rc.Severity != nil && !rc.Severity.IsValid() {
			errs = append(errs, fmt.Errorf("rule %s: unknown severity %q", id, *rc.Severity))
		}
	}
	for name, cc := range c.Categories {
		if cc.Severity != nil && !cc.Severity.IsValid() {
			errs = append(errs, fmt.Errorf("category %s: unknown severity %q", name, *cc.Severity))
		}
	}
	switch c.OutputFormat {
	case "", OutputFormatText, OutputFormatJSON, OutputFormatSummary:
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", c.OutputFormat))
	}
	for i := range c.Ignores {
		p := &c.Ignores[i]
		if p.Files != "" && !doublestar.ValidatePattern(p.Files) {
			errs = append(errs, fmt.Errorf("ignores[%d]: invalid glob %q", i, p.Files))
		}
		if p.MessagePattern != "" {
			re, err := regexp.Compile(p.MessagePattern)
			if err != nil {
				errs = append(errs, fmt.Errorf("ignores[%d]: invalid message pattern: %w", i, err))
				continue
			}
			p.message = re
		}
	}
	if len(errs) > 0 {
		return ErrInvalidConfig.Wrap(errors.Join(errs...))
	}
	return nil
}
