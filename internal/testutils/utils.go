// Package testutils runs a single rule over a source snippet the way the
// linter and the fix engine would, for use in rule tests.
package testutils

import (
	"errors"
	"testing"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/frontend"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/linter/fix"
	"github.com/speakeasy-api/jsxlint/validation"
	"github.com/stretchr/testify/require"
)

// Result is the outcome of running one rule over a source.
type Result struct {
	Errors []*validation.Error
	// Output is the source after one pass of non-conflicting fixes. It equals
	// the input when nothing was fixable.
	Output string
}

// Messages returns the rendered message of every diagnostic in order.
func (r *Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.MessageText())
	}
	return out
}

// Strings returns every diagnostic as rendered by Error().
func (r *Result) Strings() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Error())
	}
	return out
}

type config struct {
	path     string
	options  map[string]any
	settings linter.Settings
	parse    []frontend.Option
}

func newConfig(opts []Option) *config {
	c := &config{path: "test.jsx"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newLinter returns a linter running rule alone.
func (c *config) newLinter(rule linter.RuleRunner) *linter.Linter {
	registry := linter.NewRegistry()
	registry.Register(rule)
	cfg := linter.NewConfig()
	cfg.Settings = c.settings
	if c.options != nil {
		cfg.Rules[rule.ID()] = linter.RuleConfig{Options: c.options}
	}
	return linter.NewLinter(cfg, registry)
}

// Option configures RunRule and FixFile.
type Option func(c *config)

// WithPath sets the file name, which selects the grammar. The default is
// test.jsx.
func WithPath(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithOptions sets the rule options.
func WithOptions(options map[string]any) Option {
	return func(c *config) {
		c.options = options
	}
}

// WithSettings sets the shared settings.
func WithSettings(settings linter.Settings) Option {
	return func(c *config) {
		c.settings = settings
	}
}

// WithSourceType parses the source as "module" or "script".
func WithSourceType(sourceType string) Option {
	return func(c *config) {
		c.parse = append(c.parse, frontend.WithSourceType(sourceType))
	}
}

// RunRule parses src, lints it with rule alone and applies one pass of the
// reported fixes. Operational errors fail the test.
func RunRule(t *testing.T, rule linter.RuleRunner, src string, opts ...Option) *Result {
	t.Helper()

	c := newConfig(opts)
	file, err := frontend.Parse(c.path, []byte(src), c.parse...)
	require.NoError(t, err)
	lntr := c.newLinter(rule)

	output, err := lntr.Lint(t.Context(), linter.NewDocumentInfo(file), nil, &linter.LintOptions{Fix: true})
	require.NoError(t, err)

	res := &Result{Output: src}
	for _, e := range output.Results {
		var vErr *validation.Error
		if !errors.As(e, &vErr) {
			require.NoError(t, e)
		}
		res.Errors = append(res.Errors, vErr)
	}

	engine := fix.NewEngine(fix.Options{Mode: fix.ModeAuto}, nil, lntr)
	next, _, err := engine.ProcessErrors(output.Results, []byte(src), 1, &fix.Result{})
	require.NoError(t, err)
	res.Output = string(next)
	return res
}

// FixFile runs the fix engine to convergence with rule alone and returns the
// final source.
func FixFile(t *testing.T, rule linter.RuleRunner, src string, opts ...Option) (string, *fix.Result) {
	t.Helper()

	c := newConfig(opts)
	engine := fix.NewEngine(fix.Options{
		Mode: fix.ModeAuto,
		Parse: func(path string, src []byte) (*ast.File, error) {
			return frontend.Parse(path, src, c.parse...)
		},
	}, nil, c.newLinter(rule))
	result, err := engine.FixFile(t.Context(), c.path, []byte(src))
	require.NoError(t, err)
	return string(result.Source), result
}
