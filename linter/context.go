package linter

import (
	"fmt"
	"log/slog"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/components"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/scope"
	"github.com/speakeasy-api/jsxlint/validation"
)

// Context is handed to a rule's Create for one file. It exposes the file, its
// scope graph, the component registry and the rule's resolved options, and
// collects the diagnostics the rule reports.
type Context struct {
	File       *ast.File
	Scope      *scope.Graph
	Components *components.Registry
	Settings   Settings
	Logger     *slog.Logger

	rule     RuleRunner
	severity validation.Severity
	options  map[string]any
	fixes    bool

	snapshot    *components.Snapshot
	diagnostics []error
}

// RuleID returns the id of the rule the context belongs to.
func (c *Context) RuleID() string {
	return c.rule.ID()
}

// Options returns the rule's options after defaults were merged in and the
// result validated against the rule's schema.
func (c *Context) Options() map[string]any {
	return c.options
}

// DecodeOptions copies the resolved options into target, typically a pointer
// to the rule's options struct.
func (c *Context) DecodeOptions(target any) error {
	if err := decodeOptions(c.options, target); err != nil {
		return ErrInvalidOptions.Wrapf("rule %s: %s", c.rule.ID(), err)
	}
	return nil
}

// SourceType returns "module" or "script".
func (c *Context) SourceType() string {
	if c.File == nil || c.File.Program == nil {
		return ""
	}
	return c.File.Program.SourceType
}

// Snapshot returns the finalized component registry. It is nil until the
// traversal has finished, so only ProgramExit callbacks should use it.
func (c *Context) Snapshot() *components.Snapshot {
	return c.snapshot
}

// FixesEnabled reports whether fixes are materialized for this run.
func (c *Context) FixesEnabled() bool {
	return c.fixes
}

// Report records a diagnostic for node n. fn, when not nil, computes the fix;
// it is only called when fixes were requested.
func (c *Context) Report(n ast.Node, msg validation.Message, fn fix.Func) {
	c.report(validation.NewError(c.rule.ID(), c.severity, msg, c.File, n), fn)
}

// ReportRange records a diagnostic for an arbitrary range of the source, such
// as a single token inside a string literal.
func (c *Context) ReportRange(r ast.Range, msg validation.Message, fn fix.Func) {
	e := &validation.Error{Rule: c.rule.ID(), Severity: c.severity, Message: msg, Range: r}
	if c.File != nil {
		e.Document = c.File.Path
		e.Line, e.Column = c.File.Position(r.Start)
	}
	c.report(e, fn)
}

func (c *Context) report(e *validation.Error, fn fix.Func) {
	if c.fixes && fn != nil {
		f, err := fn(fix.NewFixer(c.File.Source))
		if err != nil {
			c.diagnostics = append(c.diagnostics, fmt.Errorf("rule %s at %d:%d: %w", e.Rule, e.Line, e.Column, err))
		} else {
			e.Fix = f
		}
	}
	c.diagnostics = append(c.diagnostics, e)
}
