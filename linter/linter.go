package linter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/components"
	"github.com/speakeasy-api/jsxlint/linter/format"
	"github.com/speakeasy-api/jsxlint/scope"
	"github.com/speakeasy-api/jsxlint/validation"
	"golang.org/x/sync/errgroup"
)

// Linter is the main linting engine
type Linter struct {
	config    *Config
	registry  *Registry
	logger    *slog.Logger
	validator *optionsValidator
}

// Option configures a Linter.
type Option func(l *Linter)

// WithLogger sets the logger used for debug records. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLinter creates a new linter with the given configuration
func NewLinter(config *Config, registry *Registry, opts ...Option) *Linter {
	if config == nil {
		config = NewConfig()
	}
	l := &Linter{
		config:    config,
		registry:  registry,
		logger:    slog.New(slog.DiscardHandler),
		validator: newOptionsValidator(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Registry returns the rule registry
func (l *Linter) Registry() *Registry {
	return l.registry
}

// Config returns the configuration the linter was created with
func (l *Linter) Config() *Config {
	return l.config
}

// Lint runs all configured rules against the document in a single traversal.
// preExistingErrors, such as parse diagnostics from the host, are merged into
// the output.
func (l *Linter) Lint(ctx context.Context, docInfo *DocumentInfo, preExistingErrors []error, opts *LintOptions) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if docInfo == nil || docInfo.File == nil || docInfo.File.Program == nil {
		return nil, errors.New("linter: document has no parsed program")
	}

	var allErrs []error

	if len(preExistingErrors) > 0 {
		allErrs = append(allErrs, preExistingErrors...)
	}

	lintErrs, err := l.runRules(docInfo, opts)
	if err != nil {
		return nil, err
	}
	allErrs = append(allErrs, lintErrs...)

	// Apply severity overrides from config
	allErrs = l.applySeverityOverrides(allErrs)

	allErrs = l.filterIgnored(allErrs)

	// Sort errors by location
	validation.SortValidationErrors(allErrs)

	// Format output
	return l.formatOutput(allErrs), nil
}

// LintFiles lints independent documents concurrently. Outputs are returned in
// the order of docs. The first operational error cancels the remaining work.
func (l *Linter) LintFiles(ctx context.Context, docs []*DocumentInfo, opts *LintOptions) ([]*Output, error) {
	limit := runtime.GOMAXPROCS(0)
	if opts != nil && opts.Concurrency > 0 {
		limit = opts.Concurrency
	}

	outputs := make([]*Output, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, doc := range docs {
		g.Go(func() error {
			out, err := l.Lint(gctx, doc, nil, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", doc.Location(), err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// runRules creates the rule visitors for one file and drives the traversal:
// the component registry observes each node before the rule callbacks run,
// and ProgramExit callbacks run after the registry is finalized.
func (l *Linter) runRules(docInfo *DocumentInfo, opts *LintOptions) ([]error, error) {
	start := time.Now()
	file := docInfo.File

	graph := docInfo.Scope
	if graph == nil {
		graph = scope.Analyze(file.Program)
	}
	settings := l.config.Settings
	registry := components.NewRegistry(components.NewDetector(settings.Pragma, settings.CreateClass))

	var (
		contexts []*Context
		visitors []*Visitor
	)
	for _, rule := range l.getEnabledRules() {
		ruleConfig := l.getRuleConfig(rule.ID())
		options, err := l.validator.resolve(rule, ruleConfig.Options)
		if err != nil {
			return nil, err
		}

		c := &Context{
			File:       file,
			Scope:      graph,
			Components: registry,
			Settings:   settings,
			Logger:     l.logger.With("rule", rule.ID()),
			rule:       rule,
			severity:   ruleConfig.GetSeverity(rule.DefaultSeverity()),
			options:    options,
			fixes:      opts != nil && opts.Fix,
		}
		v, err := rule.Create(c)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID(), err)
		}
		if v == nil {
			continue
		}
		contexts = append(contexts, c)
		visitors = append(visitors, v)
	}
	l.logger.Debug("rules enabled", "document", file.Path, "rules", len(visitors))

	ast.Walk(file.Program, &traversal{registry: registry, visitors: visitors})

	snapshot := registry.Finalize()
	for i, v := range visitors {
		contexts[i].snapshot = snapshot
		if v.ProgramExit != nil {
			v.ProgramExit()
		}
	}

	var errs []error
	for _, c := range contexts {
		errs = append(errs, c.diagnostics...)
	}
	l.logger.Debug("traversal finished",
		"document", file.Path,
		"rules", len(visitors),
		"components", snapshot.Len(),
		"diagnostics", len(errs),
		"duration", time.Since(start))
	return errs, nil
}

type traversal struct {
	registry *components.Registry
	visitors []*Visitor
}

func (t *traversal) Enter(n ast.Node) {
	t.registry.Observe(n)
	for _, v := range t.visitors {
		v.dispatch(n)
	}
}

func (t *traversal) Leave(ast.Node) {}

func (l *Linter) getEnabledRules() []RuleRunner {
	// Map to track enabled status: ruleID -> enabled
	ruleStatus := make(map[string]bool)

	// Apply rulesets
	for _, ruleset := range l.config.Extends {
		if ids, ok := l.registry.Ruleset(ruleset); ok {
			for _, id := range ids {
				ruleStatus[id] = true
			}
		}
	}

	// Apply category config
	// Category config overrides ruleset config but is overridden by individual rule config
	for _, rule := range l.registry.Rules() {
		if catConfig, ok := l.config.Categories[rule.Category()]; ok {
			if catConfig.Enabled != nil {
				ruleStatus[rule.ID()] = *catConfig.Enabled
			}
		}
	}

	// Apply rule config
	for id, ruleConfig := range l.config.Rules {
		if ruleConfig.Enabled != nil {
			ruleStatus[id] = *ruleConfig.Enabled
		}
	}

	var enabled []RuleRunner
	for id, enabledFlag := range ruleStatus {
		if enabledFlag {
			if rule, ok := l.registry.Rule(id); ok {
				enabled = append(enabled, rule)
			}
		}
	}

	// Sort for deterministic order
	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].ID() < enabled[j].ID()
	})

	return enabled
}

func (l *Linter) getRuleConfig(ruleID string) RuleConfig {
	// Start with default config
	config := RuleConfig{}

	// Apply category config
	if rule, ok := l.registry.Rule(ruleID); ok {
		if catConfig, ok := l.config.Categories[rule.Category()]; ok {
			if catConfig.Severity != nil {
				config.Severity = catConfig.Severity
			}
		}
	}

	// Apply rule config
	if ruleConfig, ok := l.config.Rules[ruleID]; ok {
		if ruleConfig.Severity != nil {
			config.Severity = ruleConfig.Severity
		}
		if ruleConfig.Options != nil {
			config.Options = ruleConfig.Options
		}
	}

	return config
}

func (l *Linter) applySeverityOverrides(errs []error) []error {
	for _, err := range errs {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			config := l.getRuleConfig(vErr.Rule)
			if config.Severity != nil {
				vErr.Severity = *config.Severity
			}
		}
	}
	return errs
}

func (l *Linter) filterIgnored(errs []error) []error {
	if len(l.config.Ignores) == 0 {
		return errs
	}
	kept := errs[:0]
	for _, err := range errs {
		var vErr *validation.Error
		if errors.As(err, &vErr) && l.ignored(vErr) {
			continue
		}
		kept = append(kept, err)
	}
	return kept
}

func (l *Linter) ignored(vErr *validation.Error) bool {
	for i := range l.config.Ignores {
		if l.config.Ignores[i].Matches(vErr) {
			return true
		}
	}
	return false
}

func (l *Linter) formatOutput(errs []error) *Output {
	return &Output{
		Results:    errs,
		Format:     l.config.OutputFormat,
		categories: l.registry.CategoryOf,
	}
}

// Output represents the result of linting
type Output struct {
	Results []error
	Format  OutputFormat

	categories format.CategoryFunc
}

func (o *Output) HasErrors() bool {
	for _, err := range o.Results {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			if vErr.Severity == validation.SeverityError {
				return true
			}
		} else {
			// Non-validation errors are treated as errors
			return true
		}
	}
	return false
}

func (o *Output) ErrorCount() int {
	count := 0
	for _, err := range o.Results {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			if vErr.Severity == validation.SeverityError {
				count++
			}
		} else {
			count++
		}
	}
	return count
}

// Fixable returns the diagnostics carrying a fix.
func (o *Output) Fixable() []*validation.Error {
	var out []*validation.Error
	for _, err := range o.Results {
		var vErr *validation.Error
		if errors.As(err, &vErr) && vErr.Fix != nil {
			out = append(out, vErr)
		}
	}
	return out
}

// String renders the output in its configured format.
func (o *Output) String() string {
	switch o.Format {
	case OutputFormatJSON:
		return o.FormatJSON()
	case OutputFormatSummary:
		return o.FormatSummary()
	default:
		return o.FormatText()
	}
}

func (o *Output) FormatText() string {
	f := format.NewTextFormatter()
	s, _ := f.Format(o.Results)
	return s
}

func (o *Output) FormatJSON() string {
	f := format.NewJSONFormatter(o.categories)
	s, _ := f.Format(o.Results)
	return s
}

func (o *Output) FormatSummary() string {
	f := format.NewSummaryFormatter(o.categories)
	s, _ := f.Format(o.Results)
	return s
}
