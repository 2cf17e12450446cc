package linter_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/components"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/frontend"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, path, src string) *linter.DocumentInfo {
	t.Helper()
	return linter.NewDocumentInfo(frontend.MustParse(path, src))
}

func rules(t *testing.T, errs []error) []string {
	t.Helper()
	var out []string
	for _, err := range errs {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			out = append(out, vErr.Rule)
		} else {
			out = append(out, "internal")
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func TestLinter_RuleSelection(t *testing.T) {
	t.Parallel()

	newRegistry := func(t *testing.T) *linter.Registry {
		t.Helper()
		registry := linter.NewRegistry()
		registry.Register(identifierRule("test-rule-1", "style", validation.SeverityError, "foo"))
		registry.Register(identifierRule("test-rule-2", "security", validation.SeverityWarning, "foo"))
		require.NoError(t, registry.RegisterRuleset("recommended", []string{"test-rule-2"}))
		return registry
	}

	tests := []struct {
		name     string
		config   *linter.Config
		expected []string
	}{
		{
			name:     "extends all includes all rules",
			config:   &linter.Config{Extends: []string{"all"}},
			expected: []string{"test-rule-1", "test-rule-2"},
		},
		{
			name:     "extends ruleset",
			config:   &linter.Config{Extends: []string{"recommended"}},
			expected: []string{"test-rule-2"},
		},
		{
			name: "category disabled",
			config: &linter.Config{
				Extends:    []string{"all"},
				Categories: map[string]linter.CategoryConfig{"style": {Enabled: ptr(false)}},
			},
			expected: []string{"test-rule-2"},
		},
		{
			name: "rule config overrides category",
			config: &linter.Config{
				Extends:    []string{"all"},
				Categories: map[string]linter.CategoryConfig{"style": {Enabled: ptr(false)}},
				Rules:      map[string]linter.RuleConfig{"test-rule-1": {Enabled: ptr(true)}},
			},
			expected: []string{"test-rule-1", "test-rule-2"},
		},
		{
			name: "rule enabled without extends",
			config: &linter.Config{
				Rules: map[string]linter.RuleConfig{"test-rule-1": {Enabled: ptr(true)}},
			},
			expected: []string{"test-rule-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lntr := linter.NewLinter(tt.config, newRegistry(t))
			output, err := lntr.Lint(t.Context(), doc(t, "a.js", "const foo = 1;"), nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rules(t, output.Results))
		})
	}
}

func TestLinter_SeverityOverrides(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(identifierRule("style-rule", "style", validation.SeverityError, "foo"))
	registry.Register(identifierRule("security-rule", "security", validation.SeverityError, "foo"))

	config := &linter.Config{
		Extends:    []string{"all"},
		Categories: map[string]linter.CategoryConfig{"style": {Severity: ptr(validation.SeverityHint)}},
		Rules:      map[string]linter.RuleConfig{"security-rule": {Severity: ptr(validation.SeverityWarning)}},
	}
	output, err := linter.NewLinter(config, registry).Lint(t.Context(), doc(t, "a.js", "foo;"), nil, nil)
	require.NoError(t, err)
	require.Len(t, output.Results, 2)

	severities := map[string]validation.Severity{}
	for _, err := range output.Results {
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		severities[vErr.Rule] = vErr.Severity
	}
	assert.Equal(t, validation.SeverityWarning, severities["security-rule"])
	assert.Equal(t, validation.SeverityHint, severities["style-rule"])
	assert.False(t, output.HasErrors())
}

func TestLinter_Traversal_RegistryObservesFirst(t *testing.T) {
	t.Parallel()

	var (
		enclosing      []string
		snapshotDuring *components.Snapshot
		exitNames      []string
	)
	registry := linter.NewRegistry()
	registry.Register(&mockRule{
		id:              "probe",
		category:        "test",
		defaultSeverity: validation.SeverityError,
		create: func(ctx *linter.Context) (*linter.Visitor, error) {
			return &linter.Visitor{
				ClassDeclaration: func(n *ast.ClassDeclaration) {
					if d := ctx.Components.Enclosing(n); d != nil {
						enclosing = append(enclosing, d.Name)
					}
					snapshotDuring = ctx.Snapshot()
				},
				ProgramExit: func() {
					for _, d := range ctx.Snapshot().List() {
						exitNames = append(exitNames, d.Name)
					}
				},
			}, nil
		},
	})

	src := `class A extends React.Component { render() { return <div />; } }
class B {}
`
	_, err := linter.NewLinter(nil, registry).Lint(t.Context(), doc(t, "a.jsx", src), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, enclosing, "the registry sees the class before the rule callback")
	assert.Nil(t, snapshotDuring, "no snapshot exists during the traversal")
	assert.Equal(t, []string{"A"}, exitNames)
}

func TestLinter_Traversal_RuleIDOrder(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(id string) *mockRule {
		return &mockRule{
			id:              id,
			category:        "test",
			defaultSeverity: validation.SeverityError,
			create: func(*linter.Context) (*linter.Visitor, error) {
				return &linter.Visitor{
					Identifier: func(n *ast.Identifier) {
						mu.Lock()
						defer mu.Unlock()
						order = append(order, id+":"+n.Name)
					},
				}, nil
			},
		}
	}

	registry := linter.NewRegistry()
	registry.Register(record("b-rule"))
	registry.Register(record("a-rule"))

	_, err := linter.NewLinter(nil, registry).Lint(t.Context(), doc(t, "a.js", "x; y;"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-rule:x", "b-rule:x", "a-rule:y", "b-rule:y"}, order)
}

func TestLinter_NilVisitorDisablesRule(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(&mockRule{
		id:              "script-only",
		category:        "test",
		defaultSeverity: validation.SeverityError,
		create: func(ctx *linter.Context) (*linter.Visitor, error) {
			if ctx.SourceType() == "module" {
				return nil, nil
			}
			return &linter.Visitor{ProgramExit: func() {}}, nil
		},
	})

	output, err := linter.NewLinter(nil, registry).Lint(t.Context(), doc(t, "a.js", "x;"), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, output.Results)
}

func fixingRule(fn fix.Func) *mockRule {
	return &mockRule{
		id:              "fixing",
		category:        "test",
		defaultSeverity: validation.SeverityWarning,
		create: func(ctx *linter.Context) (*linter.Visitor, error) {
			return &linter.Visitor{
				Identifier: func(n *ast.Identifier) {
					ctx.Report(n, found("rename"), fn)
				},
			}, nil
		},
	}
}

func TestLinter_Fixes(t *testing.T) {
	t.Parallel()

	calls := 0
	fn := func(fx fix.Fixer) (*fix.Fix, error) {
		calls++
		return fix.New("rename", fx.ReplaceRange(ast.Range{Start: 0, End: 3}, "bar"))
	}

	registry := linter.NewRegistry()
	registry.Register(fixingRule(fn))
	lntr := linter.NewLinter(nil, registry)

	output, err := lntr.Lint(t.Context(), doc(t, "a.js", "foo;"), nil, nil)
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	assert.Empty(t, output.Fixable(), "fixes are not computed unless requested")
	assert.Equal(t, 0, calls)

	output, err = lntr.Lint(t.Context(), doc(t, "a.js", "foo;"), nil, &linter.LintOptions{Fix: true})
	require.NoError(t, err)
	fixable := output.Fixable()
	require.Len(t, fixable, 1)
	assert.Equal(t, "rename", fixable[0].Fix.Description)
	assert.Equal(t, 1, calls)
}

func TestLinter_FixError_IsInternal(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(fixingRule(func(fx fix.Fixer) (*fix.Fix, error) {
		return fix.New("overlap",
			fx.ReplaceRange(ast.Range{Start: 0, End: 2}, "a"),
			fx.ReplaceRange(ast.Range{Start: 1, End: 3}, "b"),
		)
	}))

	output, err := linter.NewLinter(nil, registry).Lint(t.Context(), doc(t, "a.js", "foo;"), nil, &linter.LintOptions{Fix: true})
	require.NoError(t, err)
	require.Len(t, output.Results, 2)
	assert.ElementsMatch(t, []string{"fixing", "internal"}, rules(t, output.Results))
	assert.True(t, output.HasErrors(), "internal errors count as errors")

	var internal error
	for _, r := range output.Results {
		var vErr *validation.Error
		if !errors.As(r, &vErr) {
			internal = r
		}
	}
	require.ErrorIs(t, internal, fix.ErrOverlappingEdits)
}

func TestLinter_Ignores(t *testing.T) {
	t.Parallel()

	newRegistry := func() *linter.Registry {
		registry := linter.NewRegistry()
		registry.Register(identifierRule("rule-a", "style", validation.SeverityError, "foo"))
		registry.Register(identifierRule("rule-b", "style", validation.SeverityError, "foo"))
		return registry
	}

	tests := []struct {
		name     string
		path     string
		ignores  []linter.IgnorePattern
		expected []string
	}{
		{
			name:     "rule only",
			path:     "src/a.js",
			ignores:  []linter.IgnorePattern{{Rule: "rule-a"}},
			expected: []string{"rule-b"},
		},
		{
			name:     "files glob matches",
			path:     "src/gen/a.generated.js",
			ignores:  []linter.IgnorePattern{{Files: "**/*.generated.js"}},
			expected: nil,
		},
		{
			name:     "files glob does not match",
			path:     "src/a.js",
			ignores:  []linter.IgnorePattern{{Files: "**/*.generated.js"}},
			expected: []string{"rule-a", "rule-b"},
		},
		{
			name:     "message pattern",
			path:     "src/a.js",
			ignores:  []linter.IgnorePattern{{Rule: "rule-b", MessagePattern: "^found f"}},
			expected: []string{"rule-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := linter.NewConfig()
			config.Ignores = tt.ignores
			require.NoError(t, config.Validate())

			output, err := linter.NewLinter(config, newRegistry()).Lint(t.Context(), doc(t, tt.path, "foo;"), nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rules(t, output.Results))
		})
	}
}

func TestLinter_Options(t *testing.T) {
	t.Parallel()

	var got struct {
		Maximum int  `json:"maximum"`
		Strict  bool `json:"strict"`
	}
	rule := &configurableRule{
		mockRule: mockRule{
			id:              "configurable",
			category:        "style",
			defaultSeverity: validation.SeverityError,
			create: func(ctx *linter.Context) (*linter.Visitor, error) {
				if err := ctx.DecodeOptions(&got); err != nil {
					return nil, err
				}
				return &linter.Visitor{}, nil
			},
		},
		schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"maximum": map[string]any{"type": "integer", "minimum": 1},
				"strict":  map[string]any{"type": "boolean"},
			},
			"additionalProperties": false,
		},
		defaults: map[string]any{"maximum": 1, "strict": false},
	}
	registry := linter.NewRegistry()
	registry.Register(rule)

	t.Run("defaults merged with configured options", func(t *testing.T) {
		config := linter.NewConfig()
		config.Rules["configurable"] = linter.RuleConfig{Options: map[string]any{"maximum": 3}}

		_, err := linter.NewLinter(config, registry).Lint(t.Context(), doc(t, "a.js", "x;"), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Maximum)
		assert.False(t, got.Strict)
	})

	t.Run("invalid options", func(t *testing.T) {
		config := linter.NewConfig()
		config.Rules["configurable"] = linter.RuleConfig{Options: map[string]any{"maximum": 0, "extra": true}}

		_, err := linter.NewLinter(config, registry).Lint(t.Context(), doc(t, "a.js", "x;"), nil, nil)
		require.ErrorIs(t, err, linter.ErrInvalidOptions)
		assert.Contains(t, err.Error(), "rule configurable")
	})
}

func TestLinter_Options_NotConfigurable(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(identifierRule("plain", "style", validation.SeverityError, "x"))
	config := linter.NewConfig()
	config.Rules["plain"] = linter.RuleConfig{Options: map[string]any{"a": 1}}

	_, err := linter.NewLinter(config, registry).Lint(t.Context(), doc(t, "a.js", "x;"), nil, nil)
	require.ErrorIs(t, err, linter.ErrInvalidOptions)
}

func TestLinter_PreExistingErrors(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(identifierRule("rule", "style", validation.SeverityWarning, "x"))

	preExisting := errors.New("host failure")
	output, err := linter.NewLinter(nil, registry).Lint(t.Context(), doc(t, "a.js", "x;"), []error{preExisting}, nil)
	require.NoError(t, err)
	require.Len(t, output.Results, 2)
	assert.Equal(t, []string{"rule", "internal"}, rules(t, output.Results), "non-validation errors sort last")
	assert.Equal(t, 1, output.ErrorCount())
}

func TestLinter_ErrorSorting(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(identifierRule("z-rule", "style", validation.SeverityError, "b"))
	registry.Register(identifierRule("a-rule", "style", validation.SeverityError, "a"))

	output, err := linter.NewLinter(nil, registry).Lint(t.Context(), doc(t, "a.js", "b;\na;\n"), nil, nil)
	require.NoError(t, err)
	require.Len(t, output.Results, 2)

	var lines []int
	for _, r := range output.Results {
		var vErr *validation.Error
		require.ErrorAs(t, r, &vErr)
		lines = append(lines, vErr.Line)
	}
	assert.Equal(t, []int{1, 2}, lines)
}

func TestLinter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := linter.NewLinter(nil, linter.NewRegistry()).Lint(ctx, doc(t, "a.js", "x;"), nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLinter_LintFiles(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(identifierRule("rule", "style", validation.SeverityError, "x"))
	lntr := linter.NewLinter(nil, registry)

	var docs []*linter.DocumentInfo
	for i := range 12 {
		docs = append(docs, doc(t, fmt.Sprintf("f%02d.js", i), "x;\n"+strings.Repeat("x;", i)))
	}

	for _, concurrency := range []int{1, 4, 0} {
		outputs, err := lntr.LintFiles(t.Context(), docs, &linter.LintOptions{Concurrency: concurrency})
		require.NoError(t, err)
		require.Len(t, outputs, len(docs))
		for i, out := range outputs {
			assert.Len(t, out.Results, i+1, "document %d at concurrency %d", i, concurrency)
			for _, r := range out.Results {
				var vErr *validation.Error
				require.ErrorAs(t, r, &vErr)
				assert.Equal(t, fmt.Sprintf("f%02d.js", i), vErr.Document)
			}
		}
	}
}

func TestLinter_LintFiles_Error(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(identifierRule("plain", "style", validation.SeverityError, "x"))
	config := linter.NewConfig()
	config.Rules["plain"] = linter.RuleConfig{Options: map[string]any{"a": 1}}

	_, err := linter.NewLinter(config, registry).LintFiles(t.Context(), []*linter.DocumentInfo{doc(t, "bad.js", "x;")}, nil)
	require.ErrorIs(t, err, linter.ErrInvalidOptions)
	assert.Contains(t, err.Error(), "bad.js")
}

func TestOutput_HasErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		results  []error
		expected bool
		count    int
	}{
		{name: "empty", expected: false, count: 0},
		{
			name:     "warnings only",
			results:  []error{&validation.Error{Rule: "r", Severity: validation.SeverityWarning}},
			expected: false,
			count:    0,
		},
		{
			name: "errors and hints",
			results: []error{
				&validation.Error{Rule: "r", Severity: validation.SeverityError},
				&validation.Error{Rule: "r", Severity: validation.SeverityHint},
				&validation.Error{Rule: "r", Severity: validation.SeverityError},
			},
			expected: true,
			count:    2,
		},
		{name: "non-validation error", results: []error{errors.New("boom")}, expected: true, count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			output := &linter.Output{Results: tt.results}
			assert.Equal(t, tt.expected, output.HasErrors())
			assert.Equal(t, tt.count, output.ErrorCount())
		})
	}
}

func TestOutput_Formatting(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	registry.Register(identifierRule("jsx-rule", "security", validation.SeverityError, "x"))

	for _, tt := range []struct {
		format   linter.OutputFormat
		contains string
	}{
		{format: linter.OutputFormatText, contains: "found x"},
		{format: linter.OutputFormatJSON, contains: `"category": "security"`},
		{format: linter.OutputFormatSummary, contains: "across 1 rules"},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			config := linter.NewConfig()
			config.OutputFormat = tt.format
			output, err := linter.NewLinter(config, registry).Lint(t.Context(), doc(t, "a.js", "x;"), nil, nil)
			require.NoError(t, err)
			assert.Contains(t, output.String(), tt.contains)
		})
	}
}

func TestLinter_Registry(t *testing.T) {
	t.Parallel()

	registry := linter.NewRegistry()
	lntr := linter.NewLinter(nil, registry)
	assert.Same(t, registry, lntr.Registry())
	assert.Equal(t, []string{"all"}, lntr.Config().Extends)
}
