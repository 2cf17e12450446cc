package fix_test

import (
	"errors"
	"testing"

	"github.com/speakeasy-api/jsxlint/ast"
	edits "github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/linter/fix"
	"github.com/speakeasy-api/jsxlint/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renameRule reports identifiers named from and fixes them to to.
type renameRule struct {
	id       string
	from, to string
}

func (r *renameRule) ID() string                           { return r.id }
func (r *renameRule) Category() string                     { return "style" }
func (r *renameRule) Description() string                  { return "renames " + r.from }
func (r *renameRule) Summary() string                      { return r.id }
func (r *renameRule) Link() string                         { return "" }
func (r *renameRule) DefaultSeverity() validation.Severity { return validation.SeverityWarning }
func (r *renameRule) Messages() map[string]string          { return map[string]string{"rename": "rename"} }
func (r *renameRule) FixAvailable() bool                   { return true }

func (r *renameRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	return &linter.Visitor{
		Identifier: func(n *ast.Identifier) {
			if n.Name != r.from {
				return
			}
			ctx.Report(n, validation.Text{MessageID: "rename", Template: "rename " + r.from}, func(fx edits.Fixer) (*edits.Fix, error) {
				return edits.New("rename to "+r.to, fx.ReplaceText(n, r.to))
			})
		},
	}, nil
}

func newLinter(rules ...linter.RuleRunner) *linter.Linter {
	registry := linter.NewRegistry()
	for _, r := range rules {
		registry.Register(r)
	}
	return linter.NewLinter(nil, registry)
}

type mockPrompter struct {
	answers  []error
	confirm  bool
	prompts  int
	confirms int
	previews [][2]string
}

func (p *mockPrompter) PromptFix(_ *validation.Error, before, after string) error {
	p.previews = append(p.previews, [2]string{before, after})
	p.prompts++
	if len(p.answers) == 0 {
		return nil
	}
	err := p.answers[0]
	p.answers = p.answers[1:]
	return err
}

func (p *mockPrompter) Confirm(string) (bool, error) {
	p.confirms++
	return p.confirm, nil
}

func TestEngine_FixFile_Auto(t *testing.T) {
	t.Parallel()

	engine := fix.NewEngine(fix.Options{Mode: fix.ModeAuto}, nil, newLinter(&renameRule{id: "rename-foo", from: "foo", to: "bar"}))
	result, err := engine.FixFile(t.Context(), "a.js", []byte("foo(1);\nlet x = foo;\n"))
	require.NoError(t, err)

	assert.Equal(t, "bar(1);\nlet x = bar;\n", string(result.Source))
	assert.Len(t, result.Applied, 2)
	assert.Equal(t, 1, result.Passes)
	assert.True(t, result.Converged)
	assert.True(t, result.Changed())
	assert.Empty(t, result.Output.Results, "final output reflects the fixed source")
	assert.Equal(t, "foo(1);", result.Applied[0].Before)
	assert.Equal(t, "bar(1);", result.Applied[0].After)
}

func TestEngine_FixFile_ChainedPasses(t *testing.T) {
	t.Parallel()

	lntr := newLinter(
		&renameRule{id: "a-to-b", from: "a", to: "b"},
		&renameRule{id: "b-to-c", from: "b", to: "c"},
	)
	result, err := fix.NewEngine(fix.Options{Mode: fix.ModeAuto}, nil, lntr).FixFile(t.Context(), "a.js", []byte("a;"))
	require.NoError(t, err)
	assert.Equal(t, "c;", string(result.Source))
	assert.Equal(t, 2, result.Passes)
	assert.True(t, result.Converged)
}

func TestEngine_FixFile_Conflict(t *testing.T) {
	t.Parallel()

	lntr := newLinter(
		&renameRule{id: "x-to-y", from: "x", to: "y"},
		&renameRule{id: "x-to-z", from: "x", to: "z"},
	)
	result, err := fix.NewEngine(fix.Options{Mode: fix.ModeAuto}, nil, lntr).FixFile(t.Context(), "a.js", []byte("x;"))
	require.NoError(t, err)

	assert.Equal(t, "y;", string(result.Source), "the first rule in id order wins")
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, fix.SkipConflict, result.Skipped[0].Reason)
	assert.Equal(t, "x-to-z", result.Skipped[0].Error.Rule)
	assert.Equal(t, "conflict", result.Skipped[0].Reason.String())
}

func TestEngine_FixFile_Cycle(t *testing.T) {
	t.Parallel()

	lntr := newLinter(
		&renameRule{id: "p-to-q", from: "p", to: "q"},
		&renameRule{id: "q-to-p", from: "q", to: "p"},
	)
	result, err := fix.NewEngine(fix.Options{Mode: fix.ModeAuto}, nil, lntr).FixFile(t.Context(), "a.js", []byte("p;"))
	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, 2, result.Passes)
	assert.Equal(t, "p;", string(result.Source))
	assert.Len(t, result.Output.Results, 1, "output is recomputed for the final source")
}

func TestEngine_FixFile_PassLimit(t *testing.T) {
	t.Parallel()

	lntr := newLinter(
		&renameRule{id: "1", from: "a", to: "b"},
		&renameRule{id: "2", from: "b", to: "c"},
		&renameRule{id: "3", from: "c", to: "d"},
	)
	result, err := fix.NewEngine(fix.Options{Mode: fix.ModeAuto, MaxPasses: 2}, nil, lntr).FixFile(t.Context(), "a.js", []byte("a;"))
	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, "c;", string(result.Source))
	assert.Equal(t, 2, result.Passes)
}

func TestEngine_FixFile_DryRun(t *testing.T) {
	t.Parallel()

	engine := fix.NewEngine(fix.Options{Mode: fix.ModeAuto, DryRun: true}, nil, newLinter(&renameRule{id: "r", from: "foo", to: "bar"}))
	result, err := engine.FixFile(t.Context(), "a.js", []byte("foo;"))
	require.NoError(t, err)
	assert.Equal(t, "foo;", string(result.Source))
	assert.Len(t, result.Applied, 1)
	assert.False(t, result.Changed())
}

func TestEngine_FixFile_ModeNone(t *testing.T) {
	t.Parallel()

	engine := fix.NewEngine(fix.Options{Mode: fix.ModeNone}, nil, newLinter(&renameRule{id: "r", from: "foo", to: "bar"}))
	result, err := engine.FixFile(t.Context(), "a.js", []byte("foo;"))
	require.NoError(t, err)
	assert.Empty(t, result.Applied)
	assert.Len(t, result.Output.Results, 1)
	assert.Empty(t, result.Output.Fixable(), "fixes are not computed without a fix mode")
}

func TestEngine_FixFile_Unparsable(t *testing.T) {
	t.Parallel()

	engine := fix.NewEngine(fix.Options{Mode: fix.ModeAuto}, nil, newLinter(&renameRule{id: "r", from: "foo", to: "("}))
	_, err := engine.FixFile(t.Context(), "a.js", []byte("foo;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixes of pass 1 left a.js unparsable")
}

func TestEngine_FixFile_CustomParse(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("no parser")
	engine := fix.NewEngine(fix.Options{
		Mode:  fix.ModeAuto,
		Parse: func(string, []byte) (*ast.File, error) { return nil, parseErr },
	}, nil, newLinter())
	_, err := engine.FixFile(t.Context(), "a.js", []byte("x;"))
	require.ErrorIs(t, err, parseErr)
}

func TestEngine_Interactive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prompter *mockPrompter
		source   string
		skipped  []fix.SkipReason
		aborted  bool
	}{
		{
			name:     "apply all",
			prompter: &mockPrompter{},
			source:   "bar; bar;",
		},
		{
			name:     "skip first",
			prompter: &mockPrompter{answers: []error{validation.ErrSkipFix}},
			source:   "foo; bar;",
			skipped:  []fix.SkipReason{fix.SkipUser},
		},
		{
			name:     "abort keeps accepted fixes",
			prompter: &mockPrompter{answers: []error{nil, validation.ErrAbortFixes}},
			source:   "bar; foo;",
			aborted:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := fix.NewEngine(fix.Options{Mode: fix.ModeInteractive}, tt.prompter, newLinter(&renameRule{id: "r", from: "foo", to: "bar"}))
			result, err := engine.FixFile(t.Context(), "a.js", []byte("foo; foo;"))
			require.NoError(t, err)
			assert.Equal(t, tt.source, string(result.Source))
			assert.Equal(t, tt.aborted, result.Aborted)

			var reasons []fix.SkipReason
			for _, s := range result.Skipped {
				reasons = append(reasons, s.Reason)
			}
			assert.Equal(t, tt.skipped, reasons)
			require.NotEmpty(t, tt.prompter.previews)
			assert.Equal(t, "foo; foo;", tt.prompter.previews[0][0])
		})
	}
}

func TestEngine_Interactive_NoPrompter(t *testing.T) {
	t.Parallel()

	engine := fix.NewEngine(fix.Options{Mode: fix.ModeInteractive}, nil, newLinter(&renameRule{id: "r", from: "foo", to: "bar"}))
	result, err := engine.FixFile(t.Context(), "a.js", []byte("foo;"))
	require.NoError(t, err)
	assert.Equal(t, "foo;", string(result.Source))
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, fix.SkipInteractive, result.Skipped[0].Reason)
}

func TestEngine_Interactive_ConfirmMorePasses(t *testing.T) {
	t.Parallel()

	lntr := newLinter(
		&renameRule{id: "1", from: "a", to: "b"},
		&renameRule{id: "2", from: "b", to: "c"},
	)
	prompter := &mockPrompter{confirm: true}
	engine := fix.NewEngine(fix.Options{Mode: fix.ModeInteractive, MaxPasses: 1}, prompter, lntr)
	result, err := engine.FixFile(t.Context(), "a.js", []byte("a;"))
	require.NoError(t, err)
	assert.Equal(t, "c;", string(result.Source))
	assert.True(t, result.Converged)
	assert.Equal(t, 2, prompter.confirms)
}

func TestEngine_ProcessErrors_Failed(t *testing.T) {
	t.Parallel()

	bad, err := edits.New("out of range", edits.Edit{Range: ast.Range{Start: 2, End: 50}, Text: "x"})
	require.NoError(t, err)
	good, err := edits.New("ok", edits.Edit{Range: ast.Range{Start: 0, End: 1}, Text: "y"})
	require.NoError(t, err)

	errs := []error{
		errors.New("internal"),
		&validation.Error{Rule: "bad", Range: ast.Range{Start: 2, End: 50}, Fix: bad},
		&validation.Error{Rule: "good", Range: ast.Range{Start: 0, End: 1}, Fix: good},
		&validation.Error{Rule: "nofix"},
	}
	result := &fix.Result{}
	engine := fix.NewEngine(fix.Options{Mode: fix.ModeAuto}, nil, newLinter())
	out, applied, err := engine.ProcessErrors(errs, []byte("x;"), 1, result)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, "y;", string(out))
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "bad", result.Failed[0].Error.Rule)
}

func TestEngine_ProcessErrors_TouchingFixes(t *testing.T) {
	t.Parallel()

	second, err := edits.New("second", edits.Edit{Range: ast.Range{Start: 1, End: 2}, Text: "Y"})
	require.NoError(t, err)
	first, err := edits.New("first", edits.Edit{Range: ast.Range{Start: 0, End: 1}, Text: "X"})
	require.NoError(t, err)

	errs := []error{
		&validation.Error{Rule: "b", Range: ast.Range{Start: 0, End: 2}, Fix: second},
		&validation.Error{Rule: "a", Range: ast.Range{Start: 1, End: 2}, Fix: first},
	}
	result := &fix.Result{}
	engine := fix.NewEngine(fix.Options{Mode: fix.ModeAuto}, nil, newLinter())
	out, applied, err := engine.ProcessErrors(errs, []byte("xy;"), 1, result)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, "Xy;", string(out), "fixes are ordered by their edits, not their diagnostics")
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "b", result.Skipped[0].Error.Rule)
	assert.Equal(t, fix.SkipConflict, result.Skipped[0].Reason)
}
