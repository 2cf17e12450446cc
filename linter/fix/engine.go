// Package fix drives autofixing: it lints a file, applies the fixes that do
// not conflict, reparses and lints again until the file is stable.
package fix

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/speakeasy-api/jsxlint/ast"
	edits "github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/frontend"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

// DefaultMaxPasses bounds the lint/fix loop when Options.MaxPasses is unset.
const DefaultMaxPasses = 10

// Mode controls how fixes are applied.
type Mode int

const (
	// ModeNone means no fixing (normal lint).
	ModeNone Mode = iota
	// ModeAuto applies every fix that does not conflict.
	ModeAuto
	// ModeInteractive asks the prompter before applying each fix.
	ModeInteractive
)

// ParseFunc parses a file for the next pass.
type ParseFunc func(path string, src []byte) (*ast.File, error)

// Options configures fix engine behavior.
type Options struct {
	// Mode controls which fixes are applied.
	Mode Mode
	// DryRun when true reports what would be fixed without applying changes.
	// Acts as a modifier on ModeAuto or ModeInteractive and stops after the
	// first pass.
	DryRun bool
	// MaxPasses bounds the number of lint/fix passes. Zero means
	// DefaultMaxPasses.
	MaxPasses int
	// Parse reparses the source between passes. Nil uses the tree-sitter
	// front-end.
	Parse ParseFunc
	// Logger receives one debug record per pass. Nil discards.
	Logger *slog.Logger
}

// SkipReason explains why a fix was skipped.
type SkipReason int

const (
	// SkipInteractive means the mode is interactive but no prompter is available.
	SkipInteractive SkipReason = iota
	// SkipConflict means a fix accepted earlier in the same pass touches the same text.
	SkipConflict
	// SkipUser means the user chose to skip the fix in interactive mode.
	SkipUser
)

func (r SkipReason) String() string {
	switch r {
	case SkipInteractive:
		return "no prompter"
	case SkipConflict:
		return "conflict"
	case SkipUser:
		return "skipped by user"
	default:
		return "unknown"
	}
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Error  *validation.Error
	Fix    *edits.Fix
	Pass   int
	Before string // source lines touched by the fix
	After  string // the same lines once the fix is applied
}

// SkippedFix records a fix that was skipped.
type SkippedFix struct {
	Error  *validation.Error
	Fix    *edits.Fix
	Pass   int
	Reason SkipReason
}

// FailedFix records a fix that failed to apply.
type FailedFix struct {
	Error    *validation.Error
	Fix      *edits.Fix
	FixError error
}

// Result tracks what the engine did.
type Result struct {
	Applied []AppliedFix
	Skipped []SkippedFix
	Failed  []FailedFix

	// Source is the fixed source. It equals the input in dry-run mode.
	Source []byte
	// Output is the lint output for Source.
	Output *linter.Output
	// Passes is the number of lint passes that applied fixes.
	Passes int
	// Converged is false when the pass limit was reached or the fixes
	// cycled back to a source seen before.
	Converged bool
	// Aborted is set when the user stopped an interactive run.
	Aborted bool

	declined []declined
}

// declined is a fix the user skipped. Its range follows the source through
// later passes so the same finding is not offered again.
type declined struct {
	rule string
	rng  ast.Range
}

func (r *Result) wasDeclined(vErr *validation.Error) bool {
	for _, d := range r.declined {
		if d.rule == vErr.Rule && d.rng == vErr.Range {
			return true
		}
	}
	return false
}

// shiftDeclined moves the declined ranges past the edits applied in a pass.
func (r *Result) shiftDeclined(applied []edits.Edit) {
	for i, d := range r.declined {
		delta := 0
		for _, e := range applied {
			if e.Range.End <= d.rng.Start {
				delta += len(e.Text) - e.Range.Len()
			}
		}
		r.declined[i].rng = ast.Range{Start: d.rng.Start + delta, End: d.rng.End + delta}
	}
}

// Changed reports whether the source was modified.
func (r *Result) Changed() bool {
	return r.Passes > 0
}

// Engine applies fixes to source files.
type Engine struct {
	opts     Options
	prompter validation.Prompter
	linter   *linter.Linter
	logger   *slog.Logger
}

// NewEngine creates a new fix engine.
func NewEngine(opts Options, prompter validation.Prompter, lntr *linter.Linter) *Engine {
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = DefaultMaxPasses
	}
	if opts.Parse == nil {
		opts.Parse = func(path string, src []byte) (*ast.File, error) {
			return frontend.Parse(path, src)
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		opts:     opts,
		prompter: prompter,
		linter:   lntr,
		logger:   logger,
	}
}

// FixFile lints src and applies fixes pass after pass until no fix remains,
// the pass limit is hit or the source starts cycling.
func (e *Engine) FixFile(ctx context.Context, path string, src []byte) (*Result, error) {
	result := &Result{Source: src, Converged: true}
	seen := map[uint64]bool{xxhash.Sum64(src): true}
	limit := e.opts.MaxPasses

	for pass := 1; ; pass++ {
		file, err := e.opts.Parse(path, src)
		if err != nil {
			if pass > 1 {
				return nil, fmt.Errorf("fixes of pass %d left %s unparsable: %w", pass-1, path, err)
			}
			return nil, err
		}
		output, err := e.linter.Lint(ctx, linter.NewDocumentInfo(file), nil, &linter.LintOptions{Fix: e.opts.Mode != ModeNone})
		if err != nil {
			return nil, err
		}
		result.Output = output
		if e.opts.Mode == ModeNone {
			return result, nil
		}

		next, applied, err := e.ProcessErrors(output.Results, src, pass, result)
		if err != nil {
			return nil, err
		}
		e.logger.Debug("fix pass",
			"document", path,
			"pass", pass,
			"applied", applied,
			"skipped", len(result.Skipped),
			"failed", len(result.Failed))

		if applied == 0 || e.opts.DryRun || result.Aborted {
			if result.Aborted && applied > 0 {
				src = next
				result.Passes++
				if err := e.relint(ctx, path, src, result); err != nil {
					return nil, err
				}
			}
			result.Source = src
			return result, nil
		}
		result.Passes++
		src = next

		h := xxhash.Sum64(src)
		if seen[h] {
			e.logger.Warn("fixes cycle", "document", path, "pass", pass)
			result.Converged = false
			break
		}
		seen[h] = true

		if pass == limit {
			if e.opts.Mode == ModeInteractive && e.prompter != nil {
				more, err := e.prompter.Confirm(fmt.Sprintf("%s still has fixes after %d passes. Continue?", path, pass))
				if err != nil {
					return nil, err
				}
				if more {
					limit += e.opts.MaxPasses
					continue
				}
			}
			e.logger.Warn("fix pass limit reached", "document", path, "passes", pass)
			result.Converged = false
			break
		}
	}

	result.Source = src
	if err := e.relint(ctx, path, src, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) relint(ctx context.Context, path string, src []byte, result *Result) error {
	file, err := e.opts.Parse(path, src)
	if err != nil {
		return fmt.Errorf("fixed source of %s is unparsable: %w", path, err)
	}
	output, err := e.linter.Lint(ctx, linter.NewDocumentInfo(file), nil, nil)
	if err != nil {
		return err
	}
	result.Output = output
	return nil
}

// ProcessErrors applies one pass of fixes from lint output to src and returns
// the new source and the number of fixes applied.
//
// Fixes are taken in document order (start of the first edit, then rule). A
// fix whose edits overlap or touch the edits of a fix accepted earlier in the
// pass is skipped; it is usually reported again on the next pass against the
// updated source. In
// dry-run mode fixes are recorded without modifying src, and conflict
// detection still operates.
func (e *Engine) ProcessErrors(errs []error, src []byte, pass int, result *Result) ([]byte, int, error) {
	if e.opts.Mode == ModeNone {
		return src, 0, nil
	}

	var fixable []*validation.Error
	for _, err := range errs {
		var vErr *validation.Error
		if errors.As(err, &vErr) && vErr.Fix != nil {
			fixable = append(fixable, vErr)
		}
	}
	slices.SortStableFunc(fixable, func(a, b *validation.Error) int {
		as, bs := fixStart(a), fixStart(b)
		if as != bs {
			return as - bs
		}
		return strings.Compare(a.Rule, b.Rule)
	})

	var (
		accepted []edits.Edit
		applied  int
	)
	for _, vErr := range fixable {
		f := vErr.Fix

		if result.wasDeclined(vErr) {
			continue
		}
		if edits.CollidesAny(accepted, f.Edits) {
			result.Skipped = append(result.Skipped, SkippedFix{Error: vErr, Fix: f, Pass: pass, Reason: SkipConflict})
			continue
		}

		before, after, err := preview(src, f.Edits)
		if err != nil {
			result.Failed = append(result.Failed, FailedFix{Error: vErr, Fix: f, FixError: err})
			continue
		}

		if e.opts.Mode == ModeInteractive {
			if e.prompter == nil {
				result.Skipped = append(result.Skipped, SkippedFix{Error: vErr, Fix: f, Pass: pass, Reason: SkipInteractive})
				continue
			}
			if err := e.prompter.PromptFix(vErr, before, after); err != nil {
				switch {
				case errors.Is(err, validation.ErrSkipFix):
					result.declined = append(result.declined, declined{rule: vErr.Rule, rng: vErr.Range})
					result.Skipped = append(result.Skipped, SkippedFix{Error: vErr, Fix: f, Pass: pass, Reason: SkipUser})
					continue
				case errors.Is(err, validation.ErrAbortFixes):
					result.Aborted = true
				default:
					result.Failed = append(result.Failed, FailedFix{Error: vErr, Fix: f, FixError: err})
					continue
				}
				break
			}
		}

		accepted = append(accepted, f.Edits...)
		applied++
		result.Applied = append(result.Applied, AppliedFix{Error: vErr, Fix: f, Pass: pass, Before: before, After: after})
	}

	if e.opts.DryRun || applied == 0 {
		return src, applied, nil
	}
	next, err := edits.Apply(src, accepted)
	if err != nil {
		return nil, 0, fmt.Errorf("pass %d: %w", pass, err)
	}
	result.shiftDeclined(accepted)
	return next, applied, nil
}

// fixStart is where the first edit of the fix begins, or the diagnostic start
// for a fix without edits.
func fixStart(vErr *validation.Error) int {
	if len(vErr.Fix.Edits) == 0 {
		return vErr.Range.Start
	}
	return vErr.Fix.Edits[0].Range.Start
}

// preview returns the full lines of src touched by fixEdits, before and after
// the edits are applied.
func preview(src []byte, fixEdits []edits.Edit) (string, string, error) {
	if len(fixEdits) == 0 {
		return "", "", nil
	}
	start, end := fixEdits[0].Range.Start, fixEdits[0].Range.End
	for _, ed := range fixEdits[1:] {
		start = min(start, ed.Range.Start)
		end = max(end, ed.Range.End)
	}
	if start < 0 || end > len(src) {
		return "", "", fmt.Errorf("fix range [%d,%d) out of range for %d bytes", start, end, len(src))
	}
	lineStart := bytes.LastIndexByte(src[:start], '\n') + 1
	lineEnd := len(src)
	if i := bytes.IndexByte(src[end:], '\n'); i >= 0 {
		lineEnd = end + i
	}

	shifted := make([]edits.Edit, len(fixEdits))
	for i, ed := range fixEdits {
		ed.Range = ast.Range{Start: ed.Range.Start - lineStart, End: ed.Range.End - lineStart}
		shifted[i] = ed
	}
	region := src[lineStart:lineEnd]
	after, err := edits.Apply(region, shifted)
	if err != nil {
		return "", "", err
	}
	return string(region), string(after), nil
}
