package validation

import "github.com/speakeasy-api/jsxlint/errors"

// ErrSkipFix is returned by a Prompter when the user chooses to skip a fix.
// Use errors.Is(err, ErrSkipFix) to check.
const ErrSkipFix = errors.Error("fix skipped by user")

// ErrAbortFixes is returned by a Prompter when the user stops fixing. Fixes
// already accepted are kept.
const ErrAbortFixes = errors.Error("fixing aborted by user")

// Prompter asks the user about fixes in interactive mode.
// Implementations can be terminal-based (stdin/stdout), GUI-based, or test stubs.
type Prompter interface {
	// PromptFix presents a finding and the source lines its fix changes,
	// before and after. Returning nil applies the fix; ErrSkipFix skips it
	// and ErrAbortFixes stops the run.
	PromptFix(finding *Error, before, after string) error

	// Confirm asks the user a yes/no question.
	Confirm(message string) (bool, error)
}
