package validation

import (
	"cmp"
	"slices"

	"github.com/speakeasy-api/jsxlint/errors"
)

// SortValidationErrors sorts the provided errors by document, line and
// column. Non-validation errors keep their relative order after the sorted
// diagnostics.
func SortValidationErrors(allErrors []error) {
	if len(allErrors) == 0 {
		return
	}

	var validErrs []*Error
	var otherErrs []error
	for _, err := range allErrors {
		var vErr *Error
		if errors.As(err, &vErr) {
			validErrs = append(validErrs, vErr)
		} else {
			otherErrs = append(otherErrs, err)
		}
	}

	slices.SortStableFunc(validErrs, compareValidationErrors)

	idx := 0
	for _, vErr := range validErrs {
		allErrors[idx] = vErr
		idx++
	}
	for _, err := range otherErrs {
		allErrors[idx] = err
		idx++
	}
}

// compareValidationErrors compares two diagnostics by document, line,
// column, severity, rule and message.
func compareValidationErrors(a, b *Error) int {
	return cmp.Or(
		cmp.Compare(a.Document, b.Document),
		cmp.Compare(a.GetLineNumber(), b.GetLineNumber()),
		cmp.Compare(a.GetColumnNumber(), b.GetColumnNumber()),
		cmp.Compare(a.Severity.Rank(), b.Severity.Rank()),
		cmp.Compare(a.Rule, b.Rule),
		cmp.Compare(a.MessageText(), b.MessageText()),
	)
}
