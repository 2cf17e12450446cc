// Package fix computes the text edits behind autofixes: edit construction,
// overlap validation, conflict tests between fixes and splicing into source.
package fix

import (
	"fmt"
	"slices"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/errors"
)

// ErrOverlappingEdits is returned when the edits of one fix overlap.
const ErrOverlappingEdits = errors.Error("overlapping edits")

// Edit replaces the source covered by Range with Text. An empty range is an
// insertion and an empty Text a removal.
type Edit struct {
	Range ast.Range
	Text  string
}

func (e Edit) String() string {
	return fmt.Sprintf("%s %q", e.Range, e.Text)
}

// Fix is the set of edits correcting one diagnostic.
type Fix struct {
	Description string
	// Edits are sorted by position and never overlap.
	Edits []Edit
}

// New builds a fix from edits given in any order. It fails with
// ErrOverlappingEdits when two edits overlap.
func New(description string, edits ...Edit) (*Fix, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, compareEdits)
	for i := 1; i < len(sorted); i++ {
		if Conflicts(sorted[i-1], sorted[i]) {
			return nil, ErrOverlappingEdits.Wrapf("%s: %s and %s", description, sorted[i-1], sorted[i])
		}
	}
	return &Fix{Description: description, Edits: sorted}, nil
}

// FixDescription returns the description of the fix.
func (f *Fix) FixDescription() string {
	return f.Description
}

// Func computes the fix for a diagnostic. It is only called when fixes are
// requested.
type Func func(fx Fixer) (*Fix, error)

func compareEdits(a, b Edit) int {
	if a.Range.Start != b.Range.Start {
		return a.Range.Start - b.Range.Start
	}
	return a.Range.End - b.Range.End
}

// Conflicts reports whether two edits overlap. Ranges are half-open; an
// insertion conflicts with a span only when it lies strictly inside it, and
// two insertions never conflict.
func Conflicts(a, b Edit) bool {
	aStart, aEnd := a.Range.Start, a.Range.End
	bStart, bEnd := b.Range.Start, b.Range.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart < aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart < bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// Touches reports whether two non-empty edits meet at a boundary.
func Touches(a, b Edit) bool {
	if a.Range.Start == a.Range.End || b.Range.Start == b.Range.End {
		return false
	}
	return a.Range.End == b.Range.Start || b.Range.End == a.Range.Start
}

// CollidesAny reports whether any edit of a conflicts with or touches any
// edit of b. Fixes of different diagnostics that collide are not applied in
// the same pass.
func CollidesAny(a, b []Edit) bool {
	for _, x := range a {
		for _, y := range b {
			if Conflicts(x, y) || Touches(x, y) {
				return true
			}
		}
	}
	return false
}
