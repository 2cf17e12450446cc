package fix

import (
	"fmt"
	"slices"
)

// Apply splices edits into src in a single right-to-left pass and returns the
// new source. src is not modified. Overlapping edits are rejected with
// ErrOverlappingEdits; insertions at the same offset keep their given order.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	type indexed struct {
		Edit
		idx int
	}
	ordered := make([]indexed, len(edits))
	for i, e := range edits {
		if e.Range.Start < 0 || e.Range.End < e.Range.Start || e.Range.End > len(src) {
			return nil, fmt.Errorf("edit %s out of range for %d bytes", e, len(src))
		}
		ordered[i] = indexed{Edit: e, idx: i}
	}
	slices.SortFunc(ordered, func(a, b indexed) int {
		if a.Range.Start != b.Range.Start {
			return b.Range.Start - a.Range.Start
		}
		if a.Range.End != b.Range.End {
			return b.Range.End - a.Range.End
		}
		return b.idx - a.idx
	})
	for i := 1; i < len(ordered); i++ {
		if Conflicts(ordered[i-1].Edit, ordered[i].Edit) {
			return nil, ErrOverlappingEdits.Wrapf("%s and %s", ordered[i].Edit, ordered[i-1].Edit)
		}
	}

	out := slices.Clone(src)
	for _, e := range ordered {
		out = slices.Concat(out[:e.Range.Start], []byte(e.Text), out[e.Range.End:])
	}
	return out, nil
}
