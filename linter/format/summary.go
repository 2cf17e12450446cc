package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/speakeasy-api/jsxlint/validation"
)

// SummaryFormatter formats results as a per-rule summary table.
type SummaryFormatter struct {
	categories CategoryFunc
}

// NewSummaryFormatter creates a new SummaryFormatter. categories may be nil.
func NewSummaryFormatter(categories CategoryFunc) *SummaryFormatter {
	return &SummaryFormatter{categories: categories}
}

type ruleSummary struct {
	rule     string
	category string
	severity validation.Severity
	count    int
}

// Format outputs a per-rule summary table sorted by count descending.
func (f *SummaryFormatter) Format(results []error) (string, error) {
	byRule := make(map[string]*ruleSummary)
	var c counts

	for _, err := range results {
		rule, category, severity := "internal", "internal", validation.SeverityError
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			rule, severity = vErr.Rule, vErr.Severity
			category = categoryOf(f.categories, rule)
		}
		rs, ok := byRule[rule]
		if !ok {
			rs = &ruleSummary{rule: rule, category: category, severity: severity}
			byRule[rule] = rs
		}
		rs.count++
		c.add(severity)
	}

	// Sort by count descending, then by rule name
	sorted := make([]*ruleSummary, 0, len(byRule))
	for _, rs := range byRule {
		sorted = append(sorted, rs)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].rule < sorted[j].rule
	})

	var sb strings.Builder

	// Header
	fmt.Fprintf(&sb, "%-40s %8s %16s %8s\n", "Rule", "Severity", "Category", "Count")
	sb.WriteString(strings.Repeat("─", 75))
	sb.WriteString("\n")

	for _, rs := range sorted {
		fmt.Fprintf(&sb, "%-40s %8s %16s %8d\n", rs.rule, rs.severity, rs.category, rs.count)
	}

	sb.WriteString(strings.Repeat("─", 75))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "✖ %d problems (%d errors, %d warnings, %d hints) across %d rules\n",
		len(results), c.errors, c.warnings, c.hints, len(byRule))

	return sb.String(), nil
}
