package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/speakeasy-api/jsxlint/validation"
)

type TextFormatter struct {
	colors map[validation.Severity]*color.Color
}

// TextOption configures a TextFormatter.
type TextOption func(f *TextFormatter)

// WithColor colorizes the severity column.
func WithColor(enabled bool) TextOption {
	return func(f *TextFormatter) {
		if !enabled {
			f.colors = nil
			return
		}
		f.colors = map[validation.Severity]*color.Color{
			validation.SeverityError:   color.New(color.FgRed, color.Bold),
			validation.SeverityWarning: color.New(color.FgYellow),
			validation.SeverityHint:    color.New(color.FgBlue),
		}
		for _, c := range f.colors {
			c.EnableColor()
		}
	}
}

func NewTextFormatter(opts ...TextOption) *TextFormatter {
	f := &TextFormatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type textRow struct {
	document string
	location string
	severity validation.Severity
	rule     string
	message  string
}

// Format writes one aligned row per result. A document header is written
// whenever the document changes.
func (f *TextFormatter) Format(results []error) (string, error) {
	rows := make([]textRow, 0, len(results))
	var c counts
	locWidth, sevWidth, ruleWidth := 0, 0, 0

	for _, err := range results {
		var row textRow
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			row = textRow{
				document: vErr.Document,
				location: fmt.Sprintf("%d:%d", vErr.GetLineNumber(), vErr.GetColumnNumber()),
				severity: vErr.Severity,
				rule:     vErr.Rule,
				message:  vErr.MessageText(),
			}
			if vErr.Fix != nil {
				row.message += " [fixable]"
			}
		} else {
			row = textRow{location: "-", severity: validation.SeverityError, rule: "internal", message: err.Error()}
		}
		c.add(row.severity)
		locWidth = max(locWidth, len(row.location))
		sevWidth = max(sevWidth, len(row.severity))
		ruleWidth = max(ruleWidth, len(row.rule))
		rows = append(rows, row)
	}

	var sb strings.Builder
	document := ""
	for _, row := range rows {
		if row.document != "" && row.document != document {
			if document != "" {
				sb.WriteString("\n")
			}
			document = row.document
			sb.WriteString(document)
			sb.WriteString("\n")
		}
		severity := fmt.Sprintf("%-*s", sevWidth, row.severity)
		if c, ok := f.colors[row.severity]; ok {
			severity = c.Sprint(severity)
		}
		fmt.Fprintf(&sb, "%*s %s %-*s %s\n", locWidth, row.location, severity, ruleWidth, row.rule, row.message)
	}

	if len(results) > 0 {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "✖ %d problems (%d errors, %d warnings, %d hints)\n", len(results), c.errors, c.warnings, c.hints)
	}

	return sb.String(), nil
}
