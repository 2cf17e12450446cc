package format

import (
	"encoding/json"
	"errors"

	"github.com/speakeasy-api/jsxlint/validation"
)

type JSONFormatter struct {
	categories CategoryFunc
}

// NewJSONFormatter returns a JSON formatter. categories may be nil, in which
// case the category is derived from the rule id prefix.
func NewJSONFormatter(categories CategoryFunc) *JSONFormatter {
	return &JSONFormatter{categories: categories}
}

type jsonOutput struct {
	Results []jsonResult `json:"results"`
	Summary jsonSummary  `json:"summary"`
}

type jsonResult struct {
	Rule      string       `json:"rule"`
	Category  string       `json:"category"`
	Severity  string       `json:"severity"`
	MessageID string       `json:"messageId,omitempty"`
	Message   string       `json:"message"`
	Location  jsonLocation `json:"location"`
	Document  string       `json:"document,omitempty"`
	Fix       *jsonFix     `json:"fix,omitempty"`
}

type jsonLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Start  int `json:"start"`
	End    int `json:"end"`
}

type jsonFix struct {
	Description string     `json:"description"`
	Edits       []jsonEdit `json:"edits"`
}

type jsonEdit struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type jsonSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Hints    int `json:"hints"`
}

func (f *JSONFormatter) Format(results []error) (string, error) {
	output := jsonOutput{
		Results: make([]jsonResult, 0, len(results)),
	}
	var c counts

	for _, err := range results {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			result := jsonResult{
				Rule:      vErr.Rule,
				Category:  categoryOf(f.categories, vErr.Rule),
				Severity:  vErr.Severity.String(),
				MessageID: vErr.MessageID(),
				Message:   vErr.MessageText(),
				Location: jsonLocation{
					Line:   vErr.GetLineNumber(),
					Column: vErr.GetColumnNumber(),
					Start:  vErr.Range.Start,
					End:    vErr.Range.End,
				},
				Document: vErr.Document,
			}

			if vErr.Fix != nil {
				jf := &jsonFix{Description: vErr.Fix.FixDescription(), Edits: make([]jsonEdit, 0, len(vErr.Fix.Edits))}
				for _, e := range vErr.Fix.Edits {
					jf.Edits = append(jf.Edits, jsonEdit{Start: e.Range.Start, End: e.Range.End, Text: e.Text})
				}
				result.Fix = jf
			}

			output.Results = append(output.Results, result)
			c.add(vErr.Severity)
		} else {
			// Non-validation error
			output.Results = append(output.Results, jsonResult{
				Rule:     "internal",
				Category: "internal",
				Severity: "error",
				Message:  err.Error(),
			})
			c.add(validation.SeverityError)
		}
	}

	output.Summary = jsonSummary{Total: len(results), Errors: c.errors, Warnings: c.warnings, Hints: c.hints}

	bytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}
