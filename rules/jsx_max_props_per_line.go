package rules

import (
	"encoding/json"
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleJSXMaxPropsPerLine = "jsx-max-props-per-line"

var propOnNewLineMessage = message{
	id:       "newLine",
	template: "Prop `{{prop}}` must be placed on a new line",
}

// propOnNewLine reports a prop exceeding the per-line maximum.
type propOnNewLine struct {
	Prop string
}

func (m propOnNewLine) ID() string { return propOnNewLineMessage.id }
func (m propOnNewLine) String() string {
	return propOnNewLineMessage.render(map[string]string{"prop": m.Prop})
}

// propsMaximum accepts either a single integer or `{single, multi}`.
type propsMaximum struct {
	Single int `json:"single"`
	Multi  int `json:"multi"`
}

func (m *propsMaximum) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		m.Single, m.Multi = n, n
		return nil
	}
	type plain propsMaximum
	return json.Unmarshal(data, (*plain)(m))
}

type maxPropsOptions struct {
	Maximum propsMaximum `json:"maximum"`
	When    string       `json:"when"`
}

type JSXMaxPropsPerLineRule struct{}

func (r *JSXMaxPropsPerLineRule) ID() string       { return RuleJSXMaxPropsPerLine }
func (r *JSXMaxPropsPerLineRule) Category() string { return CategoryStyle }
func (r *JSXMaxPropsPerLineRule) Summary() string {
	return "Enforce maximum of props on a single line in JSX"
}
func (r *JSXMaxPropsPerLineRule) Description() string {
	return `Limits how many props share a line. maximum is either a number or {single, multi}, the limits for tags written on one line and across several lines. With when set to "multiline" single line tags are not checked. The first prop of a multi-line tag must not share the line of the tag name.`
}
func (r *JSXMaxPropsPerLineRule) Link() string {
	return docsBaseURL + RuleJSXMaxPropsPerLine
}
func (r *JSXMaxPropsPerLineRule) DefaultSeverity() validation.Severity {
	return validation.SeverityHint
}
func (r *JSXMaxPropsPerLineRule) Messages() map[string]string {
	return messageTable(propOnNewLineMessage)
}

func (r *JSXMaxPropsPerLineRule) ConfigSchema() map[string]any {
	positive := map[string]any{"type": "integer", "minimum": 1}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"maximum": map[string]any{
				"oneOf": []any{
					positive,
					map[string]any{
						"type": "object",
						"properties": map[string]any{
							"single": positive,
							"multi":  positive,
						},
						"additionalProperties": false,
					},
				},
			},
			"when": map[string]any{"type": "string", "enum": []any{"always", "multiline"}},
		},
		"additionalProperties": false,
	}
}

func (r *JSXMaxPropsPerLineRule) ConfigDefaults() map[string]any {
	return map[string]any{
		"maximum": map[string]any{"single": 1, "multi": 1},
		"when":    "always",
	}
}

func (r *JSXMaxPropsPerLineRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	var opts maxPropsOptions
	if err := ctx.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	single, multi := max(opts.Maximum.Single, 1), max(opts.Maximum.Multi, 1)
	line := func(offset int) int {
		l, _ := ctx.File.Position(offset)
		return l
	}

	return &linter.Visitor{
		JSXOpeningElement: func(n *ast.JSXOpeningElement) {
			if len(n.Attributes) == 0 {
				return
			}
			tagStart, tagEnd := line(n.Range().Start), line(n.Range().End)
			if opts.When == "multiline" && tagStart == tagEnd {
				return
			}

			lines := [][]ast.Node{{n.Attributes[0]}}
			for i := 1; i < len(n.Attributes); i++ {
				prev, cur := n.Attributes[i-1], n.Attributes[i]
				if line(prev.Range().End) == line(cur.Range().Start) {
					lines[len(lines)-1] = append(lines[len(lines)-1], cur)
				} else {
					lines = append(lines, []ast.Node{cur})
				}
			}

			singleLine := len(lines) <= 1
			limit := multi
			if singleLine {
				limit = single
			}

			for i, props := range lines {
				if !singleLine && i == 0 && line(props[0].Range().Start) == tagStart {
					ctx.Report(props[0], propOnNewLine{Prop: propName(ctx, props[0])}, func(fx fix.Fixer) (*fix.Fix, error) {
						return tagNewLineFix(fx, n)
					})
				}
				if len(props) > limit {
					ctx.Report(props[limit], propOnNewLine{Prop: propName(ctx, props[limit])}, func(fx fix.Fixer) (*fix.Fix, error) {
						return splitPropsFix(fx, props, limit)
					})
				}
			}
		},
	}, nil
}

func propName(ctx *linter.Context, n ast.Node) string {
	if spread, ok := n.(*ast.JSXSpreadAttribute); ok {
		return fix.NewFixer(ctx.File.Source).NodeText(spread.Argument)
	}
	return classify.AttributeName(n)
}

// splitPropsFix regroups the props of one line into lines of at most limit
// props each.
func splitPropsFix(fx fix.Fixer, props []ast.Node, limit int) (*fix.Fix, error) {
	var groups []string
	for i := 0; i < len(props); i += limit {
		end := min(i+limit, len(props))
		texts := make([]string, 0, end-i)
		for _, p := range props[i:end] {
			texts = append(texts, fx.NodeText(p))
		}
		groups = append(groups, strings.Join(texts, " "))
	}
	r := ast.Range{Start: props[0].Range().Start, End: props[len(props)-1].Range().End}
	return fix.New("break props onto separate lines", fx.ReplaceRange(r, strings.Join(groups, "\n")))
}

// tagNewLineFix moves the first prop of a multi-line tag off the tag line.
func tagNewLineFix(fx fix.Fixer, n *ast.JSXOpeningElement) (*fix.Fix, error) {
	first := n.Attributes[0]
	r := ast.Range{Start: n.Range().Start, End: first.Range().End}
	code := "<" + fx.NodeText(n.Name) + "\n" + fx.NodeText(first)
	return fix.New("move the first prop to a new line", fx.ReplaceRange(r, code))
}
