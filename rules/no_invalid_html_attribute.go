package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/grammar"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleNoInvalidHTMLAttribute = "no-invalid-html-attribute"

var (
	htmlAttrOnlyStrings = message{
		id:       "onlyStrings",
		template: `"{{attributeName}}" attribute only supports strings.`,
	}
	htmlAttrNoEmpty = message{
		id:       "noEmpty",
		template: `An empty "{{attributeName}}" attribute is meaningless.`,
	}
	htmlAttrNeverValid = message{
		id:       "neverValid",
		template: `"{{reportingValue}}" is never a valid "{{attributeName}}" attribute value.`,
	}
	htmlAttrNotValidFor = message{
		id:       "notValidFor",
		template: `"{{reportingValue}}" is not a valid "{{attributeName}}" attribute value for <{{elementName}}>.`,
	}
	htmlAttrSpaceDelimited = message{
		id:       "spaceDelimited",
		template: `"{{attributeName}}" attribute values should be space delimited.`,
	}
	htmlAttrOnlyMeaningfulFor = message{
		id:       "onlyMeaningfulFor",
		template: `The "{{attributeName}}" attribute only has meaning on the tags: {{tagNames}}`,
	}
)

// attributeMessage is a diagnostic about one attribute as a whole.
type attributeMessage struct {
	message
	Attribute string
	Tags      []string
}

func (m attributeMessage) String() string {
	tags := make([]string, 0, len(m.Tags))
	for _, t := range m.Tags {
		tags = append(tags, fmt.Sprintf(`"<%s>"`, t))
	}
	return m.render(map[string]string{
		"attributeName": m.Attribute,
		"tagNames":      strings.Join(tags, ", "),
	})
}

// attributeValueMessage is a diagnostic about one token of a value.
type attributeValueMessage struct {
	message
	Attribute string
	Value     string
	Element   string
}

func (m attributeValueMessage) String() string {
	return m.render(map[string]string{
		"attributeName":  m.Attribute,
		"reportingValue": m.Value,
		"elementName":    m.Element,
	})
}

// htmlAttributeTags maps each checked attribute to the tags it applies to.
var htmlAttributeTags = map[string][]string{
	"rel": grammar.RelTags,
}

type noInvalidHTMLAttributeOptions struct {
	Attributes []string `json:"attributes"`
}

type NoInvalidHTMLAttributeRule struct{}

func (r *NoInvalidHTMLAttributeRule) ID() string       { return RuleNoInvalidHTMLAttribute }
func (r *NoInvalidHTMLAttributeRule) Category() string { return CategoryPossibleErrors }
func (r *NoInvalidHTMLAttributeRule) Summary() string {
	return "Disallow usage of invalid attributes"
}
func (r *NoInvalidHTMLAttributeRule) Description() string {
	return "Some HTML elements have a specific set of valid values for some attributes. For instance the rel attribute only accepts known link types, and only on <link>, <a>, <area> and <form>. Unknown values, values used on the wrong element and values not delimited by single spaces are reported."
}
func (r *NoInvalidHTMLAttributeRule) Link() string {
	return docsBaseURL + RuleNoInvalidHTMLAttribute
}
func (r *NoInvalidHTMLAttributeRule) DefaultSeverity() validation.Severity {
	return validation.SeverityError
}
func (r *NoInvalidHTMLAttributeRule) Messages() map[string]string {
	return messageTable(htmlAttrOnlyStrings, htmlAttrNoEmpty, htmlAttrNeverValid, htmlAttrNotValidFor, htmlAttrSpaceDelimited, htmlAttrOnlyMeaningfulFor)
}

func (r *NoInvalidHTMLAttributeRule) ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"attributes": map[string]any{
				"type":        "array",
				"uniqueItems": true,
				"items":       map[string]any{"enum": []any{"rel"}},
			},
		},
		"additionalProperties": false,
	}
}

func (r *NoInvalidHTMLAttributeRule) ConfigDefaults() map[string]any {
	return map[string]any{"attributes": []any{"rel"}}
}

func (r *NoInvalidHTMLAttributeRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	var opts noInvalidHTMLAttributeOptions
	if err := ctx.DecodeOptions(&opts); err != nil {
		return nil, err
	}

	return &linter.Visitor{
		JSXAttribute: func(n *ast.JSXAttribute) {
			name, ok := n.Name.(*ast.JSXIdentifier)
			if !ok || !slices.Contains(opts.Attributes, name.Name) {
				return
			}
			r.checkAttribute(ctx, n, name.Name)
		},
	}, nil
}

func (r *NoInvalidHTMLAttributeRule) checkAttribute(ctx *linter.Context, n *ast.JSXAttribute, attribute string) {
	removeAttribute := func(fx fix.Fixer) (*fix.Fix, error) {
		return fix.New("remove the "+attribute+" attribute", fx.Remove(n))
	}

	tags := htmlAttributeTags[attribute]
	var tag string
	if opening, ok := n.Parent().(*ast.JSXOpeningElement); ok {
		if id, ok := opening.Name.(*ast.JSXIdentifier); ok {
			tag = id.Name
		}
	}
	if !slices.Contains(tags, tag) {
		ctx.Report(n, attributeMessage{message: htmlAttrOnlyMeaningfulFor, Attribute: attribute, Tags: tags}, removeAttribute)
		return
	}

	if n.Value == nil {
		ctx.Report(n, attributeMessage{message: htmlAttrNoEmpty, Attribute: attribute}, removeAttribute)
		return
	}

	switch v := n.Value.(type) {
	case *ast.Literal:
		r.checkLiteral(ctx, v, attribute, tag, removeAttribute)
	case *ast.JSXExpressionContainer:
		switch e := v.Expression.(type) {
		case *ast.Literal:
			r.checkLiteral(ctx, e, attribute, tag, removeAttribute)
		case *ast.ObjectExpression:
			ctx.Report(n, attributeMessage{message: htmlAttrOnlyStrings, Attribute: attribute}, removeAttribute)
		case *ast.Identifier:
			if e.Name == "undefined" {
				ctx.Report(n, attributeMessage{message: htmlAttrOnlyStrings, Attribute: attribute}, removeAttribute)
			}
		}
	}
}

func (r *NoInvalidHTMLAttributeRule) checkLiteral(ctx *linter.Context, lit *ast.Literal, attribute, tag string, removeAttribute fix.Func) {
	if !lit.IsString() {
		ctx.Report(lit, attributeMessage{message: htmlAttrOnlyStrings, Attribute: attribute}, removeAttribute)
		return
	}
	if grammar.IsBlank(lit.Value) {
		ctx.Report(lit, attributeMessage{message: htmlAttrNoEmpty, Attribute: attribute}, removeAttribute)
		return
	}

	// token ranges are offsets into the raw text between the quotes, which
	// only line up with the value when it has no escapes
	body := lit.Raw
	if len(body) >= 2 {
		body = body[1 : len(body)-1]
	}
	mapped := body == lit.Value
	for _, p := range grammar.ValidateRel(lit.Value, lit.Range().Start+1, tag) {
		var msg validation.Message
		switch p.Kind {
		case grammar.RelNeverValid:
			msg = attributeValueMessage{message: htmlAttrNeverValid, Attribute: attribute, Value: p.Token}
		case grammar.RelNotValidForTag:
			msg = attributeValueMessage{message: htmlAttrNotValidFor, Attribute: attribute, Value: p.Token, Element: tag}
		default:
			msg = attributeMessage{message: htmlAttrSpaceDelimited, Attribute: attribute}
		}
		if !mapped {
			ctx.Report(lit, msg, nil)
			continue
		}
		rng := p.Range
		ctx.Report(lit, msg, func(fx fix.Fixer) (*fix.Fix, error) {
			return fix.New(fmt.Sprintf("remove %q", fx.Text(rng)), fx.RemoveRange(rng))
		})
	}
}
