package rules

import (
	"regexp"
	"slices"
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleJSXNoTargetBlank = "jsx-no-target-blank"

var targetBlankNoReferrer = message{
	id:       "noTargetBlankWithoutNoreferrer",
	template: `Using target="_blank" without rel="noopener noreferrer" is a security risk: see https://mathiasbynens.github.io/rel-noopener`,
}

var externalLink = regexp.MustCompile(`^(?:\w+:|//)`)

// secureRelTokens must all be present in rel for target="_blank" to be safe.
var secureRelTokens = []string{"noopener", "noreferrer"}

type jsxNoTargetBlankOptions struct {
	EnforceDynamicLinks string `json:"enforceDynamicLinks"`
	Links               bool   `json:"links"`
	Forms               bool   `json:"forms"`
}

type JSXNoTargetBlankRule struct{}

func (r *JSXNoTargetBlankRule) ID() string       { return RuleJSXNoTargetBlank }
func (r *JSXNoTargetBlankRule) Category() string { return CategorySecurity }
func (r *JSXNoTargetBlankRule) Summary() string {
	return `Disallow target="_blank" attribute without rel="noopener noreferrer"`
}
func (r *JSXNoTargetBlankRule) Description() string {
	return `Opening an external or dynamic link with target="_blank" gives the new page access to window.opener, which it can use to navigate the original page. Adding rel="noopener noreferrer" to the link removes that access. Custom link and form components are configured with the linkComponents and formComponents settings.`
}
func (r *JSXNoTargetBlankRule) Link() string {
	return docsBaseURL + RuleJSXNoTargetBlank
}
func (r *JSXNoTargetBlankRule) DefaultSeverity() validation.Severity {
	return validation.SeverityError
}
func (r *JSXNoTargetBlankRule) Messages() map[string]string {
	return messageTable(targetBlankNoReferrer)
}

func (r *JSXNoTargetBlankRule) ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"enforceDynamicLinks": map[string]any{"enum": []any{"always", "never"}},
			"links":               map[string]any{"type": "boolean"},
			"forms":               map[string]any{"type": "boolean"},
		},
		"additionalProperties": false,
	}
}

func (r *JSXNoTargetBlankRule) ConfigDefaults() map[string]any {
	return map[string]any{
		"enforceDynamicLinks": "always",
		"links":               true,
		"forms":               false,
	}
}

func (r *JSXNoTargetBlankRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	var opts jsxNoTargetBlankOptions
	if err := ctx.DecodeOptions(&opts); err != nil {
		return nil, err
	}

	links := map[string][]string{"a": {"href"}}
	for _, c := range ctx.Settings.LinkComponents {
		links[c.Name] = c.AttributeNames("href")
	}
	forms := map[string][]string{"form": {"action"}}
	for _, c := range ctx.Settings.FormComponents {
		forms[c.Name] = c.AttributeNames("action")
	}

	return &linter.Visitor{
		JSXAttribute: func(n *ast.JSXAttribute) {
			parent, ok := n.Parent().(*ast.JSXOpeningElement)
			if !ok {
				return
			}
			tag := classify.ElementType(parent)

			var urlAttributes []string
			if attrs, ok := links[tag]; ok {
				if !opts.Links {
					return
				}
				urlAttributes = attrs
			} else if attrs, ok := forms[tag]; ok {
				if !opts.Forms {
					return
				}
				urlAttributes = attrs
			} else {
				return
			}

			if !isTargetBlank(n) || hasSecureRel(parent) {
				return
			}
			if !hasExternalLink(parent, urlAttributes) && (opts.EnforceDynamicLinks != "always" || !hasDynamicLink(parent, urlAttributes)) {
				return
			}
			ctx.Report(n, targetBlankNoReferrer, func(fx fix.Fixer) (*fix.Fix, error) {
				return secureRelFix(fx, n, parent)
			})
		},
	}, nil
}

func isTargetBlank(attr *ast.JSXAttribute) bool {
	if classify.AttributeName(attr) != "target" {
		return false
	}
	lit, ok := attr.Value.(*ast.Literal)
	return ok && lit.IsString() && strings.EqualFold(lit.Value, "_blank")
}

func hasExternalLink(opening *ast.JSXOpeningElement, names []string) bool {
	for _, a := range opening.Attributes {
		attr, ok := a.(*ast.JSXAttribute)
		if !ok || !slices.Contains(names, classify.AttributeName(attr)) {
			continue
		}
		if lit, ok := attr.Value.(*ast.Literal); ok && lit.IsString() && externalLink.MatchString(lit.Value) {
			return true
		}
	}
	return false
}

func hasDynamicLink(opening *ast.JSXOpeningElement, names []string) bool {
	for _, a := range opening.Attributes {
		attr, ok := a.(*ast.JSXAttribute)
		if !ok || !slices.Contains(names, classify.AttributeName(attr)) {
			continue
		}
		if _, ok := attr.Value.(*ast.JSXExpressionContainer); ok {
			return true
		}
	}
	return false
}

func hasSecureRel(opening *ast.JSXOpeningElement) bool {
	for _, a := range opening.Attributes {
		attr, ok := a.(*ast.JSXAttribute)
		if !ok || classify.AttributeName(attr) != "rel" {
			continue
		}
		lit, ok := attr.Value.(*ast.Literal)
		if !ok || !lit.IsString() {
			continue
		}
		tokens := strings.Split(strings.ToLower(lit.Value), " ")
		if slices.Contains(tokens, "noopener") && slices.Contains(tokens, "noreferrer") {
			return true
		}
	}
	return false
}

// secureRelFix adds the missing rel tokens: a new attribute after target,
// the tokens appended to a string rel, or any other rel replaced.
func secureRelFix(fx fix.Fixer, target *ast.JSXAttribute, opening *ast.JSXOpeningElement) (*fix.Fix, error) {
	const desc = `add rel="noopener noreferrer"`
	secure := strings.Join(secureRelTokens, " ")

	rel := classify.FindAttribute(opening, "rel")
	if rel == nil {
		return fix.New(desc, fx.InsertTextAfter(target, ` rel="`+secure+`"`))
	}

	lit, ok := rel.Value.(*ast.Literal)
	if !ok || !lit.IsString() {
		return fix.New(desc, fx.ReplaceText(rel, `rel="`+secure+`"`))
	}
	tokens := strings.Fields(lit.Value)
	for _, want := range secureRelTokens {
		if !slices.ContainsFunc(tokens, func(tok string) bool { return strings.EqualFold(tok, want) }) {
			tokens = append(tokens, want)
		}
	}
	quote := `"`
	if strings.HasPrefix(lit.Raw, "'") {
		quote = "'"
	}
	return fix.New(desc, fx.ReplaceText(lit, quote+strings.Join(tokens, " ")+quote))
}
