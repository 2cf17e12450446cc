package rules

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/grammar"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleIframeMissingSandbox = "iframe-missing-sandbox"

var (
	iframeAttributeMissing = message{
		id:       "attributeMissing",
		template: "An iframe element is missing a sandbox attribute",
	}
	iframeInvalidValue = message{
		id:       "invalidValue",
		template: `An iframe element defines a sandbox attribute with invalid value "{{value}}"`,
	}
	iframeInvalidCombination = message{
		id:       "invalidCombination",
		template: "An iframe element defines a sandbox attribute with both allow-scripts and allow-same-origin which is invalid",
	}
)

// sandboxInvalidValue reports one token outside the sandbox allow-list.
type sandboxInvalidValue struct {
	Value string
}

func (m sandboxInvalidValue) ID() string { return iframeInvalidValue.id }
func (m sandboxInvalidValue) String() string {
	return iframeInvalidValue.render(map[string]string{"value": m.Value})
}

type IframeMissingSandboxRule struct{}

func (r *IframeMissingSandboxRule) ID() string       { return RuleIframeMissingSandbox }
func (r *IframeMissingSandboxRule) Category() string { return CategorySecurity }
func (r *IframeMissingSandboxRule) Summary() string {
	return "Enforce sandbox attribute on iframe elements"
}
func (r *IframeMissingSandboxRule) Description() string {
	return "The sandbox attribute enables an extra set of restrictions for the content in the iframe. An iframe without sandbox, or with a sandbox allowing both scripts and same-origin access, can remove its own sandboxing and run with the privileges of the embedding page."
}
func (r *IframeMissingSandboxRule) Link() string {
	return docsBaseURL + RuleIframeMissingSandbox
}
func (r *IframeMissingSandboxRule) DefaultSeverity() validation.Severity {
	return validation.SeverityWarning
}
func (r *IframeMissingSandboxRule) Messages() map[string]string {
	return messageTable(iframeAttributeMissing, iframeInvalidValue, iframeInvalidCombination)
}

func (r *IframeMissingSandboxRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	return &linter.Visitor{
		JSXOpeningElement: func(n *ast.JSXOpeningElement) {
			if _, ok := n.Name.(*ast.JSXIdentifier); !ok || classify.ElementType(n) != "iframe" {
				return
			}

			found := false
			for _, a := range n.Attributes {
				attr, ok := a.(*ast.JSXAttribute)
				if !ok {
					continue
				}
				if _, ok := attr.Name.(*ast.JSXIdentifier); !ok || classify.AttributeName(attr) != "sandbox" {
					continue
				}
				found = true

				lit, ok := attr.Value.(*ast.Literal)
				if !ok || !lit.IsString() || lit.Value == "" {
					continue
				}
				res := grammar.ValidateSandbox(lit.Value)
				for _, tok := range res.InvalidTokens {
					ctx.Report(n, sandboxInvalidValue{Value: tok}, nil)
				}
				if res.InvalidCombination {
					ctx.Report(n, iframeInvalidCombination, nil)
				}
			}

			if !found {
				ctx.Report(n, iframeAttributeMissing, nil)
			}
		},
	}, nil
}
