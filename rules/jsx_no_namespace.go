package rules

import (
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleJSXNoNamespace = "jsx-no-namespace"

var jsxNamespaceMessage = message{
	id:       "noNamespace",
	template: "JSX component {{name}} must not be in a namespace as React does not support them",
}

// namespacedElement reports an element name written as `ns:name`.
type namespacedElement struct {
	Name string
}

func (m namespacedElement) ID() string { return jsxNamespaceMessage.id }
func (m namespacedElement) String() string {
	return jsxNamespaceMessage.render(map[string]string{"name": m.Name})
}

type JSXNoNamespaceRule struct{}

func (r *JSXNoNamespaceRule) ID() string       { return RuleJSXNoNamespace }
func (r *JSXNoNamespaceRule) Category() string { return CategoryPossibleErrors }
func (r *JSXNoNamespaceRule) Summary() string {
	return "Enforce that namespaces are not used in JSX"
}
func (r *JSXNoNamespaceRule) Description() string {
	return "React does not support namespaced element names such as `<ns:tag>`. They compile but fail at runtime."
}
func (r *JSXNoNamespaceRule) Link() string {
	return docsBaseURL + RuleJSXNoNamespace
}
func (r *JSXNoNamespaceRule) DefaultSeverity() validation.Severity {
	return validation.SeverityError
}
func (r *JSXNoNamespaceRule) Messages() map[string]string {
	return messageTable(jsxNamespaceMessage)
}

func (r *JSXNoNamespaceRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	return &linter.Visitor{
		JSXOpeningElement: func(n *ast.JSXOpeningElement) {
			if name := classify.ElementType(n); strings.Contains(name, ":") {
				ctx.Report(n, namespacedElement{Name: name}, nil)
			}
		},
	}, nil
}
