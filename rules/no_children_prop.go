package rules

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleNoChildrenProp = "no-children-prop"

var (
	childrenNestChildren = message{
		id:       "nestChildren",
		template: "Do not pass children as props. Instead, nest children between the opening and closing tags.",
	}
	childrenPassChildrenAsArgs = message{
		id:       "passChildrenAsArgs",
		template: "Do not pass children as props. Instead, pass them as additional arguments to React.createElement.",
	}
	childrenNestFunction = message{
		id:       "nestFunction",
		template: "Do not nest a function between the opening and closing tags. Instead, pass it as a prop.",
	}
	childrenPassFunctionAsArgs = message{
		id:       "passFunctionAsArgs",
		template: "Do not pass a function as an additional argument to React.createElement. Instead, pass it as a prop.",
	}
)

type noChildrenPropOptions struct {
	AllowFunctions bool `json:"allowFunctions"`
}

type NoChildrenPropRule struct{}

func (r *NoChildrenPropRule) ID() string       { return RuleNoChildrenProp }
func (r *NoChildrenPropRule) Category() string { return CategoryBestPractices }
func (r *NoChildrenPropRule) Summary() string {
	return "Disallow passing of children as props"
}
func (r *NoChildrenPropRule) Description() string {
	return "Children should be nested between the opening and closing tags in JSX, or passed as additional arguments to createElement, rather than through the children prop. With allowFunctions, render functions may be passed as the children prop and are then reported when nested instead."
}
func (r *NoChildrenPropRule) Link() string {
	return docsBaseURL + RuleNoChildrenProp
}
func (r *NoChildrenPropRule) DefaultSeverity() validation.Severity {
	return validation.SeverityWarning
}
func (r *NoChildrenPropRule) Messages() map[string]string {
	return messageTable(childrenNestChildren, childrenPassChildrenAsArgs, childrenNestFunction, childrenPassFunctionAsArgs)
}

func (r *NoChildrenPropRule) ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"allowFunctions": map[string]any{"type": "boolean"},
		},
		"additionalProperties": false,
	}
}

func (r *NoChildrenPropRule) ConfigDefaults() map[string]any {
	return map[string]any{"allowFunctions": false}
}

func (r *NoChildrenPropRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	var opts noChildrenPropOptions
	if err := ctx.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	pragma := ctx.Components.Detector().Pragma()
	allowedFunction := func(n ast.Node) bool {
		return opts.AllowFunctions && isFunctionExpression(n)
	}

	return &linter.Visitor{
		JSXAttribute: func(n *ast.JSXAttribute) {
			if classify.AttributeName(n) != "children" {
				return
			}
			if c, ok := n.Value.(*ast.JSXExpressionContainer); ok && allowedFunction(c.Expression) {
				return
			}
			ctx.Report(n, childrenNestChildren, nil)
		},

		CallExpression: func(n *ast.CallExpression) {
			if !isCreateElementLike(n, pragma) || len(n.Arguments) < 2 {
				return
			}
			props, ok := n.Arguments[1].(*ast.ObjectExpression)
			if !ok {
				return
			}
			if children := findChildrenProperty(props); children != nil {
				if children.Value != nil && !allowedFunction(children.Value) {
					ctx.Report(n, childrenPassChildrenAsArgs, nil)
				}
				return
			}
			if len(n.Arguments) == 3 && allowedFunction(n.Arguments[2]) {
				ctx.Report(n, childrenPassFunctionAsArgs, nil)
			}
		},

		JSXElement: func(n *ast.JSXElement) {
			if len(n.Children) != 1 {
				return
			}
			if c, ok := n.Children[0].(*ast.JSXExpressionContainer); ok && allowedFunction(c.Expression) {
				ctx.Report(n, childrenNestFunction, nil)
			}
		},
	}, nil
}

// isCreateElementLike matches `<anything>.createElement(...)` as well as the
// pragma and bare forms.
func isCreateElementLike(call *ast.CallExpression, pragma string) bool {
	if classify.IsCreateElementCall(call, pragma) {
		return true
	}
	m, ok := call.Callee.(*ast.MemberExpression)
	return ok && classify.MemberName(m) == "createElement"
}

func findChildrenProperty(obj *ast.ObjectExpression) *ast.Property {
	for _, p := range obj.Properties {
		prop, ok := p.(*ast.Property)
		if ok && classify.KeyName(prop.Key, prop.Computed) == "children" {
			return prop
		}
	}
	return nil
}

func isFunctionExpression(n ast.Node) bool {
	switch n.(type) {
	case *ast.ArrowFunctionExpression, *ast.FunctionExpression:
		return true
	}
	return false
}
