package rules

import (
	"unicode"
	"unicode/utf8"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleNoObjectTypeAsDefaultProp = "no-object-type-as-default-prop"

var forbiddenTypeDefaultParamMessage = message{
	id: "forbiddenTypeDefaultParam",
	template: "{{propName}} has a/an {{forbiddenType}} as default prop.\n" +
		"This could lead to potential infinite render loop in React. \n" +
		"Use a variable reference instead of {{forbiddenType}}.",
}

// forbiddenTypeDefaultParam reports a default prop value that is a new
// reference on every render.
type forbiddenTypeDefaultParam struct {
	PropName      string
	ForbiddenType string
}

func (m forbiddenTypeDefaultParam) ID() string { return forbiddenTypeDefaultParamMessage.id }
func (m forbiddenTypeDefaultParam) String() string {
	return forbiddenTypeDefaultParamMessage.render(map[string]string{
		"propName":      m.PropName,
		"forbiddenType": m.ForbiddenType,
	})
}

type NoObjectTypeAsDefaultPropRule struct{}

func (r *NoObjectTypeAsDefaultPropRule) ID() string       { return RuleNoObjectTypeAsDefaultProp }
func (r *NoObjectTypeAsDefaultPropRule) Category() string { return CategoryBestPractices }
func (r *NoObjectTypeAsDefaultPropRule) Summary() string {
	return "Disallow usage of referential-type variables as default param in functional component"
}
func (r *NoObjectTypeAsDefaultPropRule) Description() string {
	return "Default values of destructured props are evaluated on every render. Objects, arrays, functions and other referential values therefore get a new identity each time, which defeats memoization and can cause infinite render loops when used in hook dependencies. Hoist the value to a module level constant instead."
}
func (r *NoObjectTypeAsDefaultPropRule) Link() string {
	return docsBaseURL + RuleNoObjectTypeAsDefaultProp
}
func (r *NoObjectTypeAsDefaultPropRule) DefaultSeverity() validation.Severity {
	return validation.SeverityWarning
}
func (r *NoObjectTypeAsDefaultPropRule) Messages() map[string]string {
	return messageTable(forbiddenTypeDefaultParamMessage)
}

func (r *NoObjectTypeAsDefaultPropRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	return &linter.Visitor{
		FunctionDeclaration: func(n *ast.FunctionDeclaration) {
			if n.ID == nil || !startsUppercase(n.ID.Name) {
				return
			}
			r.checkParams(ctx, n.Params)
		},
		VariableDeclarator: func(n *ast.VariableDeclarator) {
			id, ok := n.ID.(*ast.Identifier)
			if !ok || !startsUppercase(id.Name) {
				return
			}
			switch fn := n.Init.(type) {
			case *ast.ArrowFunctionExpression:
				r.checkParams(ctx, fn.Params)
			case *ast.FunctionExpression:
				r.checkParams(ctx, fn.Params)
			}
		},
	}, nil
}

// checkParams inspects the defaults of a single destructured props
// parameter.
func (r *NoObjectTypeAsDefaultPropRule) checkParams(ctx *linter.Context, params []ast.Node) {
	if len(params) != 1 {
		return
	}
	pattern, ok := params[0].(*ast.ObjectPattern)
	if !ok {
		return
	}
	for _, p := range pattern.Properties {
		prop, ok := p.(*ast.Property)
		if !ok {
			continue
		}
		def, ok := prop.Value.(*ast.AssignmentPattern)
		if !ok {
			continue
		}
		if forbidden := forbiddenDefaultType(def.Right); forbidden != "" {
			ctx.Report(def, forbiddenTypeDefaultParam{
				PropName:      classify.KeyName(prop.Key, prop.Computed),
				ForbiddenType: forbidden,
			}, nil)
		}
	}
}

// forbiddenDefaultType names the kind of a value that gets a new identity
// each time it is evaluated, or returns "".
func forbiddenDefaultType(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Literal:
		if v.LitKind == ast.LiteralRegExp {
			return "regex literal"
		}
	case *ast.CallExpression:
		if callee, ok := v.Callee.(*ast.Identifier); ok && callee.Name == "Symbol" {
			return "Symbol literal"
		}
	case *ast.ArrowFunctionExpression:
		return "arrow function"
	case *ast.FunctionExpression:
		return "function expression"
	case *ast.ObjectExpression:
		return "object literal"
	case *ast.ArrayExpression:
		return "array literal"
	case *ast.ClassExpression:
		return "class expression"
	case *ast.NewExpression:
		return "construction expression"
	case *ast.JSXElement:
		return "JSX element"
	}
	return ""
}

// startsUppercase reports whether the first character of name is unchanged
// by upper-casing, so `_Foo` and `$foo` count as well.
func startsUppercase(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.ToUpper(r) == r
}
