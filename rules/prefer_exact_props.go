package rules

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/components"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RulePreferExactProps = "prefer-exact-props"

var (
	exactPropsPropTypes = message{
		id:       "propTypes",
		template: "Component propTypes should be exact by using {{exactPropWrappers}}.",
	}
	exactPropsFlow = message{
		id:       "flow",
		template: "Component flow props should be set with exact objects.",
	}
)

// inexactPropTypes reports propTypes not wrapped in an exact wrapper.
type inexactPropTypes struct {
	Wrappers []string
}

func (m inexactPropTypes) ID() string { return exactPropsPropTypes.id }
func (m inexactPropTypes) String() string {
	quoted := make([]string, 0, len(m.Wrappers))
	for _, w := range m.Wrappers {
		quoted = append(quoted, fmt.Sprintf("'%s'", w))
	}
	wrappers := strings.Join(quoted, ", ")
	if len(m.Wrappers) > 1 {
		wrappers = "one of " + wrappers
	}
	return exactPropsPropTypes.render(map[string]string{"exactPropWrappers": wrappers})
}

type PreferExactPropsRule struct{}

func (r *PreferExactPropsRule) ID() string       { return RulePreferExactProps }
func (r *PreferExactPropsRule) Category() string { return CategoryPossibleErrors }
func (r *PreferExactPropsRule) Summary() string {
	return "Prefer exact proptype definitions"
}
func (r *PreferExactPropsRule) Description() string {
	return "Components should declare exactly the props they accept so that extra props are caught. PropTypes objects are reported when an exact wrapper is configured in the propWrapperFunctions setting, and object type annotations of props are reported unless they are exact."
}
func (r *PreferExactPropsRule) Link() string {
	return docsBaseURL + RulePreferExactProps
}
func (r *PreferExactPropsRule) DefaultSeverity() validation.Severity {
	return validation.SeverityWarning
}
func (r *PreferExactPropsRule) Messages() map[string]string {
	return messageTable(exactPropsPropTypes, exactPropsFlow)
}

func (r *PreferExactPropsRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	var wrappers []string
	for _, w := range ctx.Settings.PropWrapperFunctions {
		if w.Exact {
			wrappers = append(wrappers, w.String())
		}
	}
	propTypesMessage := inexactPropTypes{Wrappers: wrappers}

	return &linter.Visitor{
		ClassProperty: func(n *ast.ClassProperty) {
			isFlowProps := !n.Static && n.TypeAnnotation != nil && classify.GetPropertyName(n) == "props"
			if !classify.IsPropTypesDeclaration(n) && !isFlowProps {
				return
			}
			switch {
			case n.TypeAnnotation != nil && isNonExactObjectType(n.TypeAnnotation.TypeAnnotation):
				ctx.Report(n, exactPropsFlow, nil)
			case isNonEmptyObject(n.Value) && len(wrappers) > 0:
				ctx.Report(n, propTypesMessage, nil)
			}
		},

		Identifier: func(n *ast.Identifier) {
			if n.TypeAnnotation == nil {
				return
			}
			if d := ctx.Components.Enclosing(n); d == nil || d.Kind != components.FunctionComponent {
				return
			}
			switch t := n.TypeAnnotation.TypeAnnotation.(type) {
			case *ast.ObjectTypeAnnotation:
				if isNonExactObjectType(t) {
					ctx.Report(n, exactPropsFlow, nil)
				}
			case *ast.GenericTypeAnnotation:
				if t.ID == nil {
					return
				}
				v := ctx.Scope.FindVariableByName(n, t.ID.Name)
				if v == nil || len(v.Defs) == 0 {
					return
				}
				if alias, ok := v.Defs[0].(*ast.TypeAlias); ok && isNonExactObjectType(alias.Right) {
					ctx.Report(n, exactPropsFlow, nil)
				}
			}
		},

		MemberExpression: func(n *ast.MemberExpression) {
			if len(wrappers) == 0 || !classify.IsPropTypesDeclaration(n) {
				return
			}
			assign, ok := n.Parent().(*ast.AssignmentExpression)
			if !ok || assign.Left != n {
				return
			}
			switch right := assign.Right.(type) {
			case *ast.ObjectExpression:
				if isNonEmptyObject(right) {
					ctx.Report(n, propTypesMessage, nil)
				}
			case *ast.Identifier:
				v := ctx.Scope.FindVariableByName(n, right.Name)
				if v == nil || len(v.Defs) == 0 {
					return
				}
				if decl, ok := v.Defs[0].(*ast.VariableDeclarator); ok && isNonEmptyObject(decl.Init) {
					ctx.Report(n, propTypesMessage, nil)
				}
			}
		},
	}, nil
}

func isNonExactObjectType(n ast.Node) bool {
	obj, ok := n.(*ast.ObjectTypeAnnotation)
	return ok && len(obj.Properties) > 0 && !obj.Exact
}

func isNonEmptyObject(n ast.Node) bool {
	obj, ok := n.(*ast.ObjectExpression)
	return ok && len(obj.Properties) > 0
}
