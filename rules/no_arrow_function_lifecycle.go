package rules

import (
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/components"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleNoArrowFunctionLifecycle = "no-arrow-function-lifecycle"

var arrowLifecycleMethod = message{
	id:       "lifecycleMethod",
	template: "{{propertyName}} is a React lifecycle method, and should not be an arrow function or in a class field. Use an instance method instead.",
}

// lifecycleArrow reports a lifecycle method declared as an arrow function.
type lifecycleArrow struct {
	PropertyName string
}

func (m lifecycleArrow) ID() string { return arrowLifecycleMethod.id }
func (m lifecycleArrow) String() string {
	return arrowLifecycleMethod.render(map[string]string{"propertyName": m.PropertyName})
}

type NoArrowFunctionLifecycleRule struct{}

func (r *NoArrowFunctionLifecycleRule) ID() string       { return RuleNoArrowFunctionLifecycle }
func (r *NoArrowFunctionLifecycleRule) Category() string { return CategoryBestPractices }
func (r *NoArrowFunctionLifecycleRule) Summary() string {
	return "Lifecycle methods should be methods on the prototype, not class fields"
}
func (r *NoArrowFunctionLifecycleRule) Description() string {
	return "Lifecycle methods declared as arrow function class fields are created once per instance instead of living on the prototype, cannot be overridden or called through super, and make the component harder to test. Declare them as regular methods instead."
}
func (r *NoArrowFunctionLifecycleRule) Link() string {
	return docsBaseURL + RuleNoArrowFunctionLifecycle
}
func (r *NoArrowFunctionLifecycleRule) DefaultSeverity() validation.Severity {
	return validation.SeverityWarning
}
func (r *NoArrowFunctionLifecycleRule) Messages() map[string]string {
	return messageTable(arrowLifecycleMethod)
}

func (r *NoArrowFunctionLifecycleRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	return &linter.Visitor{
		ProgramExit: func() {
			for _, d := range ctx.Snapshot().List() {
				for _, p := range d.Properties() {
					if p.Kind != components.ArrowField || !classify.IsLifecycleMethodName(p.Name) {
						continue
					}
					ctx.Report(p.Node, lifecycleArrow{PropertyName: p.Name}, func(fx fix.Fixer) (*fix.Fix, error) {
						return arrowToMethodFix(fx, p)
					})
				}
			}
		},
	}, nil
}

// arrowToMethodFix rewrites `name = (args) => body` into `name(args) body`.
// Fields with a type annotation are left alone.
func arrowToMethodFix(fx fix.Fixer, p components.Property) (*fix.Fix, error) {
	arrow, ok := p.Value.(*ast.ArrowFunctionExpression)
	if !ok || arrow.Body == nil {
		return nil, nil
	}

	var key ast.Node
	switch n := p.Node.(type) {
	case *ast.ClassProperty:
		if n.TypeAnnotation != nil || n.Computed {
			return nil, nil
		}
		key = n.Key
	case *ast.Property:
		if n.Computed {
			return nil, nil
		}
		key = n.Key
	default:
		return nil, nil
	}

	// modifiers such as static or an accessibility keyword stay in place
	prefix := fx.Text(ast.Range{Start: p.Node.Range().Start, End: key.Range().Start})

	head := fx.Text(ast.Range{Start: arrow.Range().Start, End: arrow.Body.Range().Start})
	arrowAt := strings.LastIndex(head, "=>")
	if arrowAt < 0 {
		return nil, nil
	}
	signature := strings.TrimSpace(head[:arrowAt])
	if arrow.Async {
		signature = strings.TrimSpace(strings.TrimPrefix(signature, "async"))
	}
	if !strings.HasPrefix(signature, "(") && !strings.HasPrefix(signature, "<") {
		signature = "(" + signature + ")"
	}

	body := fx.NodeText(arrow.Body)
	if _, ok := arrow.Body.(*ast.BlockStatement); !ok {
		body = "{ return " + body + "; }"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	if arrow.Async {
		sb.WriteString("async ")
	}
	sb.WriteString(fx.NodeText(key))
	sb.WriteString(signature)
	sb.WriteString(" ")
	sb.WriteString(body)

	return fix.New("convert "+p.Name+" to a method", fx.ReplaceText(p.Node, sb.String()))
}
