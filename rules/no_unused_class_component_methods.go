package rules

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/components"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/scope"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleNoUnusedClassComponentMethods = "no-unused-class-component-methods"

var unusedMethodMessage = message{
	id:       "unusedMethod",
	template: `Unused method "{{method}}" of class "{{class}}"`,
}

// unusedMethod reports a component method nothing calls.
type unusedMethod struct {
	Method string
	Class  string
}

func (m unusedMethod) ID() string { return unusedMethodMessage.id }
func (m unusedMethod) String() string {
	return unusedMethodMessage.render(map[string]string{"method": m.Method, "class": m.Class})
}

type NoUnusedClassComponentMethodsRule struct{}

func (r *NoUnusedClassComponentMethodsRule) ID() string {
	return RuleNoUnusedClassComponentMethods
}
func (r *NoUnusedClassComponentMethodsRule) Category() string { return CategoryBestPractices }
func (r *NoUnusedClassComponentMethodsRule) Summary() string {
	return "Disallow declaring unused methods of component class"
}
func (r *NoUnusedClassComponentMethodsRule) Description() string {
	return "Methods of a class component that are never accessed through this are dead code. Methods React calls itself, such as render and the lifecycle methods, are never reported."
}
func (r *NoUnusedClassComponentMethodsRule) Link() string {
	return docsBaseURL + RuleNoUnusedClassComponentMethods
}
func (r *NoUnusedClassComponentMethodsRule) DefaultSeverity() validation.Severity {
	return validation.SeverityWarning
}
func (r *NoUnusedClassComponentMethodsRule) Messages() map[string]string {
	return messageTable(unusedMethodMessage)
}

func (r *NoUnusedClassComponentMethodsRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	return &linter.Visitor{
		ProgramExit: func() {
			for _, d := range ctx.Snapshot().List() {
				if d.Kind != components.ClassComponent && d.Kind != components.FactoryComponent {
					continue
				}
				used := usedThisMembers(d)
				for _, p := range d.Properties() {
					if !isCandidateMethod(p) || used[p.Name] {
						continue
					}
					ctx.Report(p.Node, unusedMethod{Method: p.Name, Class: d.Name}, nil)
				}
			}
		},
	}, nil
}

// isCandidateMethod reports whether p is a named, non-static function member
// React does not call on its own.
func isCandidateMethod(p components.Property) bool {
	if !p.IsFunction() || p.Name == "" {
		return false
	}
	switch n := p.Node.(type) {
	case *ast.MethodDefinition:
		if n.Static || n.MethodKind == "get" || n.MethodKind == "set" {
			return false
		}
	case *ast.ClassProperty:
		if n.Static {
			return false
		}
	}
	return !classify.IsInternalMethodName(p.Name) && !classify.IsLifecycleMethodName(p.Name)
}

// usedThisMembers returns the names accessed as `this.<name>` inside the
// component.
func usedThisMembers(d *components.Descriptor) map[string]bool {
	used := make(map[string]bool)
	if d.Kind == components.ClassComponent {
		for name := range scope.ThisAccesses(d.Node) {
			used[name] = true
		}
		return used
	}
	ast.Inspect(d.Body, func(n ast.Node) bool {
		if m, ok := n.(*ast.MemberExpression); ok && classify.IsThisMember(m, "") {
			used[classify.MemberName(m)] = true
		}
		return true
	})
	return used
}
