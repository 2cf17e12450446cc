// Package components recognizes React component declarations and collects
// their members while a file is traversed.
package components

import (
	"fmt"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
)

// Kind is the outcome of component detection.
type Kind int

const (
	NotAComponent Kind = iota
	ClassComponent
	FactoryComponent
	FunctionComponent
)

func (k Kind) String() string {
	switch k {
	case NotAComponent:
		return "not-a-component"
	case ClassComponent:
		return "class"
	case FactoryComponent:
		return "factory"
	case FunctionComponent:
		return "function"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	DefaultPragma      = "React"
	DefaultCreateClass = "createReactClass"
)

// wrappers are the higher-order calls whose function argument is still
// detected as a component through the call's own binding.
var wrappers = []string{"memo", "forwardRef"}

// Detector classifies declarations. Results are memoized per node, so a
// Detector must not outlive the file it was created for.
type Detector struct {
	pragma      string
	createClass string
	memo        map[ast.Node]Kind
}

// NewDetector returns a detector for the given pragma (`React`) and
// createClass factory name (`createReactClass`). Empty values use the
// defaults.
func NewDetector(pragma, createClass string) *Detector {
	if pragma == "" {
		pragma = DefaultPragma
	}
	if createClass == "" {
		createClass = DefaultCreateClass
	}
	return &Detector{pragma: pragma, createClass: createClass, memo: make(map[ast.Node]Kind)}
}

// Pragma returns the configured pragma.
func (d *Detector) Pragma() string {
	return d.pragma
}

// Classify decides whether n declares a component. Class declarations are
// checked first, then factory calls, then functions; the first match wins.
func (d *Detector) Classify(n ast.Node) Kind {
	if ast.IsNil(n) {
		return NotAComponent
	}
	if k, ok := d.memo[n]; ok {
		return k
	}
	k := d.classify(n)
	d.memo[n] = k
	return k
}

func (d *Detector) classify(n ast.Node) Kind {
	switch n := n.(type) {
	case *ast.ClassDeclaration, *ast.ClassExpression:
		if d.IsES6Component(n) {
			return ClassComponent
		}
	case *ast.CallExpression:
		if d.IsES5Component(n) {
			return FactoryComponent
		}
	case *ast.FunctionDeclaration, *ast.FunctionExpression, *ast.ArrowFunctionExpression:
		if d.isFunctionComponent(n) {
			return FunctionComponent
		}
	}
	return NotAComponent
}

// IsES6Component reports whether n is a class extending Component or
// PureComponent, bare or through the pragma.
func (d *Detector) IsES6Component(n ast.Node) bool {
	c := classify.ClassOf(n)
	if c == nil {
		return false
	}
	switch super := c.SuperClass.(type) {
	case *ast.Identifier:
		return super.Name == "Component" || super.Name == "PureComponent"
	case *ast.MemberExpression:
		return classify.IsMemberOf(super, d.pragma, "Component") || classify.IsMemberOf(super, d.pragma, "PureComponent")
	}
	return false
}

// IsES5Component reports whether n is a createClass-style factory call with
// an object literal spec.
func (d *Detector) IsES5Component(n ast.Node) bool {
	call, ok := n.(*ast.CallExpression)
	if !ok || len(call.Arguments) == 0 {
		return false
	}
	if _, ok := call.Arguments[0].(*ast.ObjectExpression); !ok {
		return false
	}
	switch callee := call.Callee.(type) {
	case *ast.Identifier:
		return callee.Name == d.createClass
	case *ast.MemberExpression:
		return classify.IsMemberOf(callee, d.pragma, "createClass") || classify.IsMemberOf(callee, d.pragma, d.createClass)
	}
	return false
}

func (d *Detector) isFunctionComponent(fn ast.Node) bool {
	if !classify.ReturnsJSX(fn, d.pragma) {
		return false
	}
	if decl, ok := fn.(*ast.FunctionDeclaration); ok {
		if decl.ID != nil {
			return classify.IsComponentName(decl.ID.Name)
		}
		_, exported := decl.Parent().(*ast.ExportDefaultDeclaration)
		return exported
	}
	if expr, ok := fn.(*ast.FunctionExpression); ok && expr.ID != nil && classify.IsComponentName(expr.ID.Name) {
		return true
	}

	site := fn
	if call, ok := site.Parent().(*ast.CallExpression); ok && d.isWrapperCall(call) {
		site = call
	}
	switch p := site.Parent().(type) {
	case *ast.VariableDeclarator:
		return classify.IsComponentDeclarationName(p)
	case *ast.AssignmentExpression:
		return site == p.Right && isComponentTarget(p.Left)
	case *ast.ReturnStatement, *ast.ExportDefaultDeclaration:
		return classify.FunctionOf(fn).ID == nil
	case *ast.Property:
		return site == p.Value && classify.IsComponentName(classify.GetPropertyName(p))
	}
	return false
}

func (d *Detector) isWrapperCall(call *ast.CallExpression) bool {
	for _, w := range wrappers {
		switch callee := call.Callee.(type) {
		case *ast.Identifier:
			if callee.Name == w {
				return true
			}
		case *ast.MemberExpression:
			if classify.IsMemberOf(callee, d.pragma, w) {
				return true
			}
		}
	}
	return false
}

func isComponentTarget(n ast.Node) bool {
	switch t := n.(type) {
	case *ast.Identifier:
		return classify.IsComponentName(t.Name)
	case *ast.MemberExpression:
		return classify.IsComponentName(classify.MemberName(t))
	}
	return false
}

// declaredName returns the binding name of a component declaration.
func declaredName(n ast.Node) string {
	if c := classify.ClassOf(n); c != nil && c.ID != nil {
		return c.ID.Name
	}
	if f := classify.FunctionOf(n); f != nil && f.ID != nil {
		return f.ID.Name
	}
	site := n
	if call, ok := n.Parent().(*ast.CallExpression); ok && classify.FunctionOf(n) != nil {
		site = call
	}
	switch p := site.Parent().(type) {
	case *ast.VariableDeclarator:
		if id, ok := p.ID.(*ast.Identifier); ok {
			return id.Name
		}
	case *ast.AssignmentExpression:
		switch t := p.Left.(type) {
		case *ast.Identifier:
			return t.Name
		case *ast.MemberExpression:
			return classify.MemberName(t)
		}
	case *ast.Property:
		return classify.GetPropertyName(p)
	}
	return ""
}
