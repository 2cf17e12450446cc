// Package classify holds pure predicates over node shape used by the rules.
// Every function is total: unexpected input yields false, "" or nil.
package classify

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/speakeasy-api/jsxlint/ast"
)

// LifecycleMethods lists the React component lifecycle method names in
// invocation order.
var LifecycleMethods = []string{
	"getDefaultProps",
	"getInitialState",
	"getChildContext",
	"getDerivedStateFromProps",
	"componentWillMount",
	"UNSAFE_componentWillMount",
	"componentDidMount",
	"componentWillReceiveProps",
	"UNSAFE_componentWillReceiveProps",
	"shouldComponentUpdate",
	"componentWillUpdate",
	"UNSAFE_componentWillUpdate",
	"getSnapshotBeforeUpdate",
	"componentDidUpdate",
	"componentDidCatch",
	"componentWillUnmount",
	"render",
}

// InternalMethods are class members React calls itself; they are never
// reported as unused.
var InternalMethods = []string{
	"constructor",
	"componentDidCatch",
	"componentDidMount",
	"componentDidUpdate",
	"componentWillMount",
	"componentWillReceiveProps",
	"componentWillUnmount",
	"componentWillUpdate",
	"getSnapshotBeforeUpdate",
	"render",
	"shouldComponentUpdate",
	"UNSAFE_componentWillMount",
	"UNSAFE_componentWillReceiveProps",
	"UNSAFE_componentWillUpdate",
}

// IsLifecycleMethodName reports whether name is a lifecycle method.
func IsLifecycleMethodName(name string) bool {
	return slices.Contains(LifecycleMethods, name)
}

// IsInternalMethodName reports whether name is called by React itself.
func IsInternalMethodName(name string) bool {
	return slices.Contains(InternalMethods, name)
}

// IsComponentName reports whether name starts with an uppercase letter.
func IsComponentName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// IsComponentDeclarationName reports whether a function declaration, or the
// variable a function is assigned to, has a component-style name.
func IsComponentDeclarationName(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.FunctionDeclaration:
		return n.ID != nil && IsComponentName(n.ID.Name)
	case *ast.VariableDeclarator:
		id, ok := n.ID.(*ast.Identifier)
		return ok && IsComponentName(id.Name)
	case *ast.Identifier:
		return IsComponentName(n.Name)
	}
	return false
}

// KeyName returns the static name of a property key: an identifier name, a
// string literal value, or "" for computed keys.
func KeyName(key ast.Node, computed bool) string {
	switch k := key.(type) {
	case *ast.Identifier:
		if computed {
			return ""
		}
		return k.Name
	case *ast.Literal:
		switch k.LitKind {
		case ast.LiteralString:
			return k.Value
		case ast.LiteralNumber:
			return k.Raw
		}
	}
	return ""
}

// GetPropertyName returns the static name of a class member, object property
// or JSX attribute.
func GetPropertyName(n ast.Node) string {
	switch n := n.(type) {
	case *ast.MethodDefinition:
		return KeyName(n.Key, n.Computed)
	case *ast.ClassProperty:
		return KeyName(n.Key, n.Computed)
	case *ast.Property:
		return KeyName(n.Key, n.Computed)
	case *ast.JSXAttribute:
		return AttributeName(n)
	}
	return ""
}

// IsFunctionLike reports whether n is any kind of function.
func IsFunctionLike(n ast.Node) bool {
	switch n.(type) {
	case *ast.FunctionDeclaration, *ast.FunctionExpression, *ast.ArrowFunctionExpression:
		return true
	}
	return false
}

// FunctionOf returns the shared function fields of n, or nil.
func FunctionOf(n ast.Node) *ast.Function {
	switch n := n.(type) {
	case *ast.FunctionDeclaration:
		return &n.Function
	case *ast.FunctionExpression:
		return &n.Function
	case *ast.ArrowFunctionExpression:
		return &n.Function
	}
	return nil
}

// ClassOf returns the shared class fields of n, or nil.
func ClassOf(n ast.Node) *ast.Class {
	switch n := n.(type) {
	case *ast.ClassDeclaration:
		return &n.Class
	case *ast.ClassExpression:
		return &n.Class
	}
	return nil
}

// EnclosingFunction returns the nearest function containing n.
func EnclosingFunction(n ast.Node) ast.Node {
	return ast.Closest(n, IsFunctionLike)
}

// IsThisMember reports whether n is `this.name`. An empty name matches any
// non-computed property.
func IsThisMember(n ast.Node, name string) bool {
	m, ok := n.(*ast.MemberExpression)
	if !ok || m.Computed {
		return false
	}
	if _, ok := m.Object.(*ast.ThisExpression); !ok {
		return false
	}
	id, ok := m.Property.(*ast.Identifier)
	return ok && (name == "" || id.Name == name)
}

// MemberName returns the static property name of a member expression.
func MemberName(m *ast.MemberExpression) string {
	if m == nil {
		return ""
	}
	if !m.Computed {
		if id, ok := m.Property.(*ast.Identifier); ok {
			return id.Name
		}
		return ""
	}
	if lit, ok := m.Property.(*ast.Literal); ok && lit.IsString() {
		return lit.Value
	}
	return ""
}

// IsMemberOf reports whether n is `object.property` with plain identifiers.
func IsMemberOf(n ast.Node, object, property string) bool {
	m, ok := n.(*ast.MemberExpression)
	if !ok || m.Computed {
		return false
	}
	obj, ok := m.Object.(*ast.Identifier)
	if !ok || obj.Name != object {
		return false
	}
	return MemberName(m) == property
}

// IsPropTypesDeclaration reports whether n declares propTypes: a static class
// property or an `X.propTypes` member.
func IsPropTypesDeclaration(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.ClassProperty:
		return n.Static && GetPropertyName(n) == "propTypes"
	case *ast.MemberExpression:
		return MemberName(n) == "propTypes"
	}
	return false
}

// IsCreateElementCall reports whether n is `<pragma>.createElement(...)` or a
// bare `createElement(...)`.
func IsCreateElementCall(n ast.Node, pragma string) bool {
	call, ok := n.(*ast.CallExpression)
	if !ok {
		return false
	}
	switch callee := call.Callee.(type) {
	case *ast.MemberExpression:
		return IsMemberOf(callee, pragma, "createElement")
	case *ast.Identifier:
		return callee.Name == "createElement"
	}
	return false
}

// IsJSX reports whether n is a JSX element or fragment.
func IsJSX(n ast.Node) bool {
	switch n.(type) {
	case *ast.JSXElement, *ast.JSXFragment:
		return true
	}
	return false
}

// ReturnsJSX reports whether fn returns JSX or a createElement call from any
// return statement that belongs to it, or from its expression body.
func ReturnsJSX(fn ast.Node, pragma string) bool {
	f := FunctionOf(fn)
	if f == nil || f.Body == nil {
		return false
	}
	if _, ok := f.Body.(*ast.BlockStatement); !ok {
		return isJSXValue(f.Body, pragma)
	}
	found := false
	ast.Inspect(f.Body, func(n ast.Node) bool {
		if found {
			return false
		}
		if IsFunctionLike(n) || ClassOf(n) != nil {
			return false
		}
		if ret, ok := n.(*ast.ReturnStatement); ok && isJSXValue(ret.Argument, pragma) {
			found = true
			return false
		}
		return true
	})
	return found
}

func isJSXValue(n ast.Node, pragma string) bool {
	switch v := n.(type) {
	case *ast.JSXElement, *ast.JSXFragment:
		return true
	case *ast.CallExpression:
		return IsCreateElementCall(v, pragma)
	case *ast.Other:
		// conditional and logical expressions: any branch returning JSX counts
		for _, c := range v.Children {
			if isJSXValue(c, pragma) {
				return true
			}
		}
	}
	return false
}

// IsDestructuringOfReservedName reports whether n destructures directly from
// `this.<name>` or from a plain identifier `<name>` for one of the reserved
// names, as in `const {a} = this.props` or `const {a} = props`. n may be the
// declarator or its object pattern.
func IsDestructuringOfReservedName(n ast.Node, reserved ...string) bool {
	if pat, ok := n.(*ast.ObjectPattern); ok {
		n = pat.Parent()
	}
	decl, ok := n.(*ast.VariableDeclarator)
	if !ok {
		return false
	}
	if _, ok := decl.ID.(*ast.ObjectPattern); !ok {
		return false
	}
	switch init := decl.Init.(type) {
	case *ast.MemberExpression:
		return IsThisMember(init, "") && slices.Contains(reserved, MemberName(init))
	case *ast.Identifier:
		return slices.Contains(reserved, init.Name)
	}
	return false
}
