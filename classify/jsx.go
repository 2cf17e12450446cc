package classify

import "github.com/speakeasy-api/jsxlint/ast"

// ElementType returns the name of a JSX element as written: `div`,
// `svg:circle` or `Foo.Bar`.
func ElementType(n ast.Node) string {
	switch n := n.(type) {
	case *ast.JSXOpeningElement:
		return ElementType(n.Name)
	case *ast.JSXElement:
		if n.OpeningElement == nil {
			return ""
		}
		return ElementType(n.OpeningElement.Name)
	case *ast.JSXIdentifier:
		return n.Name
	case *ast.JSXNamespacedName:
		if n.Namespace == nil || n.Name == nil {
			return ""
		}
		return n.Namespace.Name + ":" + n.Name.Name
	case *ast.JSXMemberExpression:
		obj := ElementType(n.Object)
		if obj == "" || n.Property == nil {
			return ""
		}
		return obj + "." + n.Property.Name
	}
	return ""
}

// AttributeName returns the name of a JSX attribute as written.
func AttributeName(n ast.Node) string {
	attr, ok := n.(*ast.JSXAttribute)
	if !ok {
		return ""
	}
	return ElementType(attr.Name)
}

// FindAttribute returns the last attribute named name on the opening
// element, or nil. Spread attributes are skipped.
func FindAttribute(opening *ast.JSXOpeningElement, name string) *ast.JSXAttribute {
	if opening == nil {
		return nil
	}
	var found *ast.JSXAttribute
	for _, a := range opening.Attributes {
		if attr, ok := a.(*ast.JSXAttribute); ok && AttributeName(attr) == name {
			found = attr
		}
	}
	return found
}

// StaticStringValue returns the string value of an attribute written as a
// string literal, directly or inside an expression container.
func StaticStringValue(attr *ast.JSXAttribute) (*ast.Literal, bool) {
	if attr == nil {
		return nil, false
	}
	switch v := attr.Value.(type) {
	case *ast.Literal:
		return v, v.IsString()
	case *ast.JSXExpressionContainer:
		if lit, ok := v.Expression.(*ast.Literal); ok && lit.IsString() {
			return lit, true
		}
	}
	return nil, false
}
