package linter

import (
	"fmt"

	"github.com/speakeasy-api/jsxlint/ast"
)

// Visitor holds the callbacks a rule registers for one file. Each callback is
// called on node enter, in document order; ProgramExit runs once after the
// traversal when the component registry has been finalized.
type Visitor struct {
	ImportDeclaration        func(n *ast.ImportDeclaration)
	ExportDefaultDeclaration func(n *ast.ExportDefaultDeclaration)
	VariableDeclarator       func(n *ast.VariableDeclarator)
	FunctionDeclaration      func(n *ast.FunctionDeclaration)
	FunctionExpression       func(n *ast.FunctionExpression)
	ArrowFunctionExpression  func(n *ast.ArrowFunctionExpression)
	ClassDeclaration         func(n *ast.ClassDeclaration)
	ClassExpression          func(n *ast.ClassExpression)
	MethodDefinition         func(n *ast.MethodDefinition)
	ClassProperty            func(n *ast.ClassProperty)
	MemberExpression         func(n *ast.MemberExpression)
	CallExpression           func(n *ast.CallExpression)
	AssignmentExpression     func(n *ast.AssignmentExpression)
	Identifier               func(n *ast.Identifier)
	JSXElement               func(n *ast.JSXElement)
	JSXOpeningElement        func(n *ast.JSXOpeningElement)
	JSXAttribute             func(n *ast.JSXAttribute)
	TypeAlias                func(n *ast.TypeAlias)

	ProgramExit func()
}

// dispatch calls the callback registered for the kind of n, if any.
func (v *Visitor) dispatch(n ast.Node) {
	switch n := n.(type) {
	case *ast.ImportDeclaration:
		call(v.ImportDeclaration, n)
	case *ast.ExportDefaultDeclaration:
		call(v.ExportDefaultDeclaration, n)
	case *ast.VariableDeclarator:
		call(v.VariableDeclarator, n)
	case *ast.FunctionDeclaration:
		call(v.FunctionDeclaration, n)
	case *ast.FunctionExpression:
		call(v.FunctionExpression, n)
	case *ast.ArrowFunctionExpression:
		call(v.ArrowFunctionExpression, n)
	case *ast.ClassDeclaration:
		call(v.ClassDeclaration, n)
	case *ast.ClassExpression:
		call(v.ClassExpression, n)
	case *ast.MethodDefinition:
		call(v.MethodDefinition, n)
	case *ast.ClassProperty:
		call(v.ClassProperty, n)
	case *ast.MemberExpression:
		call(v.MemberExpression, n)
	case *ast.CallExpression:
		call(v.CallExpression, n)
	case *ast.AssignmentExpression:
		call(v.AssignmentExpression, n)
	case *ast.Identifier:
		call(v.Identifier, n)
	case *ast.JSXElement:
		call(v.JSXElement, n)
	case *ast.JSXOpeningElement:
		call(v.JSXOpeningElement, n)
	case *ast.JSXAttribute:
		call(v.JSXAttribute, n)
	case *ast.TypeAlias:
		call(v.TypeAlias, n)
	case *ast.Program, *ast.ImportSpecifier, *ast.ImportDefaultSpecifier, *ast.ImportNamespaceSpecifier,
		*ast.ExportNamedDeclaration, *ast.VariableDeclaration, *ast.ClassBody, *ast.BlockStatement,
		*ast.ExpressionStatement, *ast.ReturnStatement, *ast.ThisExpression, *ast.Literal,
		*ast.TemplateLiteral, *ast.NewExpression, *ast.ObjectExpression, *ast.Property,
		*ast.ArrayExpression, *ast.SpreadElement, *ast.ObjectPattern, *ast.ArrayPattern,
		*ast.AssignmentPattern, *ast.RestElement, *ast.JSXFragment, *ast.JSXClosingElement,
		*ast.JSXSpreadAttribute, *ast.JSXIdentifier, *ast.JSXNamespacedName, *ast.JSXMemberExpression,
		*ast.JSXExpressionContainer, *ast.JSXText, *ast.TypeAnnotation, *ast.ObjectTypeAnnotation,
		*ast.ObjectTypeProperty, *ast.GenericTypeAnnotation, *ast.Other:
	default:
		panic(fmt.Sprintf("linter: no dispatch for node type %T", n))
	}
}

func call[N ast.Node](fn func(N), n N) {
	if fn != nil {
		fn(n)
	}
}
