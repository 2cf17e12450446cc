package ast

import "fmt"

// Children returns the direct children of n in source order, skipping nil
// slots. It panics on a node type defined outside this package.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if !IsNil(c) {
				out = append(out, c)
			}
		}
	}

	switch n := n.(type) {
	case *Program:
		add(n.Body...)
	case *ImportDeclaration:
		add(n.Specifiers...)
		add(n.Source)
	case *ImportSpecifier:
		if n.Imported != nil && n.Imported != n.Local {
			add(n.Imported)
		}
		add(n.Local)
	case *ImportDefaultSpecifier:
		add(n.Local)
	case *ImportNamespaceSpecifier:
		add(n.Local)
	case *ExportNamedDeclaration:
		add(n.Declaration)
	case *ExportDefaultDeclaration:
		add(n.Declaration)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			add(d)
		}
	case *VariableDeclarator:
		add(n.ID, n.Init)
	case *FunctionDeclaration:
		addFunction(add, &n.Function)
	case *FunctionExpression:
		addFunction(add, &n.Function)
	case *ArrowFunctionExpression:
		addFunction(add, &n.Function)
	case *ClassDeclaration:
		addClass(add, &n.Class)
	case *ClassExpression:
		addClass(add, &n.Class)
	case *ClassBody:
		add(n.Body...)
	case *MethodDefinition:
		add(n.Key, n.Value)
	case *ClassProperty:
		add(n.Key, n.TypeAnnotation, n.Value)
	case *BlockStatement:
		add(n.Body...)
	case *ExpressionStatement:
		add(n.Expression)
	case *ReturnStatement:
		add(n.Argument)
	case *Identifier:
		add(n.TypeAnnotation)
	case *ThisExpression, *Literal, *JSXIdentifier, *JSXText:
	case *TemplateLiteral:
		add(n.Expressions...)
	case *MemberExpression:
		add(n.Object, n.Property)
	case *CallExpression:
		add(n.Callee, n.TypeArguments)
		add(n.Arguments...)
	case *NewExpression:
		add(n.Callee)
		add(n.Arguments...)
	case *AssignmentExpression:
		add(n.Left, n.Right)
	case *ObjectExpression:
		add(n.Properties...)
	case *Property:
		if n.Shorthand && n.Key == n.Value {
			add(n.Key)
		} else {
			add(n.Key, n.Value)
		}
	case *ArrayExpression:
		add(n.Elements...)
	case *SpreadElement:
		add(n.Argument)
	case *ObjectPattern:
		add(n.Properties...)
	case *ArrayPattern:
		add(n.Elements...)
	case *AssignmentPattern:
		add(n.Left, n.Right)
	case *RestElement:
		add(n.Argument)
	case *JSXElement:
		add(n.OpeningElement)
		add(n.Children...)
		add(n.ClosingElement)
	case *JSXFragment:
		add(n.Children...)
	case *JSXOpeningElement:
		add(n.Name)
		add(n.Attributes...)
	case *JSXClosingElement:
		add(n.Name)
	case *JSXAttribute:
		add(n.Name, n.Value)
	case *JSXSpreadAttribute:
		add(n.Argument)
	case *JSXNamespacedName:
		add(n.Namespace, n.Name)
	case *JSXMemberExpression:
		add(n.Object, n.Property)
	case *JSXExpressionContainer:
		add(n.Expression)
	case *TypeAnnotation:
		add(n.TypeAnnotation)
	case *ObjectTypeAnnotation:
		add(n.Properties...)
	case *ObjectTypeProperty:
		add(n.Key, n.Value)
	case *GenericTypeAnnotation:
		add(n.ID)
	case *TypeAlias:
		add(n.ID, n.Right)
	case *Other:
		add(n.Children...)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
	return out
}

func addFunction(add func(...Node), f *Function) {
	add(f.ID)
	add(f.Params...)
	add(f.Body)
}

func addClass(add func(...Node), c *Class) {
	add(c.ID, c.SuperClass, c.Body)
}

// IsNil reports whether n is nil or a typed nil pointer of one of the node
// types held in typed fields.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *Literal:
		return v == nil
	case *ClassBody:
		return v == nil
	case *FunctionExpression:
		return v == nil
	case *VariableDeclarator:
		return v == nil
	case *TypeAnnotation:
		return v == nil
	case *JSXOpeningElement:
		return v == nil
	case *JSXClosingElement:
		return v == nil
	case *JSXIdentifier:
		return v == nil
	}
	return false
}

// Link sets the parent pointer of every node reachable from root. The root's
// parent is left untouched.
func Link(root Node) {
	for _, c := range Children(root) {
		c.setParent(root)
		Link(c)
	}
}

// Inspect traverses the tree depth-first in source order, calling f for each
// node. Children are skipped when f returns false.
func Inspect(root Node, f func(Node) bool) {
	if IsNil(root) || !f(root) {
		return
	}
	for _, c := range Children(root) {
		Inspect(c, f)
	}
}

// Visitor receives enter and leave events from Walk.
type Visitor interface {
	Enter(n Node)
	Leave(n Node)
}

// Walk traverses the tree depth-first, calling v.Enter before a node's
// children and v.Leave after them.
func Walk(root Node, v Visitor) {
	if IsNil(root) {
		return
	}
	v.Enter(root)
	for _, c := range Children(root) {
		Walk(c, v)
	}
	v.Leave(root)
}

// Ancestors returns the parents of n, nearest first.
func Ancestors(n Node) []Node {
	var out []Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// Closest returns the nearest ancestor of n matching pred, or nil.
func Closest(n Node, pred func(Node) bool) Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if pred(p) {
			return p
		}
	}
	return nil
}
