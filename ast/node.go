// Package ast defines the syntax tree the rules operate on.
//
// The tree is a closed sum type: every node kind is a concrete struct in this
// package and Node can only be implemented here. Hosts build a tree once per
// file, call Link to set parent pointers, and never mutate it afterwards.
package ast

import "fmt"

// Range is a half-open byte range [Start, End) into the file source.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Range() Range
	Parent() Node

	setParent(p Node)
}

type base struct {
	Rng    Range
	parent Node
}

func (b *base) Range() Range     { return b.Rng }
func (b *base) Parent() Node     { return b.parent }
func (b *base) setParent(p Node) { b.parent = p }

// SetRange is used by hosts while building the tree.
func (b *base) SetRange(r Range) { b.Rng = r }

// Kind tags the concrete type of a node.
type Kind int

const (
	KindInvalid Kind = iota
	KindProgram
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportDefaultDeclaration
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassDeclaration
	KindClassExpression
	KindClassBody
	KindMethodDefinition
	KindClassProperty
	KindBlockStatement
	KindExpressionStatement
	KindReturnStatement
	KindIdentifier
	KindThisExpression
	KindLiteral
	KindTemplateLiteral
	KindMemberExpression
	KindCallExpression
	KindNewExpression
	KindAssignmentExpression
	KindObjectExpression
	KindProperty
	KindArrayExpression
	KindSpreadElement
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement
	KindJSXElement
	KindJSXFragment
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXIdentifier
	KindJSXNamespacedName
	KindJSXMemberExpression
	KindJSXExpressionContainer
	KindJSXText
	KindTypeAnnotation
	KindObjectTypeAnnotation
	KindObjectTypeProperty
	KindGenericTypeAnnotation
	KindTypeAlias
	KindOther
)

var kindNames = [...]string{
	KindInvalid:                  "Invalid",
	KindProgram:                  "Program",
	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindClassDeclaration:         "ClassDeclaration",
	KindClassExpression:          "ClassExpression",
	KindClassBody:                "ClassBody",
	KindMethodDefinition:         "MethodDefinition",
	KindClassProperty:            "ClassProperty",
	KindBlockStatement:           "BlockStatement",
	KindExpressionStatement:      "ExpressionStatement",
	KindReturnStatement:          "ReturnStatement",
	KindIdentifier:               "Identifier",
	KindThisExpression:           "ThisExpression",
	KindLiteral:                  "Literal",
	KindTemplateLiteral:          "TemplateLiteral",
	KindMemberExpression:         "MemberExpression",
	KindCallExpression:           "CallExpression",
	KindNewExpression:            "NewExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindObjectExpression:         "ObjectExpression",
	KindProperty:                 "Property",
	KindArrayExpression:          "ArrayExpression",
	KindSpreadElement:            "SpreadElement",
	KindObjectPattern:            "ObjectPattern",
	KindArrayPattern:             "ArrayPattern",
	KindAssignmentPattern:        "AssignmentPattern",
	KindRestElement:              "RestElement",
	KindJSXElement:               "JSXElement",
	KindJSXFragment:              "JSXFragment",
	KindJSXOpeningElement:        "JSXOpeningElement",
	KindJSXClosingElement:        "JSXClosingElement",
	KindJSXAttribute:             "JSXAttribute",
	KindJSXSpreadAttribute:       "JSXSpreadAttribute",
	KindJSXIdentifier:            "JSXIdentifier",
	KindJSXNamespacedName:        "JSXNamespacedName",
	KindJSXMemberExpression:      "JSXMemberExpression",
	KindJSXExpressionContainer:   "JSXExpressionContainer",
	KindJSXText:                  "JSXText",
	KindTypeAnnotation:           "TypeAnnotation",
	KindObjectTypeAnnotation:     "ObjectTypeAnnotation",
	KindObjectTypeProperty:       "ObjectTypeProperty",
	KindGenericTypeAnnotation:    "GenericTypeAnnotation",
	KindTypeAlias:                "TypeAlias",
	KindOther:                    "Other",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}
