package ast

// Program is the root of a file.
type Program struct {
	base
	Body []Node
	// SourceType is "module" or "script".
	SourceType string
}

type ImportDeclaration struct {
	base
	// Specifiers holds *ImportSpecifier, *ImportDefaultSpecifier and
	// *ImportNamespaceSpecifier nodes in source order.
	Specifiers []Node
	Source     *Literal
}

// ImportSpecifier is `{ Imported as Local }`; Imported and Local are the same
// identifier when there is no alias.
type ImportSpecifier struct {
	base
	Imported *Identifier
	Local    *Identifier
}

type ImportDefaultSpecifier struct {
	base
	Local *Identifier
}

type ImportNamespaceSpecifier struct {
	base
	Local *Identifier
}

type ExportNamedDeclaration struct {
	base
	Declaration Node
}

type ExportDefaultDeclaration struct {
	base
	Declaration Node
}

type VariableDeclaration struct {
	base
	// DeclKind is "var", "let" or "const".
	DeclKind     string
	Declarations []*VariableDeclarator
}

type VariableDeclarator struct {
	base
	ID   Node
	Init Node
}

// Function holds the fields shared by the three function kinds.
type Function struct {
	ID        *Identifier
	Params    []Node
	Body      Node
	Async     bool
	Generator bool
}

type FunctionDeclaration struct {
	base
	Function
}

type FunctionExpression struct {
	base
	Function
}

// ArrowFunctionExpression has a *BlockStatement body or an expression body.
type ArrowFunctionExpression struct {
	base
	Function
}

// Class holds the fields shared by class declarations and expressions.
type Class struct {
	ID         *Identifier
	SuperClass Node
	Body       *ClassBody
}

type ClassDeclaration struct {
	base
	Class
}

type ClassExpression struct {
	base
	Class
}

type ClassBody struct {
	base
	// Body holds *MethodDefinition and *ClassProperty nodes.
	Body []Node
}

type MethodDefinition struct {
	base
	Key   Node
	Value *FunctionExpression
	// MethodKind is "method", "get", "set" or "constructor".
	MethodKind string
	Static     bool
	Computed   bool
}

type ClassProperty struct {
	base
	Key            Node
	Value          Node
	Static         bool
	Computed       bool
	TypeAnnotation *TypeAnnotation
}

type BlockStatement struct {
	base
	Body []Node
}

type ExpressionStatement struct {
	base
	Expression Node
}

type ReturnStatement struct {
	base
	Argument Node
}

type Identifier struct {
	base
	Name           string
	TypeAnnotation *TypeAnnotation
}

type ThisExpression struct {
	base
}

// LiteralKind distinguishes the value carried by a Literal.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBoolean
	LiteralNull
	LiteralRegExp
)

type Literal struct {
	base
	LitKind LiteralKind
	// Value is the cooked string value for string literals.
	Value string
	// Raw is the literal exactly as written, quotes included.
	Raw string
}

// IsString reports whether the literal is a string literal.
func (l *Literal) IsString() bool {
	return l != nil && l.LitKind == LiteralString
}

type TemplateLiteral struct {
	base
	Expressions []Node
}

type MemberExpression struct {
	base
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

type CallExpression struct {
	base
	Callee        Node
	Arguments     []Node
	TypeArguments Node
}

type NewExpression struct {
	base
	Callee    Node
	Arguments []Node
}

type AssignmentExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

type ObjectExpression struct {
	base
	// Properties holds *Property and *SpreadElement nodes.
	Properties []Node
}

type Property struct {
	base
	Key       Node
	Value     Node
	Computed  bool
	Shorthand bool
	Method    bool
}

type ArrayExpression struct {
	base
	// Elements may contain nil for holes.
	Elements []Node
}

type SpreadElement struct {
	base
	Argument Node
}

type ObjectPattern struct {
	base
	// Properties holds *Property (with a pattern Value) and *RestElement nodes.
	Properties []Node
}

type ArrayPattern struct {
	base
	// Elements may contain nil for holes.
	Elements []Node
}

type AssignmentPattern struct {
	base
	Left  Node
	Right Node
}

type RestElement struct {
	base
	Argument Node
}

type JSXElement struct {
	base
	OpeningElement *JSXOpeningElement
	ClosingElement *JSXClosingElement
	Children       []Node
}

type JSXFragment struct {
	base
	Children []Node
}

type JSXOpeningElement struct {
	base
	// Name is a *JSXIdentifier, *JSXMemberExpression or *JSXNamespacedName.
	Name Node
	// Attributes holds *JSXAttribute and *JSXSpreadAttribute nodes.
	Attributes  []Node
	SelfClosing bool
}

type JSXClosingElement struct {
	base
	Name Node
}

type JSXAttribute struct {
	base
	// Name is a *JSXIdentifier or *JSXNamespacedName.
	Name Node
	// Value is nil, *Literal, *JSXExpressionContainer or *JSXElement.
	Value Node
}

type JSXSpreadAttribute struct {
	base
	Argument Node
}

type JSXIdentifier struct {
	base
	Name string
}

type JSXNamespacedName struct {
	base
	Namespace *JSXIdentifier
	Name      *JSXIdentifier
}

type JSXMemberExpression struct {
	base
	Object   Node
	Property *JSXIdentifier
}

// JSXExpressionContainer wraps `{expr}`; Expression is nil for `{}`.
type JSXExpressionContainer struct {
	base
	Expression Node
}

type JSXText struct {
	base
	Value string
}

// TypeAnnotation is the `: T` suffix on identifiers and class properties.
type TypeAnnotation struct {
	base
	TypeAnnotation Node
}

type ObjectTypeAnnotation struct {
	base
	Properties []Node
	// Exact is set for `{| ... |}` object types.
	Exact bool
}

type ObjectTypeProperty struct {
	base
	Key   Node
	Value Node
}

type GenericTypeAnnotation struct {
	base
	ID *Identifier
}

// TypeAlias is `type ID = Right`.
type TypeAlias struct {
	base
	ID    *Identifier
	Right Node
}

// Other stands in for host node kinds no rule inspects (loops, operators,
// conditionals...). Its children are still walked.
type Other struct {
	base
	Type     string
	Children []Node
}

func (*Program) Kind() Kind                  { return KindProgram }
func (*ImportDeclaration) Kind() Kind        { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind          { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Kind() Kind   { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }
func (*ExportNamedDeclaration) Kind() Kind   { return KindExportNamedDeclaration }
func (*ExportDefaultDeclaration) Kind() Kind { return KindExportDefaultDeclaration }
func (*VariableDeclaration) Kind() Kind      { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind       { return KindVariableDeclarator }
func (*FunctionDeclaration) Kind() Kind      { return KindFunctionDeclaration }
func (*FunctionExpression) Kind() Kind       { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind  { return KindArrowFunctionExpression }
func (*ClassDeclaration) Kind() Kind         { return KindClassDeclaration }
func (*ClassExpression) Kind() Kind          { return KindClassExpression }
func (*ClassBody) Kind() Kind                { return KindClassBody }
func (*MethodDefinition) Kind() Kind         { return KindMethodDefinition }
func (*ClassProperty) Kind() Kind            { return KindClassProperty }
func (*BlockStatement) Kind() Kind           { return KindBlockStatement }
func (*ExpressionStatement) Kind() Kind      { return KindExpressionStatement }
func (*ReturnStatement) Kind() Kind          { return KindReturnStatement }
func (*Identifier) Kind() Kind               { return KindIdentifier }
func (*ThisExpression) Kind() Kind           { return KindThisExpression }
func (*Literal) Kind() Kind                  { return KindLiteral }
func (*TemplateLiteral) Kind() Kind          { return KindTemplateLiteral }
func (*MemberExpression) Kind() Kind         { return KindMemberExpression }
func (*CallExpression) Kind() Kind           { return KindCallExpression }
func (*NewExpression) Kind() Kind            { return KindNewExpression }
func (*AssignmentExpression) Kind() Kind     { return KindAssignmentExpression }
func (*ObjectExpression) Kind() Kind         { return KindObjectExpression }
func (*Property) Kind() Kind                 { return KindProperty }
func (*ArrayExpression) Kind() Kind          { return KindArrayExpression }
func (*SpreadElement) Kind() Kind            { return KindSpreadElement }
func (*ObjectPattern) Kind() Kind            { return KindObjectPattern }
func (*ArrayPattern) Kind() Kind             { return KindArrayPattern }
func (*AssignmentPattern) Kind() Kind        { return KindAssignmentPattern }
func (*RestElement) Kind() Kind              { return KindRestElement }
func (*JSXElement) Kind() Kind               { return KindJSXElement }
func (*JSXFragment) Kind() Kind              { return KindJSXFragment }
func (*JSXOpeningElement) Kind() Kind        { return KindJSXOpeningElement }
func (*JSXClosingElement) Kind() Kind        { return KindJSXClosingElement }
func (*JSXAttribute) Kind() Kind             { return KindJSXAttribute }
func (*JSXSpreadAttribute) Kind() Kind       { return KindJSXSpreadAttribute }
func (*JSXIdentifier) Kind() Kind            { return KindJSXIdentifier }
func (*JSXNamespacedName) Kind() Kind        { return KindJSXNamespacedName }
func (*JSXMemberExpression) Kind() Kind      { return KindJSXMemberExpression }
func (*JSXExpressionContainer) Kind() Kind   { return KindJSXExpressionContainer }
func (*JSXText) Kind() Kind                  { return KindJSXText }
func (*TypeAnnotation) Kind() Kind           { return KindTypeAnnotation }
func (*ObjectTypeAnnotation) Kind() Kind     { return KindObjectTypeAnnotation }
func (*ObjectTypeProperty) Kind() Kind       { return KindObjectTypeProperty }
func (*GenericTypeAnnotation) Kind() Kind    { return KindGenericTypeAnnotation }
func (*TypeAlias) Kind() Kind                { return KindTypeAlias }
func (*Other) Kind() Kind                    { return KindOther }
