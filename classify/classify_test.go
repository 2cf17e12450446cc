package classify_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/stretchr/testify/assert"
)

func id(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func str(v string) *ast.Literal {
	return &ast.Literal{LitKind: ast.LiteralString, Value: v, Raw: `"` + v + `"`}
}

func TestIsComponentName_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected bool
	}{
		{name: "Foo", expected: true},
		{name: "foo", expected: false},
		{name: "", expected: false},
		{name: "_Foo", expected: false},
		{name: "Ünicode", expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classify.IsComponentName(tt.name))
		})
	}
}

func TestIsComponentDeclarationName_Success(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionDeclaration{Function: ast.Function{ID: id("Hello")}}
	anon := &ast.FunctionDeclaration{}
	decl := &ast.VariableDeclarator{ID: id("lower")}
	pattern := &ast.VariableDeclarator{ID: &ast.ObjectPattern{}}

	assert.True(t, classify.IsComponentDeclarationName(fn))
	assert.False(t, classify.IsComponentDeclarationName(anon))
	assert.False(t, classify.IsComponentDeclarationName(decl))
	assert.False(t, classify.IsComponentDeclarationName(pattern))
	assert.False(t, classify.IsComponentDeclarationName(str("Foo")))
}

func TestLifecycleMethods_Success(t *testing.T) {
	t.Parallel()

	assert.Len(t, classify.LifecycleMethods, 17)
	assert.Len(t, classify.InternalMethods, 14)
	assert.True(t, classify.IsLifecycleMethodName("getDerivedStateFromProps"))
	assert.False(t, classify.IsLifecycleMethodName("handleClick"))
	assert.True(t, classify.IsInternalMethodName("constructor"))
	assert.False(t, classify.IsInternalMethodName("getDefaultProps"))
}

func TestGetPropertyName_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{name: "method", node: &ast.MethodDefinition{Key: id("render")}, expected: "render"},
		{name: "computed method", node: &ast.MethodDefinition{Key: id("render"), Computed: true}, expected: ""},
		{name: "class property", node: &ast.ClassProperty{Key: id("state")}, expected: "state"},
		{name: "string key", node: &ast.Property{Key: str("a-b")}, expected: "a-b"},
		{name: "computed string key", node: &ast.Property{Key: str("x"), Computed: true}, expected: "x"},
		{name: "attribute", node: &ast.JSXAttribute{Name: &ast.JSXIdentifier{Name: "rel"}}, expected: "rel"},
		{name: "other", node: id("x"), expected: ""},
		{name: "nil", node: nil, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classify.GetPropertyName(tt.node))
		})
	}
}

func TestIsDestructuringOfReservedName_Success(t *testing.T) {
	t.Parallel()

	declarator := func(init ast.Node) *ast.VariableDeclarator {
		d := &ast.VariableDeclarator{ID: &ast.ObjectPattern{}, Init: init}
		ast.Link(d)
		return d
	}
	thisMember := func(name string) *ast.MemberExpression {
		return &ast.MemberExpression{Object: &ast.ThisExpression{}, Property: id(name)}
	}

	tests := []struct {
		name     string
		node     ast.Node
		expected bool
	}{
		{name: "this.props", node: declarator(thisMember("props")), expected: true},
		{name: "pattern of this.state", node: declarator(thisMember("state")).ID, expected: true},
		{name: "props identifier", node: declarator(id("props")), expected: true},
		{name: "other member", node: declarator(thisMember("foo")), expected: false},
		{name: "non-this member", node: declarator(&ast.MemberExpression{Object: id("x"), Property: id("props")}), expected: false},
		{name: "identifier target", node: &ast.VariableDeclarator{ID: id("a"), Init: id("props")}, expected: false},
		{name: "not a declarator", node: id("props"), expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classify.IsDestructuringOfReservedName(tt.node, "props", "state", "context"))
		})
	}
}

func TestElementType_Success(t *testing.T) {
	t.Parallel()

	ns := &ast.JSXNamespacedName{Namespace: &ast.JSXIdentifier{Name: "svg"}, Name: &ast.JSXIdentifier{Name: "circle"}}
	member := &ast.JSXMemberExpression{
		Object:   &ast.JSXMemberExpression{Object: &ast.JSXIdentifier{Name: "A"}, Property: &ast.JSXIdentifier{Name: "B"}},
		Property: &ast.JSXIdentifier{Name: "C"},
	}

	assert.Equal(t, "svg:circle", classify.ElementType(&ast.JSXOpeningElement{Name: ns}))
	assert.Equal(t, "A.B.C", classify.ElementType(member))
	assert.Equal(t, "", classify.ElementType(id("x")))
}

func TestFindAttribute_Success(t *testing.T) {
	t.Parallel()

	first := &ast.JSXAttribute{Name: &ast.JSXIdentifier{Name: "rel"}, Value: str("a")}
	second := &ast.JSXAttribute{Name: &ast.JSXIdentifier{Name: "rel"}, Value: &ast.JSXExpressionContainer{Expression: str("b")}}
	opening := &ast.JSXOpeningElement{
		Name:       &ast.JSXIdentifier{Name: "a"},
		Attributes: []ast.Node{first, &ast.JSXSpreadAttribute{Argument: id("p")}, second},
	}

	found := classify.FindAttribute(opening, "rel")
	assert.Same(t, second, found)
	lit, ok := classify.StaticStringValue(found)
	assert.True(t, ok)
	assert.Equal(t, "b", lit.Value)
	assert.Nil(t, classify.FindAttribute(opening, "href"))
	assert.Nil(t, classify.FindAttribute(nil, "rel"))
}

func TestIsThisMember_Success(t *testing.T) {
	t.Parallel()

	m := &ast.MemberExpression{Object: &ast.ThisExpression{}, Property: id("foo")}
	assert.True(t, classify.IsThisMember(m, "foo"))
	assert.True(t, classify.IsThisMember(m, ""))
	assert.False(t, classify.IsThisMember(m, "bar"))
	assert.False(t, classify.IsThisMember(&ast.MemberExpression{Object: id("x"), Property: id("foo")}, "foo"))
	assert.True(t, classify.IsMemberOf(&ast.MemberExpression{Object: id("React"), Property: id("Component")}, "React", "Component"))
}

func TestReturnsJSX_Success(t *testing.T) {
	t.Parallel()

	jsx := &ast.JSXElement{OpeningElement: &ast.JSXOpeningElement{Name: &ast.JSXIdentifier{Name: "div"}}}
	arrow := &ast.ArrowFunctionExpression{Function: ast.Function{Body: jsx}}
	block := &ast.FunctionExpression{Function: ast.Function{Body: &ast.BlockStatement{Body: []ast.Node{
		&ast.ReturnStatement{Argument: jsx},
	}}}}
	nested := &ast.FunctionExpression{Function: ast.Function{Body: &ast.BlockStatement{Body: []ast.Node{
		&ast.ExpressionStatement{Expression: arrow},
	}}}}
	createElement := &ast.ArrowFunctionExpression{Function: ast.Function{Body: &ast.CallExpression{
		Callee: &ast.MemberExpression{Object: id("React"), Property: id("createElement")},
	}}}

	assert.True(t, classify.ReturnsJSX(arrow, "React"))
	assert.True(t, classify.ReturnsJSX(block, "React"))
	assert.False(t, classify.ReturnsJSX(nested, "React"))
	assert.True(t, classify.ReturnsJSX(createElement, "React"))
	assert.False(t, classify.ReturnsJSX(createElement, "Preact"))
	assert.False(t, classify.ReturnsJSX(id("x"), "React"))
}
