package frontend

import (
	"github.com/speakeasy-api/jsxlint/ast"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type ranged interface {
	ast.Node
	SetRange(r ast.Range)
}

func at[N ranged](n N, r ast.Range) N {
	n.SetRange(r)
	return n
}

type builder struct {
	src []byte
}

func rng(n *sitter.Node) ast.Range {
	return ast.Range{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func (b *builder) text(n *sitter.Node) string {
	return n.Utf8Text(b.src)
}

func isComment(n *sitter.Node) bool {
	return n.Kind() == "comment" || n.Kind() == "html_comment"
}

// named returns the named children of n, comments excluded.
func named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c != nil && !isComment(c) {
			out = append(out, c)
		}
	}
	return out
}

func firstNamed(n *sitter.Node) *sitter.Node {
	if c := named(n); len(c) > 0 {
		return c[0]
	}
	return nil
}

// hasToken reports whether n has a direct anonymous child of the given kind.
func hasToken(n *sitter.Node, kind string) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && !c.IsNamed() && c.Kind() == kind {
			return true
		}
	}
	return false
}

func childOfKind(n *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && c.Kind() == kind {
			return c
		}
	}
	return nil
}

func (b *builder) program(n *sitter.Node) *ast.Program {
	p := at(&ast.Program{}, ast.Range{Start: 0, End: len(b.src)})
	for _, c := range named(n) {
		if c.Kind() == "hash_bang_line" {
			continue
		}
		p.Body = append(p.Body, b.convert(c))
	}
	return p
}

// convert maps any statement or expression node.
func (b *builder) convert(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	r := rng(n)
	switch n.Kind() {
	case "import_statement":
		return b.importDeclaration(n)
	case "export_statement":
		return b.exportStatement(n)
	case "lexical_declaration", "variable_declaration":
		return b.variableDeclaration(n)
	case "function_declaration", "generator_function_declaration":
		fn := at(&ast.FunctionDeclaration{}, r)
		b.function(n, &fn.Function)
		return fn
	case "function_expression", "function", "generator_function":
		fn := at(&ast.FunctionExpression{}, r)
		b.function(n, &fn.Function)
		return fn
	case "arrow_function":
		fn := at(&ast.ArrowFunctionExpression{}, r)
		b.function(n, &fn.Function)
		return fn
	case "class_declaration", "abstract_class_declaration":
		c := at(&ast.ClassDeclaration{}, r)
		b.class(n, &c.Class)
		return c
	case "class":
		c := at(&ast.ClassExpression{}, r)
		b.class(n, &c.Class)
		return c
	case "statement_block":
		return b.block(n)
	case "expression_statement":
		return at(&ast.ExpressionStatement{Expression: b.convert(firstNamed(n))}, r)
	case "return_statement":
		return at(&ast.ReturnStatement{Argument: b.convert(firstNamed(n))}, r)
	case "parenthesized_expression":
		if inner := firstNamed(n); inner != nil {
			return b.convert(inner)
		}
	case "identifier", "property_identifier", "shorthand_property_identifier",
		"private_property_identifier", "type_identifier", "statement_identifier":
		return b.identifier(n)
	case "undefined":
		return at(&ast.Identifier{Name: "undefined"}, r)
	case "this":
		return at(&ast.ThisExpression{}, r)
	case "string":
		return b.stringLiteral(n)
	case "number":
		return at(&ast.Literal{LitKind: ast.LiteralNumber, Value: b.text(n), Raw: b.text(n)}, r)
	case "true", "false":
		return at(&ast.Literal{LitKind: ast.LiteralBoolean, Value: b.text(n), Raw: b.text(n)}, r)
	case "null":
		return at(&ast.Literal{LitKind: ast.LiteralNull, Value: "null", Raw: "null"}, r)
	case "regex":
		return at(&ast.Literal{LitKind: ast.LiteralRegExp, Value: b.text(n), Raw: b.text(n)}, r)
	case "template_string":
		t := at(&ast.TemplateLiteral{}, r)
		for _, c := range named(n) {
			if c.Kind() == "template_substitution" {
				t.Expressions = append(t.Expressions, b.convert(firstNamed(c)))
			}
		}
		return t
	case "member_expression":
		return at(&ast.MemberExpression{
			Object:   b.convert(n.ChildByFieldName("object")),
			Property: b.convert(n.ChildByFieldName("property")),
			Optional: childOfKind(n, "optional_chain") != nil,
		}, r)
	case "subscript_expression":
		return at(&ast.MemberExpression{
			Object:   b.convert(n.ChildByFieldName("object")),
			Property: b.convert(n.ChildByFieldName("index")),
			Computed: true,
			Optional: childOfKind(n, "optional_chain") != nil,
		}, r)
	case "call_expression":
		call := at(&ast.CallExpression{Callee: b.convert(n.ChildByFieldName("function"))}, r)
		if ta := n.ChildByFieldName("type_arguments"); ta != nil {
			call.TypeArguments = b.typeNode(ta)
		}
		if args := n.ChildByFieldName("arguments"); args != nil {
			if args.Kind() == "arguments" {
				call.Arguments = b.list(args)
			} else {
				call.Arguments = []ast.Node{b.convert(args)}
			}
		}
		return call
	case "new_expression":
		ne := at(&ast.NewExpression{Callee: b.convert(n.ChildByFieldName("constructor"))}, r)
		if args := n.ChildByFieldName("arguments"); args != nil {
			ne.Arguments = b.list(args)
		}
		return ne
	case "assignment_expression":
		return at(&ast.AssignmentExpression{
			Operator: "=",
			Left:     b.target(n.ChildByFieldName("left")),
			Right:    b.convert(n.ChildByFieldName("right")),
		}, r)
	case "augmented_assignment_expression":
		op := "="
		if o := n.ChildByFieldName("operator"); o != nil {
			op = b.text(o)
		}
		return at(&ast.AssignmentExpression{
			Operator: op,
			Left:     b.target(n.ChildByFieldName("left")),
			Right:    b.convert(n.ChildByFieldName("right")),
		}, r)
	case "object":
		return b.object(n)
	case "array":
		return at(&ast.ArrayExpression{Elements: b.elements(n, b.convert)}, r)
	case "spread_element":
		return at(&ast.SpreadElement{Argument: b.convert(firstNamed(n))}, r)
	case "jsx_element", "jsx_self_closing_element":
		return b.jsxElement(n)
	case "jsx_expression":
		return b.jsxExpression(n)
	case "jsx_text", "html_character_reference":
		return at(&ast.JSXText{Value: b.text(n)}, r)
	case "type_alias_declaration":
		return at(&ast.TypeAlias{
			ID:    b.identifier(n.ChildByFieldName("name")),
			Right: b.typeNode(n.ChildByFieldName("value")),
		}, r)
	case "for_in_statement":
		return b.forIn(n)
	case "catch_clause":
		other := at(&ast.Other{Type: n.Kind()}, r)
		if p := n.ChildByFieldName("parameter"); p != nil {
			other.Children = append(other.Children, b.pattern(p))
		}
		other.Children = append(other.Children, b.convert(n.ChildByFieldName("body")))
		return other
	}
	return b.other(n)
}

func (b *builder) other(n *sitter.Node) *ast.Other {
	o := at(&ast.Other{Type: n.Kind()}, rng(n))
	for _, c := range named(n) {
		o.Children = append(o.Children, b.convert(c))
	}
	return o
}

// list converts the named children of a list node such as arguments.
func (b *builder) list(n *sitter.Node) []ast.Node {
	var out []ast.Node
	for _, c := range named(n) {
		out = append(out, b.convert(c))
	}
	return out
}

func (b *builder) identifier(n *sitter.Node) *ast.Identifier {
	if n == nil {
		return nil
	}
	return at(&ast.Identifier{Name: b.text(n)}, rng(n))
}

func (b *builder) stringLiteral(n *sitter.Node) *ast.Literal {
	raw := b.text(n)
	return at(&ast.Literal{LitKind: ast.LiteralString, Value: cook(raw), Raw: raw}, rng(n))
}

func (b *builder) block(n *sitter.Node) *ast.BlockStatement {
	blk := at(&ast.BlockStatement{}, rng(n))
	for _, c := range named(n) {
		blk.Body = append(blk.Body, b.convert(c))
	}
	return blk
}

func (b *builder) importDeclaration(n *sitter.Node) *ast.ImportDeclaration {
	decl := at(&ast.ImportDeclaration{}, rng(n))
	if src := n.ChildByFieldName("source"); src != nil {
		decl.Source = b.stringLiteral(src)
	}
	clause := childOfKind(n, "import_clause")
	if clause == nil {
		return decl
	}
	for _, c := range named(clause) {
		switch c.Kind() {
		case "identifier":
			decl.Specifiers = append(decl.Specifiers, at(&ast.ImportDefaultSpecifier{Local: b.identifier(c)}, rng(c)))
		case "namespace_import":
			decl.Specifiers = append(decl.Specifiers, at(&ast.ImportNamespaceSpecifier{Local: b.identifier(firstNamed(c))}, rng(c)))
		case "named_imports":
			for _, spec := range named(c) {
				if spec.Kind() != "import_specifier" {
					continue
				}
				imported := b.importName(spec.ChildByFieldName("name"))
				local := imported
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					local = b.identifier(alias)
				}
				decl.Specifiers = append(decl.Specifiers, at(&ast.ImportSpecifier{Imported: imported, Local: local}, rng(spec)))
			}
		}
	}
	return decl
}

// importName handles both `{ a }` and `{ "a-b" as c }`.
func (b *builder) importName(n *sitter.Node) *ast.Identifier {
	if n == nil {
		return nil
	}
	if n.Kind() == "string" {
		return at(&ast.Identifier{Name: cook(b.text(n))}, rng(n))
	}
	return b.identifier(n)
}

func (b *builder) exportStatement(n *sitter.Node) ast.Node {
	r := rng(n)
	decl := n.ChildByFieldName("declaration")
	if hasToken(n, "default") {
		target := decl
		if target == nil {
			target = n.ChildByFieldName("value")
		}
		return at(&ast.ExportDefaultDeclaration{Declaration: b.convert(target)}, r)
	}
	if decl != nil {
		return at(&ast.ExportNamedDeclaration{Declaration: b.convert(decl)}, r)
	}
	return b.other(n)
}

func (b *builder) variableDeclaration(n *sitter.Node) *ast.VariableDeclaration {
	kind := "var"
	if k := n.ChildByFieldName("kind"); k != nil {
		kind = b.text(k)
	}
	decl := at(&ast.VariableDeclaration{DeclKind: kind}, rng(n))
	for _, c := range named(n) {
		if c.Kind() != "variable_declarator" {
			continue
		}
		id := b.pattern(c.ChildByFieldName("name"))
		if t := c.ChildByFieldName("type"); t != nil {
			if ident, ok := id.(*ast.Identifier); ok {
				ident.TypeAnnotation = b.typeAnnotation(t)
			}
		}
		decl.Declarations = append(decl.Declarations, at(&ast.VariableDeclarator{
			ID:   id,
			Init: b.convert(c.ChildByFieldName("value")),
		}, rng(c)))
	}
	return decl
}

func (b *builder) forIn(n *sitter.Node) *ast.Other {
	o := at(&ast.Other{Type: n.Kind()}, rng(n))
	left := n.ChildByFieldName("left")
	if kind := n.ChildByFieldName("kind"); kind != nil && left != nil {
		d := at(&ast.VariableDeclarator{ID: b.pattern(left)}, rng(left))
		o.Children = append(o.Children, at(&ast.VariableDeclaration{
			DeclKind:     b.text(kind),
			Declarations: []*ast.VariableDeclarator{d},
		}, ast.Range{Start: int(kind.StartByte()), End: int(left.EndByte())}))
	} else if left != nil {
		o.Children = append(o.Children, b.target(left))
	}
	o.Children = append(o.Children, b.convert(n.ChildByFieldName("right")), b.convert(n.ChildByFieldName("body")))
	return o
}

func (b *builder) function(n *sitter.Node, f *ast.Function) {
	if name := n.ChildByFieldName("name"); name != nil {
		f.ID = b.identifier(name)
	}
	f.Async = hasToken(n, "async")
	f.Generator = hasToken(n, "*")
	if p := n.ChildByFieldName("parameter"); p != nil {
		f.Params = []ast.Node{b.pattern(p)}
	} else if ps := n.ChildByFieldName("parameters"); ps != nil {
		f.Params = b.params(ps)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		f.Body = b.convert(body)
	}
}

func (b *builder) params(n *sitter.Node) []ast.Node {
	var out []ast.Node
	for _, c := range named(n) {
		out = append(out, b.pattern(c))
	}
	return out
}

// pattern converts a binding position.
func (b *builder) pattern(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	r := rng(n)
	switch n.Kind() {
	case "identifier", "shorthand_property_identifier_pattern", "undefined":
		return b.identifier(n)
	case "object_pattern":
		p := at(&ast.ObjectPattern{}, r)
		for _, c := range named(n) {
			p.Properties = append(p.Properties, b.patternProperty(c))
		}
		return p
	case "array_pattern":
		return at(&ast.ArrayPattern{Elements: b.elements(n, b.pattern)}, r)
	case "assignment_pattern":
		return at(&ast.AssignmentPattern{
			Left:  b.pattern(n.ChildByFieldName("left")),
			Right: b.convert(n.ChildByFieldName("right")),
		}, r)
	case "rest_pattern":
		return at(&ast.RestElement{Argument: b.pattern(firstNamed(n))}, r)
	case "required_parameter", "optional_parameter":
		p := b.pattern(n.ChildByFieldName("pattern"))
		if t := n.ChildByFieldName("type"); t != nil {
			if ident, ok := p.(*ast.Identifier); ok {
				ident.TypeAnnotation = b.typeAnnotation(t)
				ident.SetRange(ast.Range{Start: ident.Range().Start, End: int(t.EndByte())})
			}
		}
		if v := n.ChildByFieldName("value"); v != nil {
			return at(&ast.AssignmentPattern{Left: p, Right: b.convert(v)}, r)
		}
		return p
	}
	return b.convert(n)
}

func (b *builder) patternProperty(n *sitter.Node) ast.Node {
	r := rng(n)
	switch n.Kind() {
	case "shorthand_property_identifier_pattern":
		id := b.identifier(n)
		return at(&ast.Property{Key: id, Value: id, Shorthand: true}, r)
	case "object_assignment_pattern":
		left := n.ChildByFieldName("left")
		value := at(&ast.AssignmentPattern{
			Left:  b.pattern(left),
			Right: b.convert(n.ChildByFieldName("right")),
		}, r)
		return at(&ast.Property{Key: b.identifier(left), Value: value, Shorthand: true}, r)
	case "pair_pattern":
		key, computed := b.propertyKey(n.ChildByFieldName("key"))
		return at(&ast.Property{Key: key, Value: b.pattern(n.ChildByFieldName("value")), Computed: computed}, r)
	case "rest_pattern":
		return at(&ast.RestElement{Argument: b.pattern(firstNamed(n))}, r)
	}
	return b.convert(n)
}

// target converts the left side of an assignment.
func (b *builder) target(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "object_pattern", "array_pattern":
		return b.pattern(n)
	}
	return b.convert(n)
}

// elements converts array literal or pattern elements, recording holes as nil.
func (b *builder) elements(n *sitter.Node, conv func(*sitter.Node) ast.Node) []ast.Node {
	var out []ast.Node
	expecting := true
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || isComment(c) {
			continue
		}
		switch {
		case c.Kind() == ",":
			if expecting {
				out = append(out, nil)
			}
			expecting = true
		case c.IsNamed():
			out = append(out, conv(c))
			expecting = false
		}
	}
	return out
}

func (b *builder) propertyKey(n *sitter.Node) (ast.Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.Kind() == "computed_property_name" {
		return b.convert(firstNamed(n)), true
	}
	return b.convert(n), false
}

func (b *builder) object(n *sitter.Node) *ast.ObjectExpression {
	obj := at(&ast.ObjectExpression{}, rng(n))
	for _, c := range named(n) {
		r := rng(c)
		switch c.Kind() {
		case "pair":
			key, computed := b.propertyKey(c.ChildByFieldName("key"))
			obj.Properties = append(obj.Properties, at(&ast.Property{
				Key:      key,
				Value:    b.convert(c.ChildByFieldName("value")),
				Computed: computed,
			}, r))
		case "shorthand_property_identifier":
			id := b.identifier(c)
			obj.Properties = append(obj.Properties, at(&ast.Property{Key: id, Value: id, Shorthand: true}, r))
		case "method_definition":
			key, computed := b.propertyKey(c.ChildByFieldName("name"))
			obj.Properties = append(obj.Properties, at(&ast.Property{
				Key:      key,
				Value:    b.methodFunction(c),
				Computed: computed,
				Method:   true,
			}, r))
		default:
			obj.Properties = append(obj.Properties, b.convert(c))
		}
	}
	return obj
}

// methodFunction builds the function value of a method, spanning from the
// parameter list to the end of the body.
func (b *builder) methodFunction(n *sitter.Node) *ast.FunctionExpression {
	fn := &ast.FunctionExpression{}
	fn.Async = hasToken(n, "async")
	fn.Generator = hasToken(n, "*")
	start := int(n.StartByte())
	if ps := n.ChildByFieldName("parameters"); ps != nil {
		fn.Params = b.params(ps)
		start = int(ps.StartByte())
	}
	if body := n.ChildByFieldName("body"); body != nil {
		fn.Body = b.convert(body)
	}
	return at(fn, ast.Range{Start: start, End: int(n.EndByte())})
}

func (b *builder) class(n *sitter.Node, c *ast.Class) {
	if name := n.ChildByFieldName("name"); name != nil {
		c.ID = b.identifier(name)
	}
	if heritage := childOfKind(n, "class_heritage"); heritage != nil {
		c.SuperClass = b.superClass(heritage)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		c.Body = b.classBody(body)
	}
}

func (b *builder) superClass(heritage *sitter.Node) ast.Node {
	for _, c := range named(heritage) {
		if c.Kind() == "implements_clause" {
			continue
		}
		if c.Kind() == "extends_clause" {
			if v := c.ChildByFieldName("value"); v != nil {
				return b.convert(v)
			}
			return b.convert(firstNamed(c))
		}
		return b.convert(c)
	}
	return nil
}

func (b *builder) classBody(n *sitter.Node) *ast.ClassBody {
	body := at(&ast.ClassBody{}, rng(n))
	for _, c := range named(n) {
		r := rng(c)
		switch c.Kind() {
		case "method_definition":
			key, computed := b.propertyKey(c.ChildByFieldName("name"))
			kind := "method"
			switch {
			case !computed && b.text(c.ChildByFieldName("name")) == "constructor":
				kind = "constructor"
			case hasToken(c, "get"):
				kind = "get"
			case hasToken(c, "set"):
				kind = "set"
			}
			body.Body = append(body.Body, at(&ast.MethodDefinition{
				Key:        key,
				Value:      b.methodFunction(c),
				MethodKind: kind,
				Static:     hasToken(c, "static"),
				Computed:   computed,
			}, r))
		case "field_definition", "public_field_definition":
			keyNode := c.ChildByFieldName("property")
			if keyNode == nil {
				keyNode = c.ChildByFieldName("name")
			}
			key, computed := b.propertyKey(keyNode)
			prop := at(&ast.ClassProperty{
				Key:      key,
				Value:    b.convert(c.ChildByFieldName("value")),
				Static:   hasToken(c, "static"),
				Computed: computed,
			}, r)
			if t := c.ChildByFieldName("type"); t != nil {
				prop.TypeAnnotation = b.typeAnnotation(t)
			}
			body.Body = append(body.Body, prop)
		case "decorator":
		default:
			body.Body = append(body.Body, b.convert(c))
		}
	}
	return body
}

func (b *builder) jsxElement(n *sitter.Node) ast.Node {
	r := rng(n)
	if n.Kind() == "jsx_self_closing_element" {
		opening := b.jsxOpening(n, true)
		return at(&ast.JSXElement{OpeningElement: opening}, r)
	}

	open := n.ChildByFieldName("open_tag")
	closeTag := n.ChildByFieldName("close_tag")
	var children []ast.Node
	for _, c := range named(n) {
		if open != nil && c.StartByte() == open.StartByte() && c.Kind() == open.Kind() {
			continue
		}
		if closeTag != nil && c.StartByte() == closeTag.StartByte() && c.Kind() == closeTag.Kind() {
			continue
		}
		children = append(children, b.convert(c))
	}

	if open == nil || open.ChildByFieldName("name") == nil {
		return at(&ast.JSXFragment{Children: children}, r)
	}
	el := at(&ast.JSXElement{OpeningElement: b.jsxOpening(open, false), Children: children}, r)
	if closeTag != nil {
		el.ClosingElement = at(&ast.JSXClosingElement{Name: b.jsxName(closeTag.ChildByFieldName("name"))}, rng(closeTag))
	}
	return el
}

func (b *builder) jsxOpening(n *sitter.Node, selfClosing bool) *ast.JSXOpeningElement {
	nameNode := n.ChildByFieldName("name")
	opening := at(&ast.JSXOpeningElement{Name: b.jsxName(nameNode), SelfClosing: selfClosing}, rng(n))
	for _, c := range named(n) {
		if nameNode != nil && c.StartByte() == nameNode.StartByte() {
			continue
		}
		switch c.Kind() {
		case "jsx_attribute":
			opening.Attributes = append(opening.Attributes, b.jsxAttribute(c))
		case "jsx_expression":
			arg := firstNamed(c)
			if arg != nil && arg.Kind() == "spread_element" {
				arg = firstNamed(arg)
			}
			opening.Attributes = append(opening.Attributes, at(&ast.JSXSpreadAttribute{Argument: b.convert(arg)}, rng(c)))
		}
	}
	return opening
}

func (b *builder) jsxName(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	r := rng(n)
	switch n.Kind() {
	case "member_expression", "nested_identifier":
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		if obj == nil || prop == nil {
			parts := named(n)
			if len(parts) < 2 {
				break
			}
			obj, prop = parts[0], parts[len(parts)-1]
		}
		return at(&ast.JSXMemberExpression{
			Object:   b.jsxName(obj),
			Property: at(&ast.JSXIdentifier{Name: b.text(prop)}, rng(prop)),
		}, r)
	case "jsx_namespace_name":
		parts := named(n)
		if len(parts) == 2 {
			return at(&ast.JSXNamespacedName{
				Namespace: at(&ast.JSXIdentifier{Name: b.text(parts[0])}, rng(parts[0])),
				Name:      at(&ast.JSXIdentifier{Name: b.text(parts[1])}, rng(parts[1])),
			}, r)
		}
	}
	return at(&ast.JSXIdentifier{Name: b.text(n)}, r)
}

func (b *builder) jsxAttribute(n *sitter.Node) *ast.JSXAttribute {
	parts := named(n)
	attr := at(&ast.JSXAttribute{}, rng(n))
	if len(parts) == 0 {
		return attr
	}
	attr.Name = b.jsxName(parts[0])
	if len(parts) < 2 {
		return attr
	}
	v := parts[1]
	switch v.Kind() {
	case "string":
		raw := b.text(v)
		value := raw
		if len(raw) >= 2 {
			value = raw[1 : len(raw)-1]
		}
		attr.Value = at(&ast.Literal{LitKind: ast.LiteralString, Value: value, Raw: raw}, rng(v))
	case "jsx_expression":
		attr.Value = b.jsxExpression(v)
	default:
		attr.Value = b.convert(v)
	}
	return attr
}

func (b *builder) jsxExpression(n *sitter.Node) *ast.JSXExpressionContainer {
	return at(&ast.JSXExpressionContainer{Expression: b.convert(firstNamed(n))}, rng(n))
}

func (b *builder) typeAnnotation(n *sitter.Node) *ast.TypeAnnotation {
	if n == nil {
		return nil
	}
	inner := n
	if n.Kind() == "type_annotation" {
		inner = firstNamed(n)
	}
	return at(&ast.TypeAnnotation{TypeAnnotation: b.typeNode(inner)}, rng(n))
}

func (b *builder) typeNode(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	r := rng(n)
	switch n.Kind() {
	case "type_annotation":
		return b.typeNode(firstNamed(n))
	case "object_type":
		obj := at(&ast.ObjectTypeAnnotation{Exact: hasToken(n, "{|")}, r)
		for _, c := range named(n) {
			if c.Kind() == "property_signature" {
				key, _ := b.propertyKey(c.ChildByFieldName("name"))
				obj.Properties = append(obj.Properties, at(&ast.ObjectTypeProperty{
					Key:   key,
					Value: b.typeNode(c.ChildByFieldName("type")),
				}, rng(c)))
				continue
			}
			obj.Properties = append(obj.Properties, b.other(c))
		}
		return obj
	case "type_identifier":
		return at(&ast.GenericTypeAnnotation{ID: b.identifier(n)}, r)
	case "generic_type":
		g := at(&ast.GenericTypeAnnotation{}, r)
		if name := n.ChildByFieldName("name"); name != nil && name.Kind() == "type_identifier" {
			g.ID = b.identifier(name)
		}
		return g
	}
	return b.other(n)
}
