package scope

import (
	"slices"

	"github.com/speakeasy-api/jsxlint/ast"
)

// Analyze builds the scope graph of a linked program. Declarations are
// collected in one pass and references are resolved afterwards, so hoisted
// functions and variables resolve regardless of position.
func Analyze(program *ast.Program) *Graph {
	g := newGraph()
	kind := KindScript
	if program.SourceType == "module" {
		kind = KindModule
	}
	a := &analyzer{graph: g}
	g.Root = a.push(nil, kind, program)
	for _, stmt := range program.Body {
		a.visit(stmt, g.Root)
	}
	a.resolve()
	return g
}

type analyzer struct {
	graph *Graph
	refs  []*Reference
}

func (a *analyzer) push(upper *Scope, kind Kind, node ast.Node) *Scope {
	s := &Scope{Kind: kind, Node: node, Upper: upper, variables: make(map[string]*Variable)}
	if upper != nil {
		upper.Children = append(upper.Children, s)
	}
	a.graph.scopes[node] = s
	return s
}

func (a *analyzer) declare(s *Scope, id *ast.Identifier, def ast.Node) {
	if id == nil {
		return
	}
	v, ok := s.variables[id.Name]
	if !ok {
		v = &Variable{Name: id.Name, Scope: s}
		s.variables[id.Name] = v
		s.order = append(s.order, v)
	}
	v.Identifiers = append(v.Identifiers, id)
	if !slices.Contains(v.Defs, def) {
		v.Defs = append(v.Defs, def)
	}
	a.graph.declared[id] = append(a.graph.declared[id], v)
	if !slices.Contains(a.graph.declared[def], v) {
		a.graph.declared[def] = append(a.graph.declared[def], v)
	}
}

func (a *analyzer) reference(id *ast.Identifier, s *Scope, write bool) {
	ref := &Reference{Identifier: id, Write: write, From: s}
	a.refs = append(a.refs, ref)
	a.graph.refs[id] = ref
}

func (a *analyzer) resolve() {
	for _, ref := range a.refs {
		for s := ref.From; s != nil; s = s.Upper {
			if v, ok := s.variables[ref.Identifier.Name]; ok {
				ref.Resolved = v
				v.References = append(v.References, ref)
				break
			}
		}
		if ref.Resolved == nil {
			a.graph.Through = append(a.graph.Through, ref)
		}
	}
}

// varScope returns the nearest function or top-level scope.
func varScope(s *Scope) *Scope {
	for ; s.Upper != nil; s = s.Upper {
		if s.Kind == KindFunction {
			return s
		}
	}
	return s
}

func (a *analyzer) visit(n ast.Node, s *Scope) {
	if ast.IsNil(n) {
		return
	}
	switch n := n.(type) {
	case *ast.ImportDeclaration:
		for _, spec := range n.Specifiers {
			switch spec := spec.(type) {
			case *ast.ImportSpecifier:
				a.declare(s, spec.Local, spec)
			case *ast.ImportDefaultSpecifier:
				a.declare(s, spec.Local, spec)
			case *ast.ImportNamespaceSpecifier:
				a.declare(s, spec.Local, spec)
			}
		}
	case *ast.VariableDeclaration:
		target := s
		if n.DeclKind == "var" {
			target = varScope(s)
		}
		for _, d := range n.Declarations {
			a.bindPattern(d.ID, target, d)
			a.visitPatternExpressions(d.ID, s)
			a.visit(d.Init, s)
		}
	case *ast.FunctionDeclaration:
		a.declare(s, n.ID, n)
		fs := a.push(s, KindFunction, n)
		a.visitFunction(n, &n.Function, fs)
	case *ast.FunctionExpression:
		fs := a.push(s, KindFunction, n)
		a.declare(fs, n.ID, n)
		a.visitFunction(n, &n.Function, fs)
	case *ast.ArrowFunctionExpression:
		fs := a.push(s, KindFunction, n)
		a.visitFunction(n, &n.Function, fs)
	case *ast.ClassDeclaration:
		a.declare(s, n.ID, n)
		a.visit(n.SuperClass, s)
		cs := a.push(s, KindClass, n)
		a.visitClassBody(n.Body, cs)
	case *ast.ClassExpression:
		a.visit(n.SuperClass, s)
		cs := a.push(s, KindClass, n)
		a.declare(cs, n.ID, n)
		a.visitClassBody(n.Body, cs)
	case *ast.BlockStatement:
		bs := a.push(s, KindBlock, n)
		for _, stmt := range n.Body {
			a.visit(stmt, bs)
		}
	case *ast.TypeAlias:
		a.declare(s, n.ID, n)
		a.visit(n.Right, s)
	case *ast.Identifier:
		a.reference(n, s, false)
		a.visit(n.TypeAnnotation, s)
	case *ast.MemberExpression:
		a.visit(n.Object, s)
		if n.Computed {
			a.visit(n.Property, s)
		}
	case *ast.Property:
		if n.Computed {
			a.visit(n.Key, s)
		}
		a.visit(n.Value, s)
	case *ast.AssignmentExpression:
		a.visitAssignTarget(n.Left, s)
		a.visit(n.Right, s)
	case *ast.JSXAttribute:
		a.visit(n.Value, s)
	case *ast.ObjectTypeProperty:
		a.visit(n.Value, s)
	case *ast.Other:
		if n.Type == "catch_clause" {
			a.visitCatch(n, s)
			return
		}
		a.visitChildren(n, s)
	default:
		a.visitChildren(n, s)
	}
}

func (a *analyzer) visitChildren(n ast.Node, s *Scope) {
	for _, c := range ast.Children(n) {
		a.visit(c, s)
	}
}

// visitCatch handles `catch (param) { ... }`: the first child is the
// parameter when the clause has two children.
func (a *analyzer) visitCatch(n *ast.Other, s *Scope) {
	cs := a.push(s, KindBlock, n)
	children := n.Children
	if len(children) == 2 {
		a.bindPattern(children[0], cs, n)
		children = children[1:]
	}
	for _, c := range children {
		if block, ok := c.(*ast.BlockStatement); ok {
			for _, stmt := range block.Body {
				a.visit(stmt, cs)
			}
			continue
		}
		a.visit(c, cs)
	}
}

func (a *analyzer) visitFunction(fn ast.Node, f *ast.Function, fs *Scope) {
	for _, p := range f.Params {
		a.bindPattern(p, fs, fn)
		a.visitPatternExpressions(p, fs)
	}
	if body, ok := f.Body.(*ast.BlockStatement); ok {
		for _, stmt := range body.Body {
			a.visit(stmt, fs)
		}
		return
	}
	a.visit(f.Body, fs)
}

func (a *analyzer) visitClassBody(body *ast.ClassBody, cs *Scope) {
	if body == nil {
		return
	}
	for _, m := range body.Body {
		switch m := m.(type) {
		case *ast.MethodDefinition:
			if m.Computed {
				a.visit(m.Key, cs)
			}
			a.visit(m.Value, cs)
		case *ast.ClassProperty:
			if m.Computed {
				a.visit(m.Key, cs)
			}
			a.visit(m.TypeAnnotation, cs)
			a.visit(m.Value, cs)
		default:
			a.visit(m, cs)
		}
	}
}

// bindPattern declares every identifier bound by a declaration pattern.
func (a *analyzer) bindPattern(p ast.Node, s *Scope, def ast.Node) {
	switch p := p.(type) {
	case *ast.Identifier:
		a.declare(s, p, def)
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			switch prop := prop.(type) {
			case *ast.Property:
				a.bindPattern(prop.Value, s, def)
			case *ast.RestElement:
				a.bindPattern(prop.Argument, s, def)
			}
		}
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			a.bindPattern(el, s, def)
		}
	case *ast.AssignmentPattern:
		a.bindPattern(p.Left, s, def)
	case *ast.RestElement:
		a.bindPattern(p.Argument, s, def)
	}
}

// visitPatternExpressions visits the expressions embedded in a pattern:
// default values, computed keys and type annotations.
func (a *analyzer) visitPatternExpressions(p ast.Node, s *Scope) {
	switch p := p.(type) {
	case *ast.Identifier:
		a.visit(p.TypeAnnotation, s)
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			switch prop := prop.(type) {
			case *ast.Property:
				if prop.Computed {
					a.visit(prop.Key, s)
				}
				a.visitPatternExpressions(prop.Value, s)
			case *ast.RestElement:
				a.visitPatternExpressions(prop.Argument, s)
			}
		}
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			a.visitPatternExpressions(el, s)
		}
	case *ast.AssignmentPattern:
		a.visitPatternExpressions(p.Left, s)
		a.visit(p.Right, s)
	case *ast.RestElement:
		a.visitPatternExpressions(p.Argument, s)
	}
}

// visitAssignTarget records writes for identifiers on the left of an
// assignment.
func (a *analyzer) visitAssignTarget(p ast.Node, s *Scope) {
	switch p := p.(type) {
	case *ast.Identifier:
		a.reference(p, s, true)
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			switch prop := prop.(type) {
			case *ast.Property:
				if prop.Computed {
					a.visit(prop.Key, s)
				}
				a.visitAssignTarget(prop.Value, s)
			case *ast.RestElement:
				a.visitAssignTarget(prop.Argument, s)
			}
		}
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			a.visitAssignTarget(el, s)
		}
	case *ast.AssignmentPattern:
		a.visitAssignTarget(p.Left, s)
		a.visit(p.Right, s)
	case *ast.RestElement:
		a.visitAssignTarget(p.Argument, s)
	default:
		a.visit(p, s)
	}
}
