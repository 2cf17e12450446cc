// Package scope answers binding and reference questions about a file: which
// variable a node declares, where a variable is read or written, and what an
// identifier resolves to.
//
// A Graph is normally supplied by the host alongside the syntax tree. Analyze
// builds one for hosts that do not have their own scope manager.
package scope

import (
	"slices"

	"github.com/speakeasy-api/jsxlint/ast"
)

// Kind is the kind of lexical scope.
type Kind int

const (
	KindModule Kind = iota
	KindScript
	KindFunction
	KindBlock
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindScript:
		return "script"
	case KindFunction:
		return "function"
	case KindBlock:
		return "block"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// Scope is one lexical scope.
type Scope struct {
	Kind     Kind
	Node     ast.Node
	Upper    *Scope
	Children []*Scope

	variables map[string]*Variable
	order     []*Variable
}

// Variables returns the variables declared directly in s, in declaration
// order.
func (s *Scope) Variables() []*Variable {
	return slices.Clone(s.order)
}

// Lookup returns the variable named name declared directly in s.
func (s *Scope) Lookup(name string) *Variable {
	return s.variables[name]
}

// Variable is a named binding and its use sites.
type Variable struct {
	Name string
	// Identifiers are the declaration sites.
	Identifiers []*ast.Identifier
	// Defs are the declaring nodes: an import specifier, a variable
	// declarator, a function or class, or the function owning a parameter.
	Defs       []ast.Node
	References []*Reference
	Scope      *Scope
}

// Reference is one read or write of a variable.
type Reference struct {
	Identifier *ast.Identifier
	Write      bool
	From       *Scope
	Resolved   *Variable
}

// Graph indexes the scopes of one file.
type Graph struct {
	Root *Scope

	scopes   map[ast.Node]*Scope
	declared map[ast.Node][]*Variable
	refs     map[*ast.Identifier]*Reference
	// Through holds references that did not resolve to any declaration.
	Through []*Reference
}

func newGraph() *Graph {
	return &Graph{
		scopes:   make(map[ast.Node]*Scope),
		declared: make(map[ast.Node][]*Variable),
		refs:     make(map[*ast.Identifier]*Reference),
	}
}

// Declared returns the first variable declared by node, or nil. node may be a
// declaring node (see Variable.Defs) or a declaration identifier.
func (g *Graph) Declared(node ast.Node) *Variable {
	vars := g.DeclaredVariables(node)
	if len(vars) == 0 {
		return nil
	}
	return vars[0]
}

// DeclaredVariables returns every variable declared by node, in source order.
func (g *Graph) DeclaredVariables(node ast.Node) []*Variable {
	if g == nil || node == nil {
		return nil
	}
	return g.declared[node]
}

// References returns the reads and writes of v in source order. It never
// returns nil.
func (g *Graph) References(v *Variable) []*Reference {
	if v == nil {
		return []*Reference{}
	}
	return slices.Clone(v.References)
}

// Reference returns the reference recorded for id, or nil when id is not in
// a reference position.
func (g *Graph) Reference(id *ast.Identifier) *Reference {
	if g == nil {
		return nil
	}
	return g.refs[id]
}

// Resolve returns the variable id refers to, or nil if it is a global or
// undeclared name. Declaration identifiers resolve to their own variable.
func (g *Graph) Resolve(id *ast.Identifier) *Variable {
	if g == nil || id == nil {
		return nil
	}
	if ref, ok := g.refs[id]; ok {
		return ref.Resolved
	}
	return g.Declared(id)
}

// ScopeOf returns the innermost scope containing node.
func (g *Graph) ScopeOf(node ast.Node) *Scope {
	if g == nil {
		return nil
	}
	for n := node; n != nil; n = n.Parent() {
		if s, ok := g.scopes[n]; ok {
			return s
		}
	}
	return g.Root
}

// FindVariableByName looks name up starting at the scope containing from and
// walking outwards.
func (g *Graph) FindVariableByName(from ast.Node, name string) *Variable {
	for s := g.ScopeOf(from); s != nil; s = s.Upper {
		if v := s.Lookup(name); v != nil {
			return v
		}
	}
	return nil
}
