package scope

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
)

// ThisAccesses indexes every `this.<name>` access in the body of a class
// where `this` is the instance: member values and the arrow functions nested
// in them. Non-arrow functions and classes nested inside a member rebind
// `this` and are not searched. Destructuring `const {a, b} = this` counts as
// an access to each key; the recorded node is then nil.
//
// class must be a class declaration or expression.
func ThisAccesses(class ast.Node) map[string][]*ast.MemberExpression {
	out := make(map[string][]*ast.MemberExpression)
	c := classify.ClassOf(class)
	if c == nil || c.Body == nil {
		return out
	}
	for _, member := range c.Body.Body {
		switch m := member.(type) {
		case *ast.MethodDefinition:
			if m.Computed {
				collectThis(m.Key, out)
			}
			if m.Value != nil {
				collectThisInFunction(m.Value, out)
			}
		case *ast.ClassProperty:
			if m.Computed {
				collectThis(m.Key, out)
			}
			if fn, ok := m.Value.(*ast.FunctionExpression); ok {
				collectThisInFunction(fn, out)
			} else {
				collectThis(m.Value, out)
			}
		}
	}
	return out
}

func collectThisInFunction(fn ast.Node, out map[string][]*ast.MemberExpression) {
	f := classify.FunctionOf(fn)
	if f == nil {
		return
	}
	for _, p := range f.Params {
		collectThis(p, out)
	}
	collectThis(f.Body, out)
}

func collectThis(root ast.Node, out map[string][]*ast.MemberExpression) {
	ast.Inspect(root, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FunctionDeclaration, *ast.FunctionExpression, *ast.ClassDeclaration, *ast.ClassExpression:
			return false
		case *ast.MemberExpression:
			if _, ok := n.Object.(*ast.ThisExpression); ok {
				if name := classify.MemberName(n); name != "" {
					out[name] = append(out[name], n)
				}
			}
		case *ast.VariableDeclarator:
			if _, ok := n.Init.(*ast.ThisExpression); !ok {
				return true
			}
			if pat, ok := n.ID.(*ast.ObjectPattern); ok {
				for _, p := range pat.Properties {
					if prop, ok := p.(*ast.Property); ok {
						if name := classify.KeyName(prop.Key, prop.Computed); name != "" {
							out[name] = append(out[name], nil)
						}
					}
				}
			}
		}
		return true
	})
}
