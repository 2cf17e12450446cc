package rules

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/scope"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleHookUseState = "hook-use-state"

var useStateMessage = message{
	id:       "useStateErrorMessage",
	template: "setState call is not destructured into value + setter pair",
}

type hookUseStateOptions struct {
	AllowDestructuredState bool `json:"allowDestructuredState"`
}

type HookUseStateRule struct{}

func (r *HookUseStateRule) ID() string       { return RuleHookUseState }
func (r *HookUseStateRule) Category() string { return CategoryStyle }
func (r *HookUseStateRule) Summary() string {
	return "Ensure destructuring and symmetric naming of useState hook value and setter variables"
}
func (r *HookUseStateRule) Description() string {
	return "The result of useState should be destructured into a value and a setter named after it, as in `const [color, setColor] = useState()`. With allowDestructuredState the value itself may be destructured as long as the setter starts with set."
}
func (r *HookUseStateRule) Link() string {
	return docsBaseURL + RuleHookUseState
}
func (r *HookUseStateRule) DefaultSeverity() validation.Severity {
	return validation.SeverityHint
}
func (r *HookUseStateRule) Messages() map[string]string {
	return messageTable(useStateMessage)
}

func (r *HookUseStateRule) ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"allowDestructuredState": map[string]any{"type": "boolean"},
		},
		"additionalProperties": false,
	}
}

func (r *HookUseStateRule) ConfigDefaults() map[string]any {
	return map[string]any{"allowDestructuredState": false}
}

func (r *HookUseStateRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	var opts hookUseStateOptions
	if err := ctx.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	pragma := ctx.Components.Detector().Pragma()

	return &linter.Visitor{
		CallExpression: func(n *ast.CallExpression) {
			if !isUseStateCall(ctx, n, pragma) {
				return
			}
			decl, ok := n.Parent().(*ast.VariableDeclarator)
			if !ok || decl.Init != n {
				ctx.Report(n, useStateMessage, nil)
				return
			}

			pattern, ok := decl.ID.(*ast.ArrayPattern)
			if !ok {
				ctx.Report(decl.ID, useStateMessage, nil)
				return
			}
			if isSymmetricStatePair(pattern, opts.AllowDestructuredState) {
				return
			}

			var value *ast.Identifier
			if len(pattern.Elements) > 0 {
				value, _ = pattern.Elements[0].(*ast.Identifier)
			}
			ctx.Report(pattern, useStateMessage, func(fx fix.Fixer) (*fix.Fix, error) {
				if value == nil || value.TypeAnnotation != nil {
					return nil, nil
				}
				setter := setterName(value.Name)
				if v := ctx.Scope.FindVariableByName(decl, setter); v != nil && !declaredBy(v, pattern) {
					return nil, nil
				}
				return fix.New("destructure into "+value.Name+" and "+setter,
					fx.ReplaceText(pattern, "["+value.Name+", "+setter+"]"))
			})
		},
	}, nil
}

// isUseStateCall matches `useState(...)` imported from react and
// `<pragma>.useState(...)` where the pragma is the react import, or is
// unbound in a file that imports from react.
func isUseStateCall(ctx *linter.Context, call *ast.CallExpression, pragma string) bool {
	switch callee := call.Callee.(type) {
	case *ast.MemberExpression:
		if !classify.IsMemberOf(callee, pragma, "useState") {
			return false
		}
		v := ctx.Scope.Resolve(callee.Object.(*ast.Identifier))
		if v == nil {
			return importsReact(ctx.File.Program)
		}
		for _, def := range v.Defs {
			switch def.(type) {
			case *ast.ImportDefaultSpecifier, *ast.ImportNamespaceSpecifier:
				decl, ok := def.Parent().(*ast.ImportDeclaration)
				return ok && decl.Source != nil && decl.Source.Value == reactModule
			}
		}
		return false
	case *ast.Identifier:
		v := ctx.Scope.Resolve(callee)
		if v == nil || len(v.Defs) == 0 {
			return false
		}
		spec, ok := v.Defs[0].(*ast.ImportSpecifier)
		if !ok || spec.Imported.Name != "useState" {
			return false
		}
		decl, ok := spec.Parent().(*ast.ImportDeclaration)
		return ok && decl.Source != nil && decl.Source.Value == reactModule
	}
	return false
}

func importsReact(program *ast.Program) bool {
	for _, stmt := range program.Body {
		decl, ok := stmt.(*ast.ImportDeclaration)
		if ok && decl.Source != nil && decl.Source.Value == reactModule {
			return true
		}
	}
	return false
}

func isSymmetricStatePair(pattern *ast.ArrayPattern, allowDestructured bool) bool {
	if len(pattern.Elements) != 2 {
		return false
	}
	setter, ok := pattern.Elements[1].(*ast.Identifier)
	if !ok {
		return false
	}
	switch value := pattern.Elements[0].(type) {
	case *ast.Identifier:
		return setter.Name == setterName(value.Name)
	case *ast.ObjectPattern, *ast.ArrayPattern:
		return allowDestructured && len(setter.Name) > 3 && strings.HasPrefix(setter.Name, "set")
	}
	return false
}

// setterName returns `setX` for a state value named `x`.
func setterName(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	return "set" + string(unicode.ToUpper(r)) + value[size:]
}

// declaredBy reports whether one of the elements of pattern declares v.
func declaredBy(v *scope.Variable, pattern *ast.ArrayPattern) bool {
	for _, id := range v.Identifiers {
		if slices.Contains(pattern.Elements, ast.Node(id)) {
			return true
		}
	}
	return false
}
