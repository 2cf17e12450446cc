package rules

import (
	"slices"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/components"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleDestructuringAssignment = "destructuring-assignment"

var (
	destructUseAssignment = message{
		id:       "useDestructAssignment",
		template: "Must use destructuring {{type}} assignment",
	}
	destructNoAssignment = message{
		id:       "noDestructAssignment",
		template: "Must never use destructuring {{type}} assignment",
	}
	destructNoPropsInSFCArg = message{
		id:       "noDestructPropsInSFCArg",
		template: "Must never use destructuring props assignment in SFC argument",
	}
	destructNoContextInSFCArg = message{
		id:       "noDestructContextInSFCArg",
		template: "Must never use destructuring context assignment in SFC argument",
	}
)

// destructuringKind names the reserved object (props, state or context) a
// diagnostic is about.
type destructuringKind struct {
	message
	Type string
}

func (m destructuringKind) String() string {
	return m.render(map[string]string{"type": m.Type})
}

var reservedComponentObjects = []string{"props", "state", "context"}

type destructuringOptions struct {
	Mode              string `json:"mode"`
	IgnoreClassFields bool   `json:"ignoreClassFields"`
}

type DestructuringAssignmentRule struct{}

func (r *DestructuringAssignmentRule) ID() string       { return RuleDestructuringAssignment }
func (r *DestructuringAssignmentRule) Category() string { return CategoryStyle }
func (r *DestructuringAssignmentRule) Summary() string {
	return "Enforce consistent usage of destructuring assignment of props, state, and context"
}
func (r *DestructuringAssignmentRule) Description() string {
	return `In "always" mode, accessing props, state or context through a member expression inside a component is reported. In "never" mode, destructuring them is reported, including destructured parameters of function components. ignoreClassFields skips accesses inside class field initializers.`
}
func (r *DestructuringAssignmentRule) Link() string {
	return docsBaseURL + RuleDestructuringAssignment
}
func (r *DestructuringAssignmentRule) DefaultSeverity() validation.Severity {
	return validation.SeverityHint
}
func (r *DestructuringAssignmentRule) Messages() map[string]string {
	return messageTable(destructUseAssignment, destructNoAssignment, destructNoPropsInSFCArg, destructNoContextInSFCArg)
}

func (r *DestructuringAssignmentRule) ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mode":              map[string]any{"type": "string", "enum": []any{"always", "never"}},
			"ignoreClassFields": map[string]any{"type": "boolean"},
		},
		"additionalProperties": false,
	}
}

func (r *DestructuringAssignmentRule) ConfigDefaults() map[string]any {
	return map[string]any{"mode": "always", "ignoreClassFields": false}
}

func (r *DestructuringAssignmentRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	var opts destructuringOptions
	if err := ctx.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	always := opts.Mode != "never"

	checkSFC := func(fn ast.Node) {
		if always {
			return
		}
		d := ctx.Components.Enclosing(fn)
		if d == nil || d.Node != fn || d.Kind != components.FunctionComponent {
			return
		}
		params := classify.FunctionOf(fn).Params
		if len(params) > 0 && isObjectPatternParam(params[0]) {
			ctx.Report(params[0], destructNoPropsInSFCArg, nil)
		}
		if len(params) > 1 && isObjectPatternParam(params[1]) {
			ctx.Report(params[1], destructNoContextInSFCArg, nil)
		}
	}

	return &linter.Visitor{
		FunctionDeclaration:     func(n *ast.FunctionDeclaration) { checkSFC(n) },
		FunctionExpression:      func(n *ast.FunctionExpression) { checkSFC(n) },
		ArrowFunctionExpression: func(n *ast.ArrowFunctionExpression) { checkSFC(n) },

		MemberExpression: func(n *ast.MemberExpression) {
			if !always || isAssignmentTarget(n) {
				return
			}
			d := ctx.Components.Enclosing(n)
			if d == nil {
				return
			}
			switch d.Kind {
			case components.FunctionComponent:
				if kind := sfcParamKind(ctx, d, n.Object); kind != "" {
					ctx.Report(n, destructuringKind{message: destructUseAssignment, Type: kind}, nil)
				}
			case components.ClassComponent, components.FactoryComponent:
				obj, ok := n.Object.(*ast.MemberExpression)
				if !ok || !classify.IsThisMember(obj, "") {
					return
				}
				kind := classify.MemberName(obj)
				if !slices.Contains(reservedComponentObjects, kind) {
					return
				}
				if opts.IgnoreClassFields && inClassField(n) {
					return
				}
				ctx.Report(n, destructuringKind{message: destructUseAssignment, Type: kind}, nil)
			}
		},

		VariableDeclarator: func(n *ast.VariableDeclarator) {
			if always || !classify.IsDestructuringOfReservedName(n, reservedComponentObjects...) {
				return
			}
			d := ctx.Components.Enclosing(n)
			if d == nil {
				return
			}
			var kind string
			switch init := n.Init.(type) {
			case *ast.MemberExpression:
				if d.Kind == components.ClassComponent || d.Kind == components.FactoryComponent {
					kind = classify.MemberName(init)
				}
			case *ast.Identifier:
				if d.Kind == components.FunctionComponent {
					kind = sfcParamKind(ctx, d, init)
				}
			}
			if kind != "" {
				ctx.Report(n, destructuringKind{message: destructNoAssignment, Type: kind}, nil)
			}
		},
	}, nil
}

// sfcParamKind returns "props" or "context" when n is a reference to the
// first or second parameter of the function component d.
func sfcParamKind(ctx *linter.Context, d *components.Descriptor, n ast.Node) string {
	id, ok := n.(*ast.Identifier)
	if !ok {
		return ""
	}
	fn := classify.FunctionOf(d.Node)
	if fn == nil {
		return ""
	}
	v := ctx.Scope.Resolve(id)
	if v == nil || len(v.Identifiers) == 0 {
		return ""
	}
	for i, kind := range []string{"props", "context"} {
		if i < len(fn.Params) && paramIdentifier(fn.Params[i]) == v.Identifiers[0] {
			return kind
		}
	}
	return ""
}

func paramIdentifier(p ast.Node) *ast.Identifier {
	if def, ok := p.(*ast.AssignmentPattern); ok {
		p = def.Left
	}
	id, _ := p.(*ast.Identifier)
	return id
}

func isObjectPatternParam(p ast.Node) bool {
	if def, ok := p.(*ast.AssignmentPattern); ok {
		p = def.Left
	}
	_, ok := p.(*ast.ObjectPattern)
	return ok
}

func isAssignmentTarget(n ast.Node) bool {
	assign, ok := n.Parent().(*ast.AssignmentExpression)
	return ok && assign.Left == n
}

// inClassField reports whether n sits in the initializer of a class field
// rather than inside a method.
func inClassField(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.(type) {
		case *ast.ClassProperty:
			return true
		case *ast.MethodDefinition, *ast.ClassBody:
			return false
		}
	}
	return false
}
