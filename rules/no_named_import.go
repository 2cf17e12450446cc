package rules

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/scope"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleNoNamedImport = "no-named-import"

const reactModule = "react"

const (
	importModeImport   = "import"
	importModeProperty = "property"
)

var (
	namedImportUseProperty = message{
		id:       "useProperty",
		template: "Don't import {{name}} from React. Use React.{{name}} to be consistent.",
	}
	namedImportUseImport = message{
		id:       "useImport",
		template: "Import {{name}} from React",
	}
	namedImportUpdateImport = message{
		id:       "updateImport",
		template: "Update the import from React to match the rewritten references",
	}
)

// reactName reports a React export used in the style the rule forbids.
type reactName struct {
	message
	Name string
}

func (m reactName) String() string {
	return m.render(map[string]string{"name": m.Name})
}

type noNamedImportOptions struct {
	Mode      string            `json:"mode"`
	Overrides map[string]string `json:"overrides"`
}

func (o noNamedImportOptions) modeFor(name string) string {
	if m, ok := o.Overrides[name]; ok {
		return m
	}
	return o.Mode
}

type NoNamedImportRule struct{}

func (r *NoNamedImportRule) ID() string       { return RuleNoNamedImport }
func (r *NoNamedImportRule) Category() string { return CategoryStyle }
func (r *NoNamedImportRule) Summary() string {
	return "Enforce a consistent style for accessing React exports"
}
func (r *NoNamedImportRule) Description() string {
	return `React exports can be imported by name or accessed as properties of the default import. In "import" mode React.x accesses are reported, in "property" mode named imports from react are reported. The overrides option picks the style per export name. Only ES modules are checked.`
}
func (r *NoNamedImportRule) Link() string {
	return docsBaseURL + RuleNoNamedImport
}
func (r *NoNamedImportRule) DefaultSeverity() validation.Severity {
	return validation.SeverityHint
}
func (r *NoNamedImportRule) Messages() map[string]string {
	return messageTable(namedImportUseProperty, namedImportUseImport, namedImportUpdateImport)
}

func (r *NoNamedImportRule) ConfigSchema() map[string]any {
	mode := map[string]any{"type": "string", "enum": []any{importModeProperty, importModeImport}}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mode": mode,
			"overrides": map[string]any{
				"type":                 "object",
				"additionalProperties": mode,
			},
		},
		"additionalProperties": false,
	}
}

func (r *NoNamedImportRule) ConfigDefaults() map[string]any {
	return map[string]any{"mode": importModeImport}
}

// namedSite is a named react import reported in property mode.
type namedSite struct {
	spec *ast.ImportSpecifier
	decl *ast.ImportDeclaration
}

func (r *NoNamedImportRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	if ctx.SourceType() != "module" {
		return nil, nil
	}
	var opts noNamedImportOptions
	if err := ctx.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	pragma := ctx.Components.Detector().Pragma()

	var (
		decls   []*ast.ImportDeclaration
		named   []namedSite
		members []*ast.MemberExpression
	)

	return &linter.Visitor{
		ImportDeclaration: func(n *ast.ImportDeclaration) {
			if n.Source == nil || n.Source.Value != reactModule {
				return
			}
			decls = append(decls, n)
			for _, s := range n.Specifiers {
				spec, ok := s.(*ast.ImportSpecifier)
				if ok && opts.modeFor(spec.Imported.Name) != importModeImport {
					named = append(named, namedSite{spec: spec, decl: n})
				}
			}
		},
		MemberExpression: func(n *ast.MemberExpression) {
			obj, ok := n.Object.(*ast.Identifier)
			if !ok || obj.Name != pragma || n.Computed {
				return
			}
			prop, ok := n.Property.(*ast.Identifier)
			if ok && opts.modeFor(prop.Name) != importModeProperty {
				members = append(members, n)
			}
		},
		ProgramExit: func() {
			p := &importPlanner{ctx: ctx, pragma: pragma}
			if len(decls) > 0 {
				p.plan = fix.NewImportPlan(decls[0])
			}
			p.report(named, members)
		},
	}, nil
}

// importPlanner turns the collected sites into diagnostics. Reference
// rewrites are only offered when the shared import declaration needs no
// change or can be rewritten to match; that rewrite is reported once, on the
// declaration.
type importPlanner struct {
	ctx    *linter.Context
	pragma string
	plan   *fix.ImportPlan
}

func (p *importPlanner) report(named []namedSite, members []*ast.MemberExpression) {
	namedEdits := make([][]fix.Edit, len(named))
	memberEdits := make([][]fix.Edit, len(members))

	var (
		planEdit fix.Edit
		planned  bool
		usable   bool
	)
	if p.ctx.FixesEnabled() && p.plan != nil {
		fx := fix.NewFixer(p.ctx.File.Source)
		for i, site := range named {
			if site.decl != p.plan.Declaration() {
				continue
			}
			object, bound := reactBinding(site.decl)
			if object == "" {
				object = p.pragma
			}
			if !p.objectAvailable(site.decl, object) {
				continue
			}
			if edits, ok := p.propertyEdits(fx, site.spec, object); ok {
				namedEdits[i] = edits
				p.plan.DropNamed(site.spec.Local.Name)
				if !bound {
					p.plan.EnsureDefault(object)
				}
			}
		}
		for i, m := range members {
			if edit, ok := p.importEdit(fx, m); ok {
				memberEdits[i] = []fix.Edit{edit}
			}
		}
		planEdit, planned = p.plan.Edit(p.ctx.File.Source)
		usable = planned || !p.plan.Changed()
	}

	for i, site := range named {
		name := site.spec.Imported.Name
		p.ctx.Report(site.spec, reactName{message: namedImportUseProperty, Name: name}, p.fixFor(usable, namedEdits[i], "use a member of the react import for "+name))
	}
	for i, m := range members {
		name := classify.MemberName(m)
		p.ctx.Report(m, reactName{message: namedImportUseImport, Name: name}, p.fixFor(usable, memberEdits[i], "import "+name+" from React"))
	}
	if planned {
		p.ctx.Report(p.plan.Declaration(), namedImportUpdateImport, func(fix.Fixer) (*fix.Fix, error) {
			return fix.New("rewrite the react import", planEdit)
		})
	}
}

func (p *importPlanner) fixFor(usable bool, edits []fix.Edit, desc string) fix.Func {
	if !usable || len(edits) == 0 {
		return nil
	}
	return func(fix.Fixer) (*fix.Fix, error) {
		return fix.New(desc, edits...)
	}
}

// objectAvailable reports whether object is free or already bound by decl,
// so `object.x` resolves to the react module everywhere.
func (p *importPlanner) objectAvailable(decl *ast.ImportDeclaration, object string) bool {
	v := p.ctx.Scope.FindVariableByName(decl, object)
	if v == nil {
		return true
	}
	return p.boundByDecl(v, decl)
}

func (p *importPlanner) boundByDecl(v *scope.Variable, decl *ast.ImportDeclaration) bool {
	for _, def := range v.Defs {
		if def.Parent() == decl {
			return true
		}
	}
	return false
}

// propertyEdits rewrites every use of a named import into a member access
// on object. It fails when a use cannot be rewritten in place.
func (p *importPlanner) propertyEdits(fx fix.Fixer, spec *ast.ImportSpecifier, object string) ([]fix.Edit, bool) {
	v := p.ctx.Scope.Declared(spec)
	if v == nil {
		return nil, false
	}
	replacement := object + "." + spec.Imported.Name

	var edits []fix.Edit
	for _, ref := range p.ctx.Scope.References(v) {
		id := ref.Identifier
		if ref.Write || !p.objectResolves(id, spec, object) {
			return nil, false
		}
		switch parent := id.Parent().(type) {
		case *ast.Property:
			if parent.Shorthand {
				edits = append(edits, fx.ReplaceText(parent, id.Name+": "+replacement))
				continue
			}
		case *ast.Other:
			if parent.Type == "export_specifier" || parent.Type == "export_clause" {
				return nil, false
			}
		}
		edits = append(edits, fx.ReplaceText(id, replacement))
	}

	ast.Inspect(p.ctx.File.Program, func(n ast.Node) bool {
		id, ok := n.(*ast.JSXIdentifier)
		if !ok || id.Name != spec.Local.Name || !isJSXNameReference(id) {
			return true
		}
		if p.ctx.Scope.FindVariableByName(id, id.Name) == v {
			edits = append(edits, fx.ReplaceText(id, replacement))
		}
		return true
	})
	return edits, true
}

// objectResolves reports whether object at n refers to the react import or
// to nothing at all.
func (p *importPlanner) objectResolves(n ast.Node, spec *ast.ImportSpecifier, object string) bool {
	v := p.ctx.Scope.FindVariableByName(n, object)
	return v == nil || p.boundByDecl(v, spec.Parent().(*ast.ImportDeclaration))
}

// importEdit rewrites `React.x` to the named import of x, adding it to the
// plan when it is not imported yet.
func (p *importPlanner) importEdit(fx fix.Fixer, m *ast.MemberExpression) (fix.Edit, bool) {
	if assign, ok := m.Parent().(*ast.AssignmentExpression); ok && assign.Left == m {
		return fix.Edit{}, false
	}
	obj := m.Object.(*ast.Identifier)
	if v := p.ctx.Scope.Resolve(obj); v != nil && !p.boundByDecl(v, p.plan.Declaration()) {
		return fix.Edit{}, false
	}

	name := classify.MemberName(m)
	local := name
	var existing *ast.ImportSpecifier
	for _, s := range p.plan.Declaration().Specifiers {
		if spec, ok := s.(*ast.ImportSpecifier); ok && spec.Imported.Name == name {
			existing = spec
			local = spec.Local.Name
			break
		}
	}

	if v := p.ctx.Scope.FindVariableByName(m, local); v != nil {
		if existing == nil || p.ctx.Scope.Declared(existing) != v {
			return fix.Edit{}, false
		}
	}
	if existing == nil {
		p.plan.UseNamed(name)
	}
	return fx.ReplaceText(m, local), true
}

// isJSXNameReference reports whether id names an element, directly or as
// the root of a member expression name.
func isJSXNameReference(id *ast.JSXIdentifier) bool {
	switch parent := id.Parent().(type) {
	case *ast.JSXOpeningElement:
		return parent.Name == id
	case *ast.JSXClosingElement:
		return parent.Name == id
	case *ast.JSXMemberExpression:
		return parent.Object == id
	}
	return false
}

// reactBinding returns the local name of the default or namespace
// specifier of decl. bound is false when decl has neither.
func reactBinding(decl *ast.ImportDeclaration) (local string, bound bool) {
	for _, s := range decl.Specifiers {
		switch spec := s.(type) {
		case *ast.ImportDefaultSpecifier:
			return spec.Local.Name, true
		case *ast.ImportNamespaceSpecifier:
			return spec.Local.Name, true
		}
	}
	return "", false
}
