package fix

import (
	"slices"
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
)

// ImportPlan collects the changes several diagnostics want to make to one
// import declaration and renders them as a single edit, so the declaration
// is rewritten once no matter how many reference sites were fixed.
type ImportPlan struct {
	decl *ast.ImportDeclaration

	ensureDefault string
	use           []string
	drop          map[string]bool
}

func NewImportPlan(decl *ast.ImportDeclaration) *ImportPlan {
	return &ImportPlan{decl: decl, drop: make(map[string]bool)}
}

// Declaration returns the planned import declaration.
func (p *ImportPlan) Declaration() *ast.ImportDeclaration {
	return p.decl
}

// UseNamed requests a named specifier importing name.
func (p *ImportPlan) UseNamed(name string) {
	if !slices.Contains(p.use, name) {
		p.use = append(p.use, name)
	}
}

// DropNamed requests removal of the named specifier bound to local.
func (p *ImportPlan) DropNamed(local string) {
	p.drop[local] = true
}

// EnsureDefault requests a default specifier named name when the
// declaration has none.
func (p *ImportPlan) EnsureDefault(name string) {
	p.ensureDefault = name
}

// Changed reports whether any change was requested.
func (p *ImportPlan) Changed() bool {
	return p.ensureDefault != "" || len(p.use) > 0 || len(p.drop) > 0
}

// Edit renders the rewritten declaration. It reports false when nothing
// changes or the result cannot be expressed, which is the case when named
// specifiers would have to sit next to a namespace specifier.
func (p *ImportPlan) Edit(src []byte) (Edit, bool) {
	if !p.Changed() || p.decl == nil || p.decl.Source == nil {
		return Edit{}, false
	}
	fx := NewFixer(src)

	var defaultName, namespace string
	var named []string
	present := make(map[string]bool)
	for _, s := range p.decl.Specifiers {
		switch spec := s.(type) {
		case *ast.ImportDefaultSpecifier:
			defaultName = spec.Local.Name
		case *ast.ImportNamespaceSpecifier:
			namespace = fx.NodeText(spec)
		case *ast.ImportSpecifier:
			if p.drop[spec.Local.Name] {
				continue
			}
			if spec.Imported.Name == spec.Local.Name {
				present[spec.Local.Name] = true
			}
			named = append(named, fx.NodeText(spec))
		}
	}
	for _, name := range p.use {
		if !present[name] {
			named = append(named, name)
			present[name] = true
		}
	}
	if defaultName == "" {
		defaultName = p.ensureDefault
	}
	if namespace != "" && len(named) > 0 {
		return Edit{}, false
	}

	var clause []string
	if defaultName != "" {
		clause = append(clause, defaultName)
	}
	if namespace != "" {
		clause = append(clause, namespace)
	}
	if len(named) > 0 {
		clause = append(clause, "{ "+strings.Join(named, ", ")+" }")
	}

	var sb strings.Builder
	sb.WriteString("import ")
	if len(clause) > 0 {
		sb.WriteString(strings.Join(clause, ", "))
		sb.WriteString(" from ")
	}
	sb.WriteString(p.decl.Source.Raw)
	if strings.HasSuffix(strings.TrimSpace(fx.NodeText(p.decl)), ";") {
		sb.WriteString(";")
	}

	text := sb.String()
	if text == fx.NodeText(p.decl) {
		return Edit{}, false
	}
	return fx.ReplaceText(p.decl, text), true
}
