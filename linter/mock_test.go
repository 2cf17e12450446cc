package linter_test

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

type mockRule struct {
	id              string
	category        string
	defaultSeverity validation.Severity
	create          func(ctx *linter.Context) (*linter.Visitor, error)
}

func (r *mockRule) ID() string                           { return r.id }
func (r *mockRule) Category() string                     { return r.category }
func (r *mockRule) Description() string                  { return "mock rule " + r.id }
func (r *mockRule) Summary() string                      { return r.id }
func (r *mockRule) Link() string                         { return "" }
func (r *mockRule) DefaultSeverity() validation.Severity { return r.defaultSeverity }
func (r *mockRule) Messages() map[string]string          { return map[string]string{"found": "found"} }

func (r *mockRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	if r.create == nil {
		return &linter.Visitor{}, nil
	}
	return r.create(ctx)
}

type configurableRule struct {
	mockRule
	schema   map[string]any
	defaults map[string]any
}

func (r *configurableRule) ConfigSchema() map[string]any   { return r.schema }
func (r *configurableRule) ConfigDefaults() map[string]any { return r.defaults }

func found(text string) validation.Message {
	return validation.Text{MessageID: "found", Template: text}
}

// identifierRule reports every identifier with the given name.
func identifierRule(id, category string, sev validation.Severity, name string) *mockRule {
	return &mockRule{
		id:              id,
		category:        category,
		defaultSeverity: sev,
		create: func(ctx *linter.Context) (*linter.Visitor, error) {
			return &linter.Visitor{
				Identifier: func(n *ast.Identifier) {
					if n.Name == name {
						ctx.Report(n, found("found "+name), nil)
					}
				},
			}, nil
		},
	}
}
