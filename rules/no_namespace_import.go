package rules

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/fix"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

const RuleNoNamespaceImport = "no-namespace-import"

var namespaceImportMessage = message{
	id:       "noNamespaceImport",
	template: "Namespace import is not allowed on React.",
}

type NoNamespaceImportRule struct{}

func (r *NoNamespaceImportRule) ID() string       { return RuleNoNamespaceImport }
func (r *NoNamespaceImportRule) Category() string { return CategoryStyle }
func (r *NoNamespaceImportRule) Summary() string {
	return "Enforce the default import of React over a namespace import"
}
func (r *NoNamespaceImportRule) Description() string {
	return "React is imported with its default export. `import * as React from 'react'` is reported and rewritten to `import React from 'react'`. Only ES modules are checked."
}
func (r *NoNamespaceImportRule) Link() string {
	return docsBaseURL + RuleNoNamespaceImport
}
func (r *NoNamespaceImportRule) DefaultSeverity() validation.Severity {
	return validation.SeverityHint
}
func (r *NoNamespaceImportRule) Messages() map[string]string {
	return messageTable(namespaceImportMessage)
}

func (r *NoNamespaceImportRule) Create(ctx *linter.Context) (*linter.Visitor, error) {
	if ctx.SourceType() != "module" {
		return nil, nil
	}
	return &linter.Visitor{
		ImportDeclaration: func(n *ast.ImportDeclaration) {
			if n.Source == nil || n.Source.Value != reactModule {
				return
			}
			for _, s := range n.Specifiers {
				ns, ok := s.(*ast.ImportNamespaceSpecifier)
				if !ok {
					continue
				}
				ctx.Report(ns, namespaceImportMessage, func(fx fix.Fixer) (*fix.Fix, error) {
					return fix.New("use the default import", fx.ReplaceText(ns, ns.Local.Name))
				})
			}
		},
	}, nil
}
