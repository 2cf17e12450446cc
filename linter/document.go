package linter

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/scope"
)

// DocumentInfo contains a parsed file and its metadata for linting
type DocumentInfo struct {
	// File is the parsed source file to lint
	File *ast.File

	// Scope is the scope graph supplied by the host. When nil the linter
	// analyzes the file itself.
	Scope *scope.Graph
}

// NewDocumentInfo creates a new DocumentInfo for the given file
func NewDocumentInfo(file *ast.File) *DocumentInfo {
	return &DocumentInfo{File: file}
}

// NewDocumentInfoWithScope creates a new DocumentInfo with a pre-computed scope graph
func NewDocumentInfoWithScope(file *ast.File, graph *scope.Graph) *DocumentInfo {
	return &DocumentInfo{File: file, Scope: graph}
}

// Location returns the path of the file, or "" when there is none.
func (d *DocumentInfo) Location() string {
	if d == nil || d.File == nil {
		return ""
	}
	return d.File.Path
}

// LintOptions contains runtime options for linting
type LintOptions struct {
	// Fix materializes the fix of every fixable diagnostic.
	Fix bool

	// Concurrency bounds the number of files LintFiles analyzes at once.
	// Zero or less means one file per available CPU.
	Concurrency int
}
