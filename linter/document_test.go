package linter_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/frontend"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/scope"
	"github.com/stretchr/testify/assert"
)

func TestNewDocumentInfo(t *testing.T) {
	t.Parallel()

	file := frontend.MustParse("src/app.jsx", "const a = 1;")
	info := linter.NewDocumentInfo(file)
	assert.Same(t, file, info.File)
	assert.Nil(t, info.Scope)
	assert.Equal(t, "src/app.jsx", info.Location())

	var empty *linter.DocumentInfo
	assert.Empty(t, empty.Location())
}

func TestNewDocumentInfoWithScope(t *testing.T) {
	t.Parallel()

	file := frontend.MustParse("a.js", "const a = 1;")
	graph := scope.Analyze(file.Program)
	info := linter.NewDocumentInfoWithScope(file, graph)
	assert.Same(t, graph, info.Scope)
}
