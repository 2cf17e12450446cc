// Package frontend turns JavaScript, JSX and TSX source into the ast.File the
// linter consumes, using the tree-sitter grammars.
package frontend

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/errors"
	"github.com/speakeasy-api/jsxlint/system"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

const (
	// ErrParse is returned when the source does not parse cleanly.
	ErrParse = errors.Error("parse error")
	// ErrUnsupportedLanguage is returned for an unknown Language value.
	ErrUnsupportedLanguage = errors.Error("unsupported language")
)

// Language selects the tree-sitter grammar.
type Language int

const (
	JavaScript Language = iota
	TypeScript
	TSX
)

func (l Language) String() string {
	switch l {
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// LanguageForPath picks the grammar from the file extension. Anything that is
// not .ts or .tsx is parsed as JavaScript with JSX.
func LanguageForPath(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return TypeScript
	case ".tsx":
		return TSX
	default:
		return JavaScript
	}
}

type options struct {
	language   *Language
	sourceType string
}

// Option configures Parse.
type Option func(o *options)

// WithLanguage overrides the grammar chosen from the file extension.
func WithLanguage(l Language) Option {
	return func(o *options) {
		o.language = &l
	}
}

// WithSourceType sets the program source type, "module" (the default) or
// "script".
func WithSourceType(sourceType string) Option {
	return func(o *options) {
		o.sourceType = sourceType
	}
}

func grammar(l Language) (*sitter.Language, error) {
	switch l {
	case JavaScript:
		return sitter.NewLanguage(tree_sitter_javascript.Language()), nil
	case TypeScript:
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()), nil
	case TSX:
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()), nil
	default:
		return nil, ErrUnsupportedLanguage.Wrapf("%s", l)
	}
}

// ParseFile reads path from fsys and parses it. A nil fsys reads from the
// host.
func ParseFile(fsys system.VirtualFS, path string, opts ...Option) (*ast.File, error) {
	src, err := system.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, src, opts...)
}

// Parse parses src and returns a linked file. Sources with syntax errors are
// rejected with ErrParse. JavaScript that fails to parse is retried with the
// TSX grammar, which accepts Flow-style parameter and return annotations.
func Parse(path string, src []byte, opts ...Option) (*ast.File, error) {
	o := options{sourceType: "module"}
	for _, opt := range opts {
		opt(&o)
	}
	lang := LanguageForPath(path)
	if o.language != nil {
		lang = *o.language
	}

	tree, err := parseTree(lang, src)
	if err != nil {
		return nil, err
	}
	if tree.RootNode().HasError() && lang == JavaScript {
		if retry, err := parseTree(TSX, src); err == nil {
			if !retry.RootNode().HasError() {
				tree.Close()
				tree = retry
			} else {
				retry.Close()
			}
		}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		file := ast.NewFile(path, src, nil)
		bad := firstError(root)
		line, col := file.Position(int(bad.StartByte()))
		return nil, ErrParse.Wrapf("%s:%d:%d: unexpected %q", path, line, col, snippet(bad.Utf8Text(src)))
	}

	b := &builder{src: src}
	program := b.program(root)
	program.SourceType = o.sourceType
	return ast.NewFile(path, src, program), nil
}

func parseTree(lang Language, src []byte) (*sitter.Tree, error) {
	language, err := grammar(lang)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set %s grammar: %w", lang, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, ErrParse.Wrapf("%s parser returned no tree", lang)
	}
	return tree, nil
}

// MustParse is Parse for tests and fixtures; it panics on error.
func MustParse(path string, src string, opts ...Option) *ast.File {
	f, err := Parse(path, []byte(src), opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && (c.HasError() || c.IsMissing()) {
			return firstError(c)
		}
	}
	return n
}

func snippet(s string) string {
	const maxLen = 20
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
