package fix

import "github.com/speakeasy-api/jsxlint/ast"

// Fixer builds edits against one source file.
type Fixer struct {
	src []byte
}

func NewFixer(src []byte) Fixer {
	return Fixer{src: src}
}

// Text returns the source covered by r, clamped to the file.
func (fx Fixer) Text(r ast.Range) string {
	start, end := max(r.Start, 0), min(r.End, len(fx.src))
	if start >= end {
		return ""
	}
	return string(fx.src[start:end])
}

// NodeText returns the source of n.
func (fx Fixer) NodeText(n ast.Node) string {
	return fx.Text(n.Range())
}

func (fx Fixer) Remove(n ast.Node) Edit {
	return fx.RemoveRange(n.Range())
}

func (fx Fixer) RemoveRange(r ast.Range) Edit {
	return Edit{Range: r}
}

func (fx Fixer) ReplaceText(n ast.Node, text string) Edit {
	return fx.ReplaceRange(n.Range(), text)
}

func (fx Fixer) ReplaceRange(r ast.Range, text string) Edit {
	return Edit{Range: r, Text: text}
}

func (fx Fixer) InsertTextBefore(n ast.Node, text string) Edit {
	return fx.InsertTextAt(n.Range().Start, text)
}

func (fx Fixer) InsertTextAfter(n ast.Node, text string) Edit {
	return fx.InsertTextAt(n.Range().End, text)
}

func (fx Fixer) InsertTextAt(offset int, text string) Edit {
	return Edit{Range: ast.Range{Start: offset, End: offset}, Text: text}
}
