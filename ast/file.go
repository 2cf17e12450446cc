package ast

import (
	"sort"
	"unicode/utf8"
)

// File is a parsed source file.
type File struct {
	Path    string
	Source  []byte
	Program *Program

	lines []int
}

// NewFile links program and indexes the line starts of source.
func NewFile(path string, source []byte, program *Program) *File {
	if program != nil {
		Link(program)
	}
	lines := []int{0}
	for i, b := range source {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &File{Path: path, Source: source, Program: program, lines: lines}
}

// Position converts a byte offset into a 1-based line and column. Columns
// count runes, not bytes.
func (f *File) Position(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Source) {
		offset = len(f.Source)
	}
	idx := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	start := f.lines[idx]
	return idx + 1, utf8.RuneCount(f.Source[start:offset]) + 1
}

// Text returns the source text covered by n.
func (f *File) Text(n Node) string {
	return f.Slice(n.Range())
}

// Slice returns the source text covered by r, clamped to the file.
func (f *File) Slice(r Range) string {
	start, end := max(r.Start, 0), min(r.End, len(f.Source))
	if start >= end {
		return ""
	}
	return string(f.Source[start:end])
}
