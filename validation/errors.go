package validation

import (
	"fmt"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/fix"
)

// Error is a diagnostic reported by a rule. Line and Column are 1-based; zero
// means the position is unknown.
type Error struct {
	Rule     string
	Severity Severity
	Message  Message
	Range    ast.Range
	Line     int
	Column   int
	// Document is the path of the file the diagnostic belongs to.
	Document string
	// Fix is set when fixes were requested and the rule could produce one.
	Fix *fix.Fix
}

var _ error = (*Error)(nil)

// NewError builds a diagnostic for node n of file f.
func NewError(rule string, severity Severity, msg Message, f *ast.File, n ast.Node) *Error {
	e := &Error{Rule: rule, Severity: severity, Message: msg}
	if n != nil {
		e.Range = n.Range()
	}
	if f != nil {
		e.Document = f.Path
		e.Line, e.Column = f.Position(e.Range.Start)
	}
	return e
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] %s %s %s", e.GetLineNumber(), e.GetColumnNumber(), e.Severity, e.Rule, e.MessageText())
}

// MessageText returns the rendered message.
func (e *Error) MessageText() string {
	if e.Message == nil {
		return ""
	}
	return e.Message.String()
}

// MessageID returns the id of the message, or "" when there is none.
func (e *Error) MessageID() string {
	if e.Message == nil {
		return ""
	}
	return e.Message.ID()
}

// GetLineNumber returns the 1-based line, or -1 when unknown.
func (e *Error) GetLineNumber() int {
	if e.Line <= 0 {
		return -1
	}
	return e.Line
}

// GetColumnNumber returns the 1-based column, or -1 when unknown.
func (e *Error) GetColumnNumber() int {
	if e.Column <= 0 {
		return -1
	}
	return e.Column
}
