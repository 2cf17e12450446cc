package fix

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/jsxlint/validation"
)

// TerminalPrompter implements Prompter using stdin/stdout for terminal interaction.
type TerminalPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

var _ validation.Prompter = (*TerminalPrompter)(nil)

// NewTerminalPrompter creates a new terminal-based prompter.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// writef writes formatted output to the prompter's writer, ignoring write errors
// since terminal output failures are not recoverable.
func (p *TerminalPrompter) writef(format string, args ...any) {
	_, _ = fmt.Fprintf(p.writer, format, args...)
}

// PromptFix shows the finding with a line diff of its fix and reads one of
// y (apply), n or s (skip) and q (stop fixing).
func (p *TerminalPrompter) PromptFix(finding *validation.Error, before, after string) error {
	// Display context about the error
	location := fmt.Sprintf("%d:%d", finding.GetLineNumber(), finding.GetColumnNumber())
	if finding.Document != "" {
		location = finding.Document + ":" + location
	}
	p.writef("\n%s %s %s\n", location, finding.Rule, finding.MessageText())
	if finding.Fix != nil {
		p.writef("  Fix: %s\n", finding.Fix.Description)
	}
	for _, line := range strings.Split(before, "\n") {
		p.writef("  - %s\n", line)
	}
	for _, line := range strings.Split(after, "\n") {
		p.writef("  + %s\n", line)
	}

	for {
		p.writef("  Apply fix? [y/n/q] (default: y) > ")

		line, err := p.reader.ReadString('\n')
		if err != nil && (line == "" || err != io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return nil
		case "n", "no", "s", "skip":
			return validation.ErrSkipFix
		case "q", "quit":
			return validation.ErrAbortFixes
		default:
			p.writef("  Invalid choice: %s (enter y, n or q)\n", strings.TrimSpace(line))
		}
	}
}

func (p *TerminalPrompter) Confirm(message string) (bool, error) {
	p.writef("%s [y/n]: ", message)

	line, err := p.reader.ReadString('\n')
	if err != nil && (line == "" || err != io.EOF) {
		return false, fmt.Errorf("reading input: %w", err)
	}
	line = strings.ToLower(strings.TrimSpace(line))

	return line == "y" || line == "yes", nil
}
