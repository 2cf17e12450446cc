package validation

import (
	"regexp"
	"strings"
)

// Message is the typed payload of a diagnostic. Each rule defines one
// implementation per message id; String renders it through the rule's
// template.
type Message interface {
	ID() string
	String() string
}

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Interpolate replaces `{{name}}` placeholders in template with values from
// data. Unknown placeholders are left untouched.
func Interpolate(template string, data map[string]string) string {
	if !strings.Contains(template, "{{") {
		return template
	}
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := data[name]; ok {
			return v
		}
		return m
	})
}

// Text is a message without placeholders.
type Text struct {
	MessageID string
	Template  string
}

func (t Text) ID() string     { return t.MessageID }
func (t Text) String() string { return t.Template }
