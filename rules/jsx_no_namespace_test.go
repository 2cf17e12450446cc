package rules_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/internal/testutils"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/stretchr/testify/assert"
)

func TestJSXNoNamespaceRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{name: "plain element", src: `<testcomponent />`},
		{name: "member element", src: `<object.TestComponent />`},
		{name: "namespaced attribute is fine", src: `<svg xlink:href="#a" />`},
		{
			name:     "namespaced element",
			src:      `<ns:testcomponent />`,
			expected: []string{"[1:1] error jsx-no-namespace JSX component ns:testcomponent must not be in a namespace as React does not support them"},
		},
		{
			name:     "namespaced component with children",
			src:      `const x = <Ns:TestComponent><a /></Ns:TestComponent>;`,
			expected: []string{"[1:11] error jsx-no-namespace JSX component Ns:TestComponent must not be in a namespace as React does not support them"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.JSXNoNamespaceRule{}, tt.src)
			if len(tt.expected) == 0 {
				assert.Empty(t, res.Strings())
				return
			}
			assert.Equal(t, tt.expected, res.Strings())
		})
	}
}
