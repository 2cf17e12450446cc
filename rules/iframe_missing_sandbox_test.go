package rules_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/internal/testutils"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/stretchr/testify/assert"
)

func TestIframeMissingSandboxRule_ValidCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "empty sandbox", src: `<iframe sandbox="" />`},
		{name: "single valid token", src: `<iframe sandbox="allow-forms" />`},
		{name: "several valid tokens", src: `<iframe sandbox="allow-forms allow-modals allow-popups" />`},
		{name: "scripts without same origin", src: `<iframe sandbox="allow-scripts" />`},
		{name: "dynamic value", src: `<iframe sandbox={value} />`},
		{name: "not an iframe", src: `<div />`},
		{name: "member element", src: `<Foo.iframe />`},
		{name: "component named like an iframe", src: `<Iframe />`},
		{name: "createElement is not checked", src: `React.createElement('iframe')`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.IframeMissingSandboxRule{}, tt.src)
			assert.Empty(t, res.Strings())
		})
	}
}

func TestIframeMissingSandboxRule_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "missing attribute",
			src:      `<iframe />`,
			expected: []string{"[1:1] warning iframe-missing-sandbox An iframe element is missing a sandbox attribute"},
		},
		{
			name: "missing attribute with children",
			src:  `const x = <iframe src="https://example.com"></iframe>`,
			expected: []string{
				"[1:11] warning iframe-missing-sandbox An iframe element is missing a sandbox attribute",
			},
		},
		{
			name: "invalid token",
			src:  `<iframe sandbox="allow-downloads" />`,
			expected: []string{
				`[1:1] warning iframe-missing-sandbox An iframe element defines a sandbox attribute with invalid value "allow-downloads"`,
			},
		},
		{
			name: "invalid tokens in order",
			src:  `<iframe sandbox="foo allow-forms bar" />`,
			expected: []string{
				`[1:1] warning iframe-missing-sandbox An iframe element defines a sandbox attribute with invalid value "foo"`,
				`[1:1] warning iframe-missing-sandbox An iframe element defines a sandbox attribute with invalid value "bar"`,
			},
		},
		{
			name: "scripts with same origin",
			src:  `<iframe sandbox="allow-scripts allow-same-origin" />`,
			expected: []string{
				"[1:1] warning iframe-missing-sandbox An iframe element defines a sandbox attribute with both allow-scripts and allow-same-origin which is invalid",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.IframeMissingSandboxRule{}, tt.src)
			assert.Equal(t, tt.expected, res.Strings())
			assert.Equal(t, tt.src, res.Output, "no fix is offered")
		})
	}
}
