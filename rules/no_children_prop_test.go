package rules_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/internal/testutils"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/stretchr/testify/assert"
)

const (
	nestChildrenMessage       = "Do not pass children as props. Instead, nest children between the opening and closing tags."
	passChildrenAsArgsMessage = "Do not pass children as props. Instead, pass them as additional arguments to React.createElement."
	nestFunctionMessage       = "Do not nest a function between the opening and closing tags. Instead, pass it as a prop."
	passFunctionAsArgsMessage = "Do not pass a function as an additional argument to React.createElement. Instead, pass it as a prop."
)

func TestNoChildrenPropRule_ValidCases(t *testing.T) {
	t.Parallel()

	allowFunctions := map[string]any{"allowFunctions": true}

	tests := []struct {
		name    string
		src     string
		options map[string]any
	}{
		{name: "nested children", src: `<div>Children</div>`},
		{name: "other props", src: `<MyComponent className="class-name" />`},
		{name: "createElement arguments", src: `React.createElement("div", {}, "Children");`},
		{name: "createElement without props", src: `React.createElement("div");`},
		{name: "function prop allowed", src: `<MyComponent children={data => data.value} />`, options: allowFunctions},
		{name: "function property allowed", src: `React.createElement(MyComponent, { children: function () {} });`, options: allowFunctions},
		{name: "nested function without option", src: `<MyComponent>{data => data.value}</MyComponent>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.NoChildrenPropRule{}, tt.src, testutils.WithOptions(tt.options))
			assert.Empty(t, res.Strings())
		})
	}
}

func TestNoChildrenPropRule_Violations(t *testing.T) {
	t.Parallel()

	allowFunctions := map[string]any{"allowFunctions": true}

	tests := []struct {
		name     string
		src      string
		options  map[string]any
		expected string
	}{
		{
			name:     "children attribute",
			src:      `<div children="Children" />`,
			expected: "[1:6] warning no-children-prop " + nestChildrenMessage,
		},
		{
			name:     "children attribute with an expression",
			src:      `<MyComponent children={<span />} />`,
			expected: "[1:14] warning no-children-prop " + nestChildrenMessage,
		},
		{
			name:     "function child prop without option",
			src:      `<MyComponent children={() => null} />`,
			expected: "[1:14] warning no-children-prop " + nestChildrenMessage,
		},
		{
			name:     "createElement children property",
			src:      `React.createElement("div", { children: "Children" });`,
			expected: "[1:1] warning no-children-prop " + passChildrenAsArgsMessage,
		},
		{
			name:     "other createElement objects",
			src:      `h.createElement("div", { children: "Children" });`,
			expected: "[1:1] warning no-children-prop " + passChildrenAsArgsMessage,
		},
		{
			name:     "nested function",
			src:      `<MyComponent>{data => data.value}</MyComponent>`,
			options:  allowFunctions,
			expected: "[1:1] warning no-children-prop " + nestFunctionMessage,
		},
		{
			name:     "function argument",
			src:      `React.createElement(MyComponent, {}, data => data.value);`,
			options:  allowFunctions,
			expected: "[1:1] warning no-children-prop " + passFunctionAsArgsMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.NoChildrenPropRule{}, tt.src, testutils.WithOptions(tt.options))
			assert.Equal(t, []string{tt.expected}, res.Strings())
		})
	}
}
