package rules_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/internal/testutils"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/stretchr/testify/assert"
)

func forbiddenDefaultMessage(prop, kind string) string {
	return prop + " has a/an " + kind + " as default prop.\n" +
		"This could lead to potential infinite render loop in React. \n" +
		"Use a variable reference instead of " + kind + "."
}

func TestNoObjectTypeAsDefaultPropRule_ValidCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "primitive defaults", src: `function Foo({ a = 1, b = "x", c = null, d = undefined }) { return null; }`},
		{name: "reference default", src: `const empty = {};
const Foo = ({ a = empty }) => null;`},
		{name: "lowercase function", src: `function foo({ a = {} }) { return null; }`},
		{name: "second parameter", src: `function Foo(props, { a = {} }) { return null; }`},
		{name: "no destructuring", src: `function Foo(props = {}) { return null; }`},
		{name: "regular call default", src: `const Foo = ({ a = compute() }) => null;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.NoObjectTypeAsDefaultPropRule{}, tt.src)
			assert.Empty(t, res.Strings())
		})
	}
}

func TestNoObjectTypeAsDefaultPropRule_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "object literal",
			src:      `function Foo({ a = {} }) { return null; }`,
			expected: []string{"[1:16] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("a", "object literal")},
		},
		{
			name:     "array literal in an arrow component",
			src:      `const Foo = ({ items = [] }) => null;`,
			expected: []string{"[1:16] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("items", "array literal")},
		},
		{
			name: "every referential kind in order",
			src: `const Foo = ({
  a = () => {},
  b = function () {},
  c = class {},
  d = new Thing(),
  e = <div />,
  f = /x/,
  g = Symbol("g"),
}) => null;`,
			expected: []string{
				"[2:3] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("a", "arrow function"),
				"[3:3] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("b", "function expression"),
				"[4:3] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("c", "class expression"),
				"[5:3] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("d", "construction expression"),
				"[6:3] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("e", "JSX element"),
				"[7:3] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("f", "regex literal"),
				"[8:3] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("g", "Symbol literal"),
			},
		},
		{
			name:     "renamed property reports the key",
			src:      `const Foo = function ({ style: s = {} }) { return null; };`,
			expected: []string{"[1:32] warning no-object-type-as-default-prop " + forbiddenDefaultMessage("style", "object literal")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.NoObjectTypeAsDefaultPropRule{}, tt.src)
			assert.Equal(t, tt.expected, res.Strings())
		})
	}
}
