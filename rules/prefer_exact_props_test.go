package rules_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/internal/testutils"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/stretchr/testify/assert"
)

var exactWrapperSettings = linter.Settings{
	PropWrapperFunctions: []linter.PropWrapper{
		{Property: "forbidExtraProps"},
		{Property: "exact", Exact: true},
	},
}

func TestPreferExactPropsRule_ValidCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		path     string
		settings linter.Settings
	}{
		{
			name: "no exact wrapper configured",
			src: `class Foo extends React.Component {
  static propTypes = { a: PropTypes.string };
  render() { return <div />; }
}`,
		},
		{
			name: "wrapped propTypes",
			src: `class Foo extends React.Component {
  static propTypes = exact({ a: PropTypes.string });
  render() { return <div />; }
}`,
			settings: exactWrapperSettings,
		},
		{
			name: "empty propTypes",
			src: `function Foo() { return <div />; }
Foo.propTypes = {};`,
			settings: exactWrapperSettings,
		},
		{
			name: "propTypes read",
			src: `function Foo() { return <div />; }
const p = Foo.propTypes;`,
			settings: exactWrapperSettings,
		},
		{
			name: "untyped props",
			src:  `function Foo(props) { return <div />; }`,
		},
		{
			name: "empty object type",
			src:  `function Foo(props: {}) { return <div />; }`,
			path: "foo.tsx",
		},
		{
			name: "typed parameter outside a component",
			src:  `function helper(props: { a: string }) { return props.a; }`,
			path: "foo.tsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := []testutils.Option{testutils.WithSettings(tt.settings)}
			if tt.path != "" {
				opts = append(opts, testutils.WithPath(tt.path))
			}
			res := testutils.RunRule(t, &rules.PreferExactPropsRule{}, tt.src, opts...)
			assert.Empty(t, res.Strings())
		})
	}
}

func TestPreferExactPropsRule_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		path     string
		settings linter.Settings
		expected []string
	}{
		{
			name: "static propTypes",
			src: `class Foo extends React.Component {
  static propTypes = { a: PropTypes.string };
  render() { return <div />; }
}`,
			settings: exactWrapperSettings,
			expected: []string{"[2:3] warning prefer-exact-props Component propTypes should be exact by using 'exact'."},
		},
		{
			name: "several exact wrappers",
			src: `function Foo() { return <div />; }
Foo.propTypes = { a: PropTypes.string };`,
			settings: linter.Settings{PropWrapperFunctions: []linter.PropWrapper{
				{Property: "exact", Exact: true},
				{Property: "exact", Object: "PropTypes", Exact: true},
			}},
			expected: []string{"[2:1] warning prefer-exact-props Component propTypes should be exact by using one of 'exact', 'PropTypes.exact'."},
		},
		{
			name: "propTypes through a variable",
			src: `const propTypes = { a: PropTypes.string };
function Foo() { return <div />; }
Foo.propTypes = propTypes;`,
			settings: exactWrapperSettings,
			expected: []string{"[3:1] warning prefer-exact-props Component propTypes should be exact by using 'exact'."},
		},
		{
			name:     "inline object type",
			src:      `function Foo(props: { a: string }) { return <div />; }`,
			path:     "foo.tsx",
			expected: []string{"[1:14] warning prefer-exact-props Component flow props should be set with exact objects."},
		},
		{
			name: "object type through an alias",
			src: `type Props = { a: string };
const Foo = (props: Props) => <div />;`,
			path:     "foo.tsx",
			expected: []string{"[2:14] warning prefer-exact-props Component flow props should be set with exact objects."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := []testutils.Option{testutils.WithSettings(tt.settings)}
			if tt.path != "" {
				opts = append(opts, testutils.WithPath(tt.path))
			}
			res := testutils.RunRule(t, &rules.PreferExactPropsRule{}, tt.src, opts...)
			assert.Equal(t, tt.expected, res.Strings())
		})
	}
}
