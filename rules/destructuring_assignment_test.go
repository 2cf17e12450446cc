package rules_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/internal/testutils"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/stretchr/testify/assert"
)

func TestDestructuringAssignmentRule_ValidCases(t *testing.T) {
	t.Parallel()

	never := map[string]any{"mode": "never"}

	tests := []struct {
		name    string
		src     string
		options map[string]any
	}{
		{name: "destructured parameter", src: `const Foo = ({ foo }) => <div>{foo}</div>;`},
		{name: "destructured in body", src: `function Foo(props) {
  const { foo } = props;
  return <div>{foo}</div>;
}`},
		{name: "not a component", src: `function foo(props) { return props.bar; }`},
		{name: "class state destructured", src: `class Foo extends React.Component {
  render() {
    const { foo } = this.state;
    return <div>{foo}</div>;
  }
}`},
		{name: "assignment target", src: `class Foo extends React.Component {
  render() {
    this.state.foo = 1;
    return <div />;
  }
}`},
		{name: "class fields ignored", src: `class Foo extends React.Component {
  bar = this.props.bar;
  render() { return <div />; }
}`, options: map[string]any{"ignoreClassFields": true}},
		{name: "member access in never mode", src: `const Foo = (props) => <div>{props.foo}</div>;`, options: never},
		{name: "plain parameter in never mode", src: `function Foo(props, context) { return <div />; }`, options: never},
		{name: "flow annotated context outside a component", src: `export default (context: $Context) => ({
  foo: context.bar
});`},
		{name: "factory state destructured", src: `var Hello = createReactClass({
  render: function() {
    const { foo } = this.state;
    return <div>{foo}</div>;
  }
});`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.DestructuringAssignmentRule{}, tt.src, testutils.WithOptions(tt.options))
			assert.Empty(t, res.Strings())
		})
	}
}

func TestDestructuringAssignmentRule_Violations(t *testing.T) {
	t.Parallel()

	never := map[string]any{"mode": "never"}

	tests := []struct {
		name     string
		src      string
		options  map[string]any
		expected []string
	}{
		{
			name:     "props member in a function component",
			src:      `const Foo = (props) => <div>{props.foo}</div>;`,
			expected: []string{"[1:30] hint destructuring-assignment Must use destructuring props assignment"},
		},
		{
			name: "context member in a function component",
			src: `function Foo(props, context) {
  return <div>{context.foo}</div>;
}`,
			expected: []string{"[2:16] hint destructuring-assignment Must use destructuring context assignment"},
		},
		{
			name: "this.props member in a class component",
			src: `class Foo extends React.Component {
  render() { return <div>{this.props.foo}</div>; }
}`,
			expected: []string{"[2:27] hint destructuring-assignment Must use destructuring props assignment"},
		},
		{
			name: "class fields are checked by default",
			src: `class Foo extends React.Component {
  bar = this.props.bar;
  render() { return <div />; }
}`,
			expected: []string{"[2:9] hint destructuring-assignment Must use destructuring props assignment"},
		},
		{
			name: "this.props member in a factory component",
			src: `var Hello = React.createClass({
  render: function() {
    return <Text>{this.props.foo}</Text>;
  }
});`,
			expected: []string{"[3:19] hint destructuring-assignment Must use destructuring props assignment"},
		},
		{
			name: "props member in an object method component",
			src: `module.exports = {
  Foo(props) {
    return <p>{props.a}</p>;
  }
};`,
			expected: []string{"[3:16] hint destructuring-assignment Must use destructuring props assignment"},
		},
		{
			name:     "destructured parameter in never mode",
			src:      `const Foo = ({ foo }) => <div>{foo}</div>;`,
			options:  never,
			expected: []string{"[1:14] hint destructuring-assignment Must never use destructuring props assignment in SFC argument"},
		},
		{
			name:     "destructured context parameter in never mode",
			src:      `function Foo(props, { theme }) { return <div />; }`,
			options:  never,
			expected: []string{"[1:21] hint destructuring-assignment Must never use destructuring context assignment in SFC argument"},
		},
		{
			name: "destructured in body in never mode",
			src: `function Foo(props) {
  const { foo } = props;
  return <div>{foo}</div>;
}`,
			options:  never,
			expected: []string{"[2:9] hint destructuring-assignment Must never use destructuring props assignment"},
		},
		{
			name: "class state destructured in never mode",
			src: `class Foo extends React.Component {
  render() {
    const { foo } = this.state;
    return <div>{foo}</div>;
  }
}`,
			options:  never,
			expected: []string{"[3:11] hint destructuring-assignment Must never use destructuring state assignment"},
		},
		{
			name: "factory props destructured in never mode",
			src: `var Hello = createReactClass({
  render: function() {
    const { foo } = this.props;
    return <div>{foo}</div>;
  }
});`,
			options:  never,
			expected: []string{"[3:11] hint destructuring-assignment Must never use destructuring props assignment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := testutils.RunRule(t, &rules.DestructuringAssignmentRule{}, tt.src, testutils.WithOptions(tt.options))
			assert.Equal(t, tt.expected, res.Strings())
		})
	}
}
