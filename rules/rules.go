// Package rules holds the built-in React and JSX rules.
package rules

import (
	"fmt"

	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/validation"
)

// RulesetRecommended is the ruleset enabling the rules that catch real bugs
// or security issues without being opinionated about style.
const RulesetRecommended = "recommended"

const docsBaseURL = "https://github.com/speakeasy-api/jsxlint/blob/main/rules/README.md#"

// All returns a fresh instance of every built-in rule.
func All() []linter.RuleRunner {
	return []linter.RuleRunner{
		&DestructuringAssignmentRule{},
		&HookUseStateRule{},
		&IframeMissingSandboxRule{},
		&JSXMaxPropsPerLineRule{},
		&JSXNoNamespaceRule{},
		&JSXNoTargetBlankRule{},
		&NoArrowFunctionLifecycleRule{},
		&NoChildrenPropRule{},
		&NoInvalidHTMLAttributeRule{},
		&NoNamedImportRule{},
		&NoNamespaceImportRule{},
		&NoObjectTypeAsDefaultPropRule{},
		&NoUnusedClassComponentMethodsRule{},
		&PreferExactPropsRule{},
	}
}

// Register adds every built-in rule and the recommended ruleset to registry.
func Register(registry *linter.Registry) error {
	for _, rule := range All() {
		registry.Register(rule)
	}
	return registry.RegisterRuleset(RulesetRecommended, []string{
		RuleIframeMissingSandbox,
		RuleJSXNoNamespace,
		RuleJSXNoTargetBlank,
		RuleNoArrowFunctionLifecycle,
		RuleNoChildrenProp,
		RuleNoInvalidHTMLAttribute,
		RuleNoUnusedClassComponentMethods,
	})
}

// NewRegistry returns a registry holding the built-in rules.
func NewRegistry() *linter.Registry {
	registry := linter.NewRegistry()
	if err := Register(registry); err != nil {
		panic(fmt.Sprintf("rules: %v", err))
	}
	return registry
}

// message is a diagnostic kind of one rule: its id and the template it
// renders with. Payload types embed it and supply their data to render.
type message struct {
	id       string
	template string
}

func (m message) ID() string     { return m.id }
func (m message) String() string { return m.template }

func (m message) render(data map[string]string) string {
	return validation.Interpolate(m.template, data)
}

// messageTable returns the templates of msgs keyed by id.
func messageTable(msgs ...message) map[string]string {
	out := make(map[string]string, len(msgs))
	for _, m := range msgs {
		out[m.id] = m.template
	}
	return out
}
