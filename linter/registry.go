package linter

import (
	"fmt"
	"maps"
	"slices"
)

// RulesetAll names the implicit ruleset holding every registered rule.
const RulesetAll = "all"

// Registry is the catalog a Linter selects rules from: rules by id, and named
// rulesets that a config enables through extends.
type Registry struct {
	rules    map[string]RuleRunner
	rulesets map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{
		rules:    make(map[string]RuleRunner),
		rulesets: make(map[string][]string),
	}
}

// Register adds rule, replacing any rule registered under the same id.
func (r *Registry) Register(rule RuleRunner) {
	r.rules[rule.ID()] = rule
}

// RegisterRuleset names a set of registered rules. Names are unique and
// RulesetAll is reserved.
func (r *Registry) RegisterRuleset(name string, ruleIDs []string) error {
	if name == RulesetAll {
		return fmt.Errorf("ruleset %q is reserved", name)
	}
	if _, exists := r.rulesets[name]; exists {
		return fmt.Errorf("ruleset %q already registered", name)
	}
	for _, id := range ruleIDs {
		if _, exists := r.rules[id]; !exists {
			return fmt.Errorf("rule %q in ruleset %q not found", id, name)
		}
	}
	r.rulesets[name] = ruleIDs
	return nil
}

func (r *Registry) Rule(id string) (RuleRunner, bool) {
	rule, ok := r.rules[id]
	return rule, ok
}

// Ruleset returns the rule ids of a ruleset in registration order, or every
// rule id for RulesetAll.
func (r *Registry) Ruleset(name string) ([]string, bool) {
	if name == RulesetAll {
		return r.RuleIDs(), true
	}
	ids, ok := r.rulesets[name]
	return ids, ok
}

// Rules returns the registered rules ordered by id, which is also the order
// their visitors run in.
func (r *Registry) Rules() []RuleRunner {
	rules := make([]RuleRunner, 0, len(r.rules))
	for _, id := range r.RuleIDs() {
		rules = append(rules, r.rules[id])
	}
	return rules
}

func (r *Registry) RuleIDs() []string {
	return slices.Sorted(maps.Keys(r.rules))
}

// CategoryOf returns the category of ruleID, or "" for an unknown rule. It
// is the lookup the JSON and summary formatters group diagnostics by.
func (r *Registry) CategoryOf(ruleID string) string {
	if rule, ok := r.rules[ruleID]; ok {
		return rule.Category()
	}
	return ""
}

// Fixable returns the ids of the rules that offer fixes.
func (r *Registry) Fixable() []string {
	var ids []string
	for _, rule := range r.Rules() {
		if fr, ok := rule.(FixableRule); ok && fr.FixAvailable() {
			ids = append(ids, rule.ID())
		}
	}
	return ids
}

// Categories returns the distinct categories of the registered rules.
func (r *Registry) Categories() []string {
	var cats []string
	for _, rule := range r.rules {
		if !slices.Contains(cats, rule.Category()) {
			cats = append(cats, rule.Category())
		}
	}
	slices.Sort(cats)
	return cats
}

// Rulesets returns every ruleset name, RulesetAll included.
func (r *Registry) Rulesets() []string {
	names := append(slices.Collect(maps.Keys(r.rulesets)), RulesetAll)
	slices.Sort(names)
	return names
}

// RulesetsOf returns the rulesets that enable ruleID.
func (r *Registry) RulesetsOf(ruleID string) []string {
	sets := []string{RulesetAll}
	for name, ids := range r.rulesets {
		if slices.Contains(ids, ruleID) {
			sets = append(sets, name)
		}
	}
	slices.Sort(sets)
	return sets
}
