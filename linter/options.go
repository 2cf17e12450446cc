package linter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/speakeasy-api/jsxlint/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidOptions is returned when rule options fail schema validation.
const ErrInvalidOptions = errors.Error("invalid rule options")

var defaultPrinter = message.NewPrinter(language.English)

// optionsValidator compiles and caches the option schema of each rule.
type optionsValidator struct {
	mu      sync.Mutex
	schemas map[string]*jsValidator.Schema
}

func newOptionsValidator() *optionsValidator {
	return &optionsValidator{schemas: make(map[string]*jsValidator.Schema)}
}

func (v *optionsValidator) schema(rule ConfigurableRule) (*jsValidator.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s, ok := v.schemas[rule.ID()]; ok {
		return s, nil
	}

	doc, err := toJSONValue(rule.ConfigSchema())
	if err != nil {
		return nil, fmt.Errorf("rule %s: schema is not valid json: %w", rule.ID(), err)
	}
	url := "rule://" + rule.ID() + "/options.json"
	c := jsValidator.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("rule %s: failed to add schema: %w", rule.ID(), err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("rule %s: failed to compile schema: %w", rule.ID(), err)
	}
	v.schemas[rule.ID()] = s
	return s, nil
}

// resolve merges the rule defaults with the configured options and validates
// the result against the rule schema.
func (v *optionsValidator) resolve(rule RuleRunner, configured map[string]any) (map[string]any, error) {
	cr, ok := rule.(ConfigurableRule)
	if !ok {
		if len(configured) > 0 {
			return nil, ErrInvalidOptions.Wrapf("rule %s does not take options", rule.ID())
		}
		return map[string]any{}, nil
	}

	merged := make(map[string]any)
	maps.Copy(merged, cr.ConfigDefaults())
	maps.Copy(merged, configured)

	s, err := v.schema(cr)
	if err != nil {
		return nil, err
	}
	instance, err := toJSONValue(merged)
	if err != nil {
		return nil, ErrInvalidOptions.Wrapf("rule %s: %s", rule.ID(), err)
	}
	if err := s.Validate(instance); err != nil {
		var validationErr *jsValidator.ValidationError
		if errors.As(err, &validationErr) {
			return nil, ErrInvalidOptions.Wrapf("rule %s: %s", rule.ID(), strings.Join(rootCauses(validationErr), "; "))
		}
		return nil, ErrInvalidOptions.Wrapf("rule %s: %s", rule.ID(), err)
	}
	return merged, nil
}

func rootCauses(err *jsValidator.ValidationError) []string {
	if len(err.Causes) == 0 {
		loc := strings.Join(err.InstanceLocation, ".")
		if loc == "" {
			loc = "options"
		}
		return []string{fmt.Sprintf("%s %s", loc, err.ErrorKind.LocalizedString(defaultPrinter))}
	}
	var out []string
	for _, cause := range err.Causes {
		out = append(out, rootCauses(cause)...)
	}
	sort.Strings(out)
	return out
}

// toJSONValue converts a YAML-decoded value into the representation the
// schema validator expects.
func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsValidator.UnmarshalJSON(bytes.NewReader(data))
}

// decodeOptions copies resolved options into a rule's options struct.
func decodeOptions(options map[string]any, target any) error {
	data, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
