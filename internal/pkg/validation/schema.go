package validation

import (
	"encoding/json"
	"fmt"
)

// Schema is an ordered set of field rules. Every rule is evaluated so callers
// receive all violations at once.
type Schema struct {
	rules []*FieldRule
}

// NewSchema creates a schema from rules, preserving their order
func NewSchema(rules ...*FieldRule) *Schema {
	return &Schema{rules: rules}
}

// Validate checks payload and returns the violations in rule order.
// Fields not named by a rule are ignored.
func (s *Schema) Validate(payload map[string]interface{}) []string {
	var violations []string
	for _, rule := range s.rules {
		value, present := payload[rule.Name]
		if msg := rule.check(value, present); msg != "" {
			violations = append(violations, msg)
		}
	}
	return violations
}

// Decode validates payload and, when it passes, copies the ruled fields into out.
func (s *Schema) Decode(payload map[string]interface{}, out interface{}) ([]string, error) {
	if violations := s.Validate(payload); len(violations) > 0 {
		return violations, nil
	}

	known := make(map[string]interface{}, len(s.rules))
	for _, rule := range s.rules {
		if value, ok := payload[rule.Name]; ok {
			known[rule.Name] = value
		}
	}

	raw, err := json.Marshal(known)
	if err != nil {
		return nil, fmt.Errorf("encode validated payload: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("decode validated payload: %w", err)
	}
	return nil, nil
}
