package mappings

import (
	"fmt"

	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
	surfaceserrors "github.com/alexisbeaulieu97/surfaces/pkg/errors"
)

// Rule names reported by Check.
const (
	RuleComponent = "component"
	RuleFinish    = "finish"
	RuleMaterial  = "material"
)

// Violation describes one entry breaking one vocabulary rule.
type Violation struct {
	Key     string
	Rule    string
	Message string
}

// Err converts the violation into a MappingError.
func (v Violation) Err() error {
	return surfaceserrors.NewMappingError(v.Key, v.Rule, v.Message)
}

// Check verifies that every non-exempt entry names exactly one component, at least
// one finish and at least one material. Violations are ordered by key, then rule.
func Check(t *Table) []Violation {
	var violations []Violation

	for _, key := range t.Keys() {
		if t.Exempt(key) {
			continue
		}
		classes, _ := t.Lookup(key)

		var components, finishes, materials int
		for _, token := range classes {
			if vocabulary.Is(vocabulary.Component, token) {
				components++
			}
			if vocabulary.Is(vocabulary.Finish, token) {
				finishes++
			}
			if vocabulary.Is(vocabulary.Material, token) {
				materials++
			}
		}

		if components != 1 {
			violations = append(violations, Violation{
				Key:     key,
				Rule:    RuleComponent,
				Message: fmt.Sprintf("expected exactly one component token, found %d", components),
			})
		}
		if finishes == 0 {
			violations = append(violations, Violation{Key: key, Rule: RuleFinish, Message: "no finish token"})
		}
		if materials == 0 {
			violations = append(violations, Violation{Key: key, Rule: RuleMaterial, Message: "no material token"})
		}
	}

	return violations
}

// Component returns the first component token of key, if any.
func (t *Table) Component(key string) (string, bool) {
	classes, ok := t.Lookup(key)
	if !ok {
		return "", false
	}
	for _, token := range classes {
		if vocabulary.Is(vocabulary.Component, token) {
			return token, true
		}
	}
	return "", false
}
