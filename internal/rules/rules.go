// SPDX-License-Identifier: MPL-2.0

// Package rules evaluates the allow/disallow rule lists that gate libraries
// and launch arguments in version manifests.
package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/hearthmc/hearth/pkg/platform"
)

const (
	// Allow includes the artifact when the rule's condition matches.
	Allow Action = "allow"
	// Disallow excludes the artifact when the rule's condition matches.
	Disallow Action = "disallow"
)

// ErrInvalidAction is returned when a rule carries an unknown action.
var ErrInvalidAction = errors.New("invalid rule action")

type (
	// Action is the verdict a matching rule applies.
	Action string

	// Condition is the predicate half of a rule. The set of implementations is
	// closed: Always, OSCondition, FeatureCondition and AllOf.
	Condition interface {
		condition()
	}

	// Always matches every environment.
	Always struct{}

	// OSCondition matches on the host OS. Empty fields are not checked.
	OSCondition struct {
		// Name is the launcher OS family ("windows", "osx", "linux").
		Name string
		// Version is a regular expression matched against the OS version.
		Version string
		// Arch is compared verbatim with the host architecture name.
		Arch string
	}

	// FeatureCondition matches when every listed feature flag has the given
	// value. A false value tests for the flag being absent or disabled.
	FeatureCondition struct {
		Features map[string]bool
	}

	// AllOf matches when all of its conditions match.
	AllOf []Condition

	// Rule pairs an action with the condition under which it fires.
	Rule struct {
		Action    Action
		Condition Condition
	}

	// wireRule is the manifest JSON shape of a rule.
	wireRule struct {
		Action   Action          `json:"action"`
		OS       *wireOS         `json:"os,omitempty"`
		Features map[string]bool `json:"features,omitempty"`
	}

	wireOS struct {
		Name    string `json:"name,omitempty"`
		Version string `json:"version,omitempty"`
		Arch    string `json:"arch,omitempty"`
	}
)

func (Always) condition()           {}
func (OSCondition) condition()      {}
func (FeatureCondition) condition() {}
func (AllOf) condition()            {}

// Applies reports whether a rule list admits the environment described by
// facts. An empty list always applies. Otherwise the result starts out false
// and every rule whose condition matches overwrites it with its action, so
// the last matching rule wins.
func Applies(rules []Rule, facts platform.Facts) bool {
	if len(rules) == 0 {
		return true
	}
	result := false
	for _, r := range rules {
		if Matches(r.Condition, facts) {
			result = r.Action == Allow
		}
	}
	return result
}

// Matches reports whether a single condition holds for facts. A nil
// condition behaves like Always.
func Matches(c Condition, facts platform.Facts) bool {
	switch c := c.(type) {
	case nil, Always:
		return true
	case OSCondition:
		return matchOS(c, facts)
	case FeatureCondition:
		for name, want := range c.Features {
			if facts.Feature(name) != want {
				return false
			}
		}
		return true
	case AllOf:
		for _, sub := range c {
			if !Matches(sub, facts) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("rules: unhandled condition type %T", c))
	}
}

func matchOS(c OSCondition, facts platform.Facts) bool {
	if c.Name != "" && c.Name != facts.OS {
		return false
	}
	if c.Arch != "" && c.Arch != facts.Arch {
		return false
	}
	if c.Version != "" {
		re, err := regexp.Compile(c.Version)
		if err != nil || !re.MatchString(facts.OSVersion) {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes the manifest rule shape into the condition variant
// it describes.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var w wireRule
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Action != Allow && w.Action != Disallow {
		return fmt.Errorf("%w: %q", ErrInvalidAction, w.Action)
	}

	var conds AllOf
	if w.OS != nil {
		conds = append(conds, OSCondition{Name: w.OS.Name, Version: w.OS.Version, Arch: w.OS.Arch})
	}
	if len(w.Features) > 0 {
		conds = append(conds, FeatureCondition{Features: w.Features})
	}

	r.Action = w.Action
	switch len(conds) {
	case 0:
		r.Condition = Always{}
	case 1:
		r.Condition = conds[0]
	default:
		r.Condition = conds
	}
	return nil
}

// MarshalJSON encodes the rule back into the manifest shape.
func (r Rule) MarshalJSON() ([]byte, error) {
	w := wireRule{Action: r.Action}
	if err := flatten(r.Condition, &w); err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func flatten(c Condition, w *wireRule) error {
	switch c := c.(type) {
	case nil, Always:
		return nil
	case OSCondition:
		w.OS = &wireOS{Name: c.Name, Version: c.Version, Arch: c.Arch}
		return nil
	case FeatureCondition:
		w.Features = c.Features
		return nil
	case AllOf:
		for _, sub := range c {
			if err := flatten(sub, w); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("rules: cannot encode condition type %T", c)
	}
}
