// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hearthmc/hearth/internal/rules"
)

type (
	// Argument is a launch argument: either a Literal token or a Conditional
	// group of tokens gated by rules. The set of implementations is closed.
	Argument interface {
		argument()
	}

	// Literal is an unconditional argument token.
	Literal string

	// Conditional expands to Values when Rules apply.
	Conditional struct {
		Rules  []rules.Rule
		Values []string
	}

	// ArgumentList is an ordered argument list with the manifest JSON encoding
	// (bare strings mixed with {"rules", "value"} objects).
	ArgumentList []Argument

	wireConditional struct {
		Rules []rules.Rule    `json:"rules"`
		Value json.RawMessage `json:"value"`
	}
)

func (Literal) argument()     {}
func (Conditional) argument() {}

// Admitted returns the flattened tokens of every argument whose rules apply
// under eval, in list order.
func (l ArgumentList) Admitted(eval func([]rules.Rule) bool) []string {
	var out []string
	for _, a := range l {
		switch a := a.(type) {
		case Literal:
			out = append(out, string(a))
		case Conditional:
			if eval(a.Rules) {
				out = append(out, a.Values...)
			}
		default:
			panic(fmt.Sprintf("manifest: unhandled argument type %T", a))
		}
	}
	return out
}

// Literals wraps plain tokens as an ArgumentList.
func Literals(tokens ...string) ArgumentList {
	out := make(ArgumentList, len(tokens))
	for i, t := range tokens {
		out[i] = Literal(t)
	}
	return out
}

// UnmarshalJSON decodes a mixed list of strings and conditional objects.
func (l *ArgumentList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(ArgumentList, 0, len(raw))
	for i, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return fmt.Errorf("argument %d: %w", i, err)
			}
			out = append(out, Literal(s))
			continue
		}

		var w wireConditional
		if err := json.Unmarshal(item, &w); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
		values, err := decodeValue(w.Value)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, Conditional{Rules: w.Rules, Values: values})
	}
	*l = out
	return nil
}

// MarshalJSON encodes the list in the manifest shape.
func (l ArgumentList) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(l))
	for _, a := range l {
		switch a := a.(type) {
		case Literal:
			out = append(out, string(a))
		case Conditional:
			values := a.Values
			if values == nil {
				values = []string{}
			}
			out = append(out, struct {
				Rules []rules.Rule `json:"rules"`
				Value []string     `json:"value"`
			}{a.Rules, values})
		default:
			return nil, fmt.Errorf("manifest: cannot encode argument type %T", a)
		}
	}
	return json.Marshal(out)
}

// decodeValue accepts a single string or a list of strings.
func decodeValue(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("value must be a string or a list of strings: %w", err)
	}
	return many, nil
}
