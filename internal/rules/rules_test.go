// SPDX-License-Identifier: MPL-2.0

package rules

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hearthmc/hearth/pkg/platform"
)

func linuxFacts() platform.Facts {
	return platform.Facts{OS: platform.OSLinux, OSVersion: "6.8.0", Arch: "x86_64", WordSize: "64"}
}

func TestApplies(t *testing.T) {
	t.Parallel()

	onWindows := OSCondition{Name: platform.OSWindows}
	onLinux := OSCondition{Name: platform.OSLinux}

	tests := []struct {
		name  string
		rules []Rule
		want  bool
	}{
		{"empty list applies", nil, true},
		{"unconditional allow", []Rule{{Action: Allow, Condition: Always{}}}, true},
		{"unconditional disallow", []Rule{{Action: Disallow, Condition: Always{}}}, false},
		{"matching disallow", []Rule{{Action: Disallow, Condition: onLinux}}, false},
		{"non-matching disallow still excludes", []Rule{{Action: Disallow, Condition: onWindows}}, false},
		{"non-matching allow excludes", []Rule{{Action: Allow, Condition: onWindows}}, false},
		{"matching allow", []Rule{{Action: Allow, Condition: onLinux}}, true},
		{
			"later matching rule overrides",
			[]Rule{{Action: Allow, Condition: Always{}}, {Action: Disallow, Condition: onLinux}},
			false,
		},
		{
			"later non-matching rule leaves result",
			[]Rule{{Action: Allow, Condition: Always{}}, {Action: Disallow, Condition: onWindows}},
			true,
		},
		{
			"disallow then allow both matching",
			[]Rule{{Action: Disallow, Condition: Always{}}, {Action: Allow, Condition: onLinux}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Applies(tt.rules, linuxFacts()); got != tt.want {
				t.Errorf("Applies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatches_OSCondition(t *testing.T) {
	t.Parallel()

	facts := platform.Facts{OS: platform.OSWindows, OSVersion: "10.0", Arch: "x86", WordSize: "32"}

	tests := []struct {
		name string
		cond OSCondition
		want bool
	}{
		{"name only", OSCondition{Name: "windows"}, true},
		{"wrong name", OSCondition{Name: "osx"}, false},
		{"version regexp", OSCondition{Name: "windows", Version: `^10\.`}, true},
		{"version mismatch", OSCondition{Name: "windows", Version: `^6\.1`}, false},
		{"invalid regexp never matches", OSCondition{Version: `(`}, false},
		{"arch", OSCondition{Arch: "x86"}, true},
		{"arch mismatch", OSCondition{Arch: "x86_64"}, false},
		{"empty condition", OSCondition{}, true},
	}

	for _, tt := range tests {
		if got := Matches(tt.cond, facts); got != tt.want {
			t.Errorf("%s: Matches() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMatches_FeatureCondition(t *testing.T) {
	t.Parallel()

	facts := linuxFacts().WithFeatures(map[string]bool{platform.FeatureCustomResolution: true})

	if !Matches(FeatureCondition{Features: map[string]bool{platform.FeatureCustomResolution: true}}, facts) {
		t.Error("expected enabled feature to match")
	}
	if Matches(FeatureCondition{Features: map[string]bool{platform.FeatureDemoUser: true}}, facts) {
		t.Error("expected absent feature not to match")
	}
	if !Matches(FeatureCondition{Features: map[string]bool{platform.FeatureDemoUser: false}}, facts) {
		t.Error("expected negated absent feature to match")
	}
	if Matches(AllOf{OSCondition{Name: "linux"}, FeatureCondition{Features: map[string]bool{platform.FeatureDemoUser: true}}}, facts) {
		t.Error("AllOf must require every condition")
	}
}

func TestRule_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	input := `[
		{"action": "allow"},
		{"action": "disallow", "os": {"name": "osx"}},
		{"action": "allow", "features": {"is_demo_user": true}},
		{"action": "allow", "os": {"arch": "x86"}, "features": {"has_custom_resolution": true}}
	]`

	var got []Rule
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d rules, want 4", len(got))
	}

	if _, ok := got[0].Condition.(Always); !ok {
		t.Errorf("rule[0]: got %T, want Always", got[0].Condition)
	}
	if c, ok := got[1].Condition.(OSCondition); !ok || c.Name != "osx" || got[1].Action != Disallow {
		t.Errorf("rule[1]: got %+v", got[1])
	}
	if c, ok := got[2].Condition.(FeatureCondition); !ok || !c.Features["is_demo_user"] {
		t.Errorf("rule[2]: got %+v", got[2])
	}
	if c, ok := got[3].Condition.(AllOf); !ok || len(c) != 2 {
		t.Errorf("rule[3]: got %+v", got[3])
	}

	encoded, err := json.Marshal(got[3])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again Rule
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("unmarshal encoded rule: %v", err)
	}
	if c, ok := again.Condition.(AllOf); !ok || len(c) != 2 {
		t.Errorf("encoded rule lost its conditions: %s", encoded)
	}
}

func TestRule_UnmarshalJSON_InvalidAction(t *testing.T) {
	t.Parallel()

	var r Rule
	err := json.Unmarshal([]byte(`{"action": "maybe"}`), &r)
	if !errors.Is(err, ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
}
