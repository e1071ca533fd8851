// SPDX-License-Identifier: MPL-2.0

package expand

import (
	"slices"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{"unbound expands to empty", "${a}-${b}", map[string]string{"a": "1"}, "1-"},
		{"not recursive", "${a}", map[string]string{"a": "${b}", "b": "x"}, "${b}"},
		{"no markers", "--demo", nil, "--demo"},
		{"embedded marker", "-Djava.library.path=${natives_directory}", map[string]string{"natives_directory": "/n"}, "-Djava.library.path=/n"},
		{"unterminated marker kept", "${abc", map[string]string{"abc": "x"}, "${abc"},
		{"empty braces kept", "${}", nil, "${}"},
		{"repeated", "${a}${a}", map[string]string{"a": "z"}, "zz"},
		{"nil vars", "${a}", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Expand(tt.template, tt.vars); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	in := []string{"--username", "${auth_player_name}", "--uuid", "${auth_uuid}"}
	got := All(in, map[string]string{"auth_player_name": "Steve"})
	want := []string{"--username", "Steve", "--uuid", ""}

	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
	if in[1] != "${auth_player_name}" {
		t.Error("All must not modify its input")
	}
}
