// SPDX-License-Identifier: MPL-2.0

package layout

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/hearthmc/hearth/pkg/cueutil"
)

//go:embed profile_schema.cue
var profileSchema []byte

// Profile records what an install root holds. Versions are the concrete
// versions the install resolved to, never channel selectors.
type Profile struct {
	Target    Target `json:"target"`
	Minecraft string `json:"minecraft"`
	Forge     string `json:"forge,omitempty"`
}

// HasOverlay reports whether the install carries an overlay.
func (p *Profile) HasOverlay() bool { return p.Forge != "" }

// ReadProfile parses and validates hearth.cue.
func ReadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ProfileFile, err)
	}
	res, err := cueutil.ParseAndDecode[Profile](profileSchema, data, "#Profile", cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// WriteProfile writes p as CUE.
func WriteProfile(path string, p *Profile) error {
	return writeFileAtomic(path, []byte(GenerateProfileCUE(p)))
}

// GenerateProfileCUE renders p in the hearth.cue format.
func GenerateProfileCUE(p *Profile) string {
	var sb strings.Builder
	sb.WriteString("// Generated by hearth install. Re-run install to change versions.\n\n")
	fmt.Fprintf(&sb, "target:    %q\n", p.Target)
	fmt.Fprintf(&sb, "minecraft: %q\n", p.Minecraft)
	if p.Forge != "" {
		fmt.Fprintf(&sb, "forge:     %q\n", p.Forge)
	}
	return sb.String()
}
