// SPDX-License-Identifier: MPL-2.0

package layout

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"mvdan.cc/sh/v3/shell"
)

// LaunchOptions are per-install launch settings the user may edit.
type LaunchOptions struct {
	// Java overrides the java executable.
	Java string `toml:"java,omitempty"`
	// JVMArgs is a shell-quoted string of extra JVM arguments.
	JVMArgs string `toml:"jvm_args,omitempty"`
	// Width and Height set a custom window size when both are positive.
	Width  int  `toml:"width,omitempty"`
	Height int  `toml:"height,omitempty"`
	Demo   bool `toml:"demo,omitempty"`
}

// ReadLaunchOptions reads launch.toml. A missing file yields the zero value.
func ReadLaunchOptions(path string) (*LaunchOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &LaunchOptions{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", LaunchOptionsFile, err)
	}

	var o LaunchOptions
	if err := toml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", LaunchOptionsFile, err)
	}
	return &o, nil
}

// WriteLaunchOptions writes launch.toml.
func WriteLaunchOptions(path string, o *LaunchOptions) error {
	data, err := toml.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", LaunchOptionsFile, err)
	}
	return writeFileAtomic(path, data)
}

// HasResolution reports whether a custom window size is set.
func (o *LaunchOptions) HasResolution() bool {
	return o.Width > 0 && o.Height > 0
}

// SplitJVMArgs splits JVMArgs with shell quoting rules. Environment
// references such as $HOME are expanded from the current environment.
func (o *LaunchOptions) SplitJVMArgs() ([]string, error) {
	if o.JVMArgs == "" {
		return nil, nil
	}
	fields, err := shell.Fields(o.JVMArgs, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: jvm_args: %w", LaunchOptionsFile, err)
	}
	return fields, nil
}
