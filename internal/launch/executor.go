// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/pkg/manifest"
	"github.com/hearthmc/hearth/pkg/platform"
)

type (
	// Install is an install root loaded for launching.
	Install struct {
		// Root is absolute with symlinks resolved.
		Root    string
		Profile *layout.Profile
		Options *layout.LaunchOptions
		// Lock and Manifest are nil for server installs.
		Lock     *layout.Lock
		Manifest *manifest.ClientManifest
		Facts    platform.Facts
	}

	// Defaults are global settings that launch options may override.
	Defaults struct {
		Java    string
		JVMArgs []string
	}
)

// Open loads the profile, launch options and, for clients, the lock and the
// cached base manifest of the install at root.
func Open(root string) (*Install, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving install root: %w", err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolving install root: %w", err)
	}
	r := layout.Root(canonical)

	profile, err := layout.ReadProfile(r.Profile())
	if err != nil {
		return nil, err
	}
	opts, err := layout.ReadLaunchOptions(r.LaunchOptions())
	if err != nil {
		return nil, err
	}

	in := &Install{
		Root:    canonical,
		Profile: profile,
		Options: opts,
		Facts: platform.Detect(map[string]bool{
			platform.FeatureCustomResolution: opts.HasResolution(),
			platform.FeatureDemoUser:         opts.Demo,
		}),
	}
	if profile.Target != layout.TargetClient {
		return in, nil
	}

	if in.Lock, err = layout.ReadLock(r.Lock()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingLock, err)
	}
	var m manifest.ClientManifest
	if err := layout.ReadJSON(r.BaseManifest(), &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingManifest, err)
	}
	in.Manifest = &m
	return in, nil
}

// Args computes the command line. The java executable is taken from the
// launch options, then d, then DefaultJava. Extra JVM arguments are d's
// followed by the launch options'.
func (in *Install) Args(acct *Account, d Defaults) ([]string, error) {
	java := in.Options.Java
	if java == "" {
		java = d.Java
	}
	local, err := in.Options.SplitJVMArgs()
	if err != nil {
		return nil, err
	}
	extra := append(append([]string{}, d.JVMArgs...), local...)

	if in.Profile.Target == layout.TargetServer {
		return BuildServer(ServerRequest{
			Java:         java,
			ExtraJVMArgs: extra,
			BaseVersion:  in.Profile.Minecraft,
			Overlay:      in.Profile.HasOverlay(),
		}), nil
	}

	req := ClientRequest{
		Root:         in.Root,
		Java:         java,
		Account:      acct,
		Lock:         in.Lock,
		Manifest:     in.Manifest,
		Facts:        in.Facts,
		ExtraJVMArgs: extra,
	}
	if in.Options.HasResolution() {
		req.Width, req.Height = in.Options.Width, in.Options.Height
	}
	return BuildClient(req)
}

// Launch computes the command line and starts it in the install root.
func (in *Install) Launch(ctx context.Context, l *Launcher, acct *Account, d Defaults) (*Process, error) {
	args, err := in.Args(acct, d)
	if err != nil {
		return nil, err
	}
	return l.Start(ctx, args, in.Root)
}
