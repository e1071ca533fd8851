// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"path/filepath"
	"strconv"

	"github.com/hearthmc/hearth/internal/classpath"
	"github.com/hearthmc/hearth/internal/expand"
	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/rules"
	"github.com/hearthmc/hearth/pkg/manifest"
	"github.com/hearthmc/hearth/pkg/platform"
)

// DefaultJava is the runtime executable used when none is configured.
const DefaultJava = "java"

// Template variables seeded by the builder.
const (
	VarClasspath        = "classpath"
	VarUserType         = "user_type"
	VarAuthUUID         = "auth_uuid"
	VarAuthPlayerName   = "auth_player_name"
	VarAuthAccessToken  = "auth_access_token"
	VarGameDirectory    = "game_directory"
	VarNativesDirectory = "natives_directory"
	VarResolutionWidth  = "resolution_width"
	VarResolutionHeight = "resolution_height"
)

const userTypeMojang = "mojang"

type (
	// ClientRequest holds everything needed to compute a client command line.
	ClientRequest struct {
		// Root is the canonical install root.
		Root     string
		Java     string
		Account  *Account
		Lock     *layout.Lock
		Manifest *manifest.ClientManifest
		Facts    platform.Facts
		// ExtraJVMArgs follow the manifest JVM arguments.
		ExtraJVMArgs []string
		// Width and Height bind the resolution variables when both are set.
		Width  int
		Height int
	}

	// ServerRequest holds everything needed to compute a server command line.
	ServerRequest struct {
		Java         string
		ExtraJVMArgs []string
		// BaseVersion names the vanilla server jar.
		BaseVersion string
		// Overlay selects the overlay jar instead.
		Overlay bool
	}
)

// BuildClient returns
//
//	[java] ++ jvm args ++ extra jvm args ++ [main class] ++ game args
//
// with arguments filtered by their rules and expanded against ClientVars.
func BuildClient(req ClientRequest) ([]string, error) {
	vars, err := ClientVars(req)
	if err != nil {
		return nil, err
	}

	eval := func(r []rules.Rule) bool { return rules.Applies(r, req.Facts) }
	jvm := expand.All(req.Lock.Start.JVMArguments.Admitted(eval), vars)
	game := expand.All(req.Lock.Start.GameArguments.Admitted(eval), vars)

	args := make([]string, 0, 2+len(jvm)+len(req.ExtraJVMArgs)+len(game))
	args = append(args, javaOrDefault(req.Java))
	args = append(args, jvm...)
	args = append(args, req.ExtraJVMArgs...)
	args = append(args, req.Lock.Start.MainClass)
	args = append(args, game...)
	return args, nil
}

// ClientVars computes the template variables of a client launch. Lock
// variables override the seeded defaults. An unset natives directory means
// the natives directory of the layout, and a relative one is made absolute
// under the root.
func ClientVars(req ClientRequest) (map[string]string, error) {
	switch {
	case req.Account == nil:
		return nil, ErrMissingAccount
	case req.Lock == nil:
		return nil, ErrMissingLock
	case req.Manifest == nil:
		return nil, ErrMissingManifest
	case req.Account.UUID == "":
		return nil, &MissingAccountFieldError{Field: "uuid"}
	case req.Account.DisplayName == "":
		return nil, &MissingAccountFieldError{Field: "display name"}
	}

	cp := classpath.Resolve(classpath.Input{
		Extra:     req.Lock.Start.ExtraLibraries,
		Libraries: req.Manifest.Libraries,
		GameJar:   layout.ClientJar,
	}, req.Facts)

	vars := map[string]string{
		VarClasspath:       classpath.Join(req.Root, cp),
		VarUserType:        userTypeMojang,
		VarAuthUUID:        req.Account.UUID,
		VarAuthPlayerName:  req.Account.DisplayName,
		VarAuthAccessToken: req.Account.AccessToken,
		VarGameDirectory:   req.Root,
	}
	if req.Width > 0 && req.Height > 0 {
		vars[VarResolutionWidth] = strconv.Itoa(req.Width)
		vars[VarResolutionHeight] = strconv.Itoa(req.Height)
	}
	for k, v := range req.Lock.Vars {
		vars[k] = v
	}

	if vars[VarNativesDirectory] == "" {
		vars[VarNativesDirectory] = layout.NativesDir
	}
	if natives := vars[VarNativesDirectory]; !filepath.IsAbs(natives) {
		vars[VarNativesDirectory] = filepath.Join(req.Root, filepath.FromSlash(natives))
	}
	return vars, nil
}

// BuildServer returns [java] ++ extra jvm args ++ ["-jar", jar, "-nogui"].
func BuildServer(req ServerRequest) []string {
	jar := layout.ServerJar(req.BaseVersion)
	if req.Overlay {
		jar = layout.OverlayJar
	}

	args := make([]string, 0, 4+len(req.ExtraJVMArgs))
	args = append(args, javaOrDefault(req.Java))
	args = append(args, req.ExtraJVMArgs...)
	return append(args, "-jar", jar, "-nogui")
}

func javaOrDefault(java string) string {
	if java == "" {
		return DefaultJava
	}
	return java
}
