// SPDX-License-Identifier: MPL-2.0

// Package layout describes the on-disk shape of an install root and reads
// and writes the files hearth keeps there.
//
//	<root>/
//	  hearth.cue               profile: target and pinned versions (CUE)
//	  minecraft.jar            client game jar, or minecraft_server.<id>.jar
//	  forge.jar                server overlay jar
//	  libraries/...            maven-layout libraries
//	  natives/                 extracted native libraries
//	  assets/{indexes,objects} game resources
//	  .hearth/
//	    client.json            launch lock (client installs only)
//	    minecraft.json         cached base manifest
//	    forge.json             cached overlay manifest
//	    launch.toml            user-editable launch options
package layout
