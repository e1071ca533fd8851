// SPDX-License-Identifier: MPL-2.0

// Command hearth installs and launches Minecraft clients and servers.
package main

import cmd "github.com/hearthmc/hearth/cmd/hearth"

func main() {
	cmd.Execute()
}
