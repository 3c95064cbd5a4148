// SPDX-License-Identifier: MIT
//
// File: main.go
// Role: pathboard binary entry point.

// Command pathboard serves the interactive shortest-path canvas and replays
// scripted sessions from the command line.
package main

import "github.com/katalvlaran/pathboard/cmd/pathboard/commands"

func main() {
	commands.Execute()
}
