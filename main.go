// Package main is the entry point for the depgroups CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The depgroups tool classifies project
// dependencies into configured named groups using include/exclude patterns.
package main

import "github.com/ajxudir/depgroups/cmd"

// main initializes and runs the depgroups CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like assign, groups, and version.
func main() {
	cmd.Execute()
}
