package main

import "github.com/makebytes/makebytes/cmd"

// main is the entry point of the makebytes CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
