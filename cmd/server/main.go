package main

import (
	"os"

	"claimeval/cmd/server/commands"
)

// main hands off to the command tree. Business logic lives in internal
// packages; commands only wire them together.
func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
