// Package main is the entry point for the llcheck CLI.
package main

import (
	"os"

	"github.com/thoreinstein/llcheck/cmd/llcheck/commands"
)

func main() {
	os.Exit(commands.Execute())
}
