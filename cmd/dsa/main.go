// Package main provides the entry point for the dsa CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/Aldrin-Shanty/DSA/cmd/dsa/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
