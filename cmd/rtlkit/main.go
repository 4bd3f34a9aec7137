package main

import (
	"os"

	"github.com/tsawler/rtlkit/cmd/rtlkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
