package main

import (
	"os"

	"github.com/jo-hoe/goadvent/cmd/goadvent/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
