package main

import (
	"os"

	"github.com/fiskal-dev/fiskal/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
