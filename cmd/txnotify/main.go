package main

import (
	"os"

	"github.com/txnotify-dev/txnotify/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
