package main

import (
	"os"

	"arviewer/cmd/arviewer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
