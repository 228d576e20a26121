package main

import (
	"os"

	"github.com/svanharmelen/jira/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
