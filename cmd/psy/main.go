package main

import (
	"os"

	"github.com/ytget/psy/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
