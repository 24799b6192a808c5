package main

import (
	"github.com/ytget/psy/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// main is the entry point used by `fyne package` for desktop and mobile builds
func main() {
	ui.Run(version)
}
