package main

import (
	"fmt"
	"os"

	"github.com/ytget/spotmobile/internal/app"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	fmt.Printf("%s v%s starting...\n", app.AppName, version)

	if err := app.Run(app.Options{Version: version}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
