package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/spotmobile/internal/app"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := app.Options{Version: version}

	cmd := &cobra.Command{
		Use:     "spotmobile",
		Short:   "Spotmobile is a small Spotify client for phones and desktops.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return app.Run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.PlaylistID, "playlist", "p", "", "playlist ID, spotify URI or open.spotify.com link to open on start")
	cmd.Flags().StringSliceVar(&opts.EnvFiles, "env-file", nil, "dotenv files to load (default .env)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	return cmd
}
