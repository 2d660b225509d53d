// Command syncd runs the sync tracking service: the ops HTTP surface
// (health, metrics, error report, work requests, access key checks) and
// the temporary credential reaper.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) overlaid
// by environment variables. SIGINT or SIGTERM triggers graceful shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/evekit/synctrack/internal/app"
)

func main() {
	flags := pflag.NewFlagSet("syncd", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to YAML config (overrides CONFIG_PATH)")
	showVersion := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if *showVersion {
		fmt.Println(app.BuildVersion())
		return
	}
	if *configPath != "" {
		os.Setenv("CONFIG_PATH", *configPath) //nolint:errcheck
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
