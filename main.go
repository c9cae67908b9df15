package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"wmsession/internal/adapters/loopback"
	"wmsession/internal/cmd"
	"wmsession/internal/config"
	"wmsession/internal/version"
)

func main() {
	// Load settings from $WMSESSION_HOME/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("wmsession"),
		kong.Description(version.Tagline),
		kong.Vars{
			"loopback_vendor": loopback.DefaultVendor,
			"version":         version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.Close()
		os.Exit(1)
	}
}
