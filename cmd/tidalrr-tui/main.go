package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/config"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/plan"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/tui"
)

func main() {
	var (
		configFlag   = flag.String("config", "", "Path to config file; ctrl+s saves back to it")
		manifestFlag = flag.String("manifest", "", "Batch manifest to preview and plan")
	)
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	opts := tui.Options{Settings: settings, ConfigPath: *configFlag}

	if *manifestFlag != "" {
		manifest, err := plan.LoadManifest(*manifestFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
			os.Exit(1)
		}
		opts.Manifest = manifest
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
