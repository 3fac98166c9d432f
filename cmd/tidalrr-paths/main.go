package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/audio"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/catalog"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/config"
	ioutils "github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/io"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/logging"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/paths"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/plan"
)

func main() {
	// Command line flags
	var (
		configFlag       = flag.String("config", "", "Path to config file (JSON or YAML)")
		manifestFlag     = flag.String("manifest", "", "Path to the batch manifest")
		catalogFlag      = flag.String("catalog", "", "SQLite catalog to read and update artists from")
		outputFlag       = flag.String("output", "", "Download path (overrides config)")
		filenameOnlyFlag = flag.Bool("filename-only", false, "Print track file names without directories")
		playlistFlag     = flag.String("playlist-file", "", "Write a playlist file per album and playlist (m3u, pls, wpl, zpl)")
		extendedFlag     = flag.Bool("extended", true, "Write #EXTINF lines in M3U playlists")
		mkdirFlag        = flag.Bool("mkdir", false, "Create the planned album and playlist folders")
		jsonFlag         = flag.Bool("json", false, "Print the plan as JSON")
		logFormatFlag    = flag.String("log-format", "console", "Log format (console or json)")
		verboseFlag      = flag.Bool("verbose", false, "Show debug output")
	)

	flag.Parse()

	manifestPath := *manifestFlag
	if manifestPath == "" && flag.NArg() > 0 {
		manifestPath = flag.Arg(0)
	}
	if manifestPath == "" {
		fmt.Println("tidalrr-paths - Compute Plex-friendly paths for Tidal downloads")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tidalrr-paths -manifest <file> [options]")
		fmt.Println("  tidalrr-paths [options] <file>")
		fmt.Println()
		fmt.Println("To edit templates interactively, use: tidalrr-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config; without a file only defaults and TIDALRR_* apply
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *outputFlag != "" {
		settings.DownloadPath = *outputFlag
	}

	level := settings.LogLevel
	if *verboseFlag {
		level = "debug"
	}
	logger := logging.New(level, logging.Format(*logFormatFlag), os.Stderr)

	var playlistFormat audio.PlaylistFormat
	if *playlistFlag != "" {
		if playlistFormat, err = audio.ParsePlaylistFormat(*playlistFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if *filenameOnlyFlag {
			fmt.Fprintln(os.Stderr, "Error: -playlist-file needs full paths, drop -filename-only")
			os.Exit(1)
		}
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn().Msg("interrupted, cancelling")
		cancel()
	}()

	manifest, err := plan.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
		os.Exit(1)
	}
	logger.Debug().
		Int("albums", len(manifest.Albums)).
		Int("playlists", len(manifest.Playlists)).
		Int("artists", len(manifest.Artists)).
		Msg("manifest loaded")

	artists, closeCatalog, err := openCatalog(ctx, *catalogFlag, manifest.Artists)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}

	planner := plan.NewPlanner(settings, artists, logging.WithModule(logger, "plan"), plan.WithFilenameOnly(*filenameOnlyFlag))
	entries, err := planner.Plan(ctx, manifest)
	if err != nil {
		if ctx.Err() != nil {
			closeCatalog()
			fmt.Fprintln(os.Stderr, "Planning cancelled.")
			os.Exit(130)
		}
		closeCatalog()
		fmt.Fprintf(os.Stderr, "Error planning: %v\n", err)
		os.Exit(1)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing plan: %v\n", err)
			os.Exit(1)
		}
	} else {
		printPlan(entries)
	}

	if *mkdirFlag && !*filenameOnlyFlag {
		if err := createFolders(entries, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating folders: %v\n", err)
			os.Exit(1)
		}
	}

	if *playlistFlag != "" {
		creator := audio.NewPlaylistCreator(playlistFormat, *extendedFlag)
		if err := writePlaylists(ctx, creator, entries, logger); err != nil {
			if ctx.Err() != nil {
				os.Exit(130)
			}
			fmt.Fprintf(os.Stderr, "Error writing playlists: %v\n", err)
			os.Exit(1)
		}
	}

	closeCatalog()
	summary := plan.Summarize(entries)
	logger.Info().Int("planned", summary.Planned).Int("skipped", summary.Skipped).Msg("plan complete")
}

// openCatalog returns the artist lookup for the run, seeding it with the
// manifest artists.
func openCatalog(ctx context.Context, dsn string, artists []model.Artist) (paths.ArtistLookup, func(), error) {
	if dsn == "" {
		return catalog.NewMemory(artists...), func() {}, nil
	}

	store, err := catalog.Open(dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := store.SaveArtists(ctx, artists...); err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}

func printPlan(entries []plan.Entry) {
	for _, e := range entries {
		indent := ""
		if e.Kind == model.KindTrack {
			indent = "  "
		}
		if e.Skipped {
			fmt.Printf("%s! %s %s (%s): %s\n", indent, e.Kind, e.ID, e.Title, e.Reason)
			continue
		}
		fmt.Println(indent + e.Path)
	}
}

func createFolders(entries []plan.Entry, logger zerolog.Logger) error {
	for _, e := range entries {
		if e.Skipped || e.Kind == model.KindTrack {
			continue
		}
		if err := ioutils.EnsureDir(e.Path); err != nil {
			return err
		}
		logger.Debug().Str("path", e.Path).Msg("folder created")
	}
	return nil
}

func writePlaylists(ctx context.Context, creator *audio.PlaylistCreator, entries []plan.Entry, logger zerolog.Logger) error {
	for i, e := range entries {
		if e.Skipped || e.Kind == model.KindTrack {
			continue
		}

		pl := audio.Playlist{Title: e.Title, Artist: e.Artist, Folder: e.Path}
		for _, t := range plan.Tracks(entries, i) {
			if t.Skipped {
				continue
			}
			pl.Tracks = append(pl.Tracks, audio.Track{Path: t.Path, Title: t.Title, Artist: t.Artist, Duration: t.Duration})
		}
		if len(pl.Tracks) == 0 {
			continue
		}

		file := e.Path + "/" + creator.FileName(pl)
		if err := ioutils.WriteFile(ctx, file, []byte(creator.CreatePlaylist(pl))); err != nil {
			return err
		}
		logger.Info().Str("file", file).Int("tracks", len(pl.Tracks)).Msg("playlist written")
	}
	return nil
}
