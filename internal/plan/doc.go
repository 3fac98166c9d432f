// Package plan computes the output paths of a whole batch of albums and
// playlists.
//
// A batch is described by a Manifest: the Tidal documents of each album or
// playlist and of their tracks, along with the playback info of every
// track. The Planner turns it into an ordered list of entries, one per
// album, playlist and track, carrying either the computed path or the
// reason the item was skipped.
//
// # Basic Usage
//
//	manifest, err := plan.LoadManifest("batch.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	planner := plan.NewPlanner(settings, catalog.NewMemory(manifest.Artists...), logger)
//	entries, err := planner.Plan(ctx, manifest)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range entries {
//	    fmt.Println(e.Path)
//	}
//
// # Concurrency
//
// Paths are computed by at most Settings.MaxConcurrentPaths goroutines.
// Entries keep manifest order regardless of completion order.
package plan
