// Package catalog stores the artists that path builders look up by ID.
//
// Two implementations are provided. Memory is a map guarded by a mutex and
// suits short-lived runs. Store persists artists in SQLite through GORM so a
// catalog can be reused across runs.
//
// Both satisfy paths.ArtistLookup.
//
// Example:
//
//	store, err := catalog.Open("catalog.db")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.SaveArtists(ctx, artists...)
//	builder := paths.NewBuilder(settings, store)
package catalog
