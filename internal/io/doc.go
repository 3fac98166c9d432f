// Package ioutils provides the file system helpers used by the commands.
//
// The path builders never touch the file system; these helpers are how the
// commands materialize a plan:
//
//	// Create a planned folder
//	err := ioutils.EnsureDir("/music/Daft Punk/Discovery [1] [2001]")
//
//	// Write a playlist file, creating its folder
//	err := ioutils.WriteFile(ctx, "/music/Playlist/Mix/Mix.m3u", content)
package ioutils
