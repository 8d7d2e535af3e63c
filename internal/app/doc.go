// Package app contains the application logic of gstrings. It resolves the
// effective configuration from profiles and overrides, opens the requested
// sources, runs one extraction pipeline per source and writes the resulting
// records in source order, decoupled from any specific entrypoint like a CLI.
package app
