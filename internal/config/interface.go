package config

import "context"

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads profiles from the given paths (files or directories) and
	// merges them, later paths taking precedence, into one Profile.
	Load(ctx context.Context, paths ...string) (*Profile, error)
}
