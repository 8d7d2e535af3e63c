// Package config defines the scan configuration record consumed by the
// string-extraction engine, the builder that produces it, and the
// format-agnostic Profile model that configuration sources (such as HCL
// profile files or command-line flags) translate into.
//
// A Config is immutable once built. Concrete loaders for profile files are
// provided in separate packages and satisfy the Loader interface.
package config
