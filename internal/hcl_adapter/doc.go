// Package hcl_adapter provides the HCL implementation of the config.Loader
// interface. It parses profile files, evaluates their expressions against a
// cty evaluation context and translates the result into a config.Profile.
//
// A profile file contains up to one "scan" and one "display" block:
//
//	scan {
//	  encoding   = "l"
//	  min_length = 8
//	  charset    = "windows-1252"
//	}
//
//	display {
//	  radix     = "x"
//	  unicode   = "escape"
//	  separator = env.STRINGS_SEPARATOR
//	}
//
// Environment variables are available as attributes of the "env" object.
package hcl_adapter
