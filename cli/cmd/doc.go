// Package cmd implements the cmake-pm subcommands.
//
// Each command is a kong command struct with a Run(context.Context) error
// method. Commands find the [kong.Context] of the current invocation with
// [WithContext] and their I/O streams with [WithStreams].
package cmd

import (
	"github.com/alecthomas/kong"

	"github.com/ardnew/cmakepm/project"
)

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)

// Vars returns the kong variables interpolated into command flag defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"manifestName": project.ManifestName,
		"cmakeVersion": project.DefaultCMakeVersion,
	}
}
