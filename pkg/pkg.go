//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the cmake-pm module embedded at build
// time.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command identifier. It appears in help text, the
	// default config paths and the environment variable prefix.
	Name = "cmake-pm"
	// Description is a short, human-readable summary used in help output.
	Description = "Minimal CMake project scaffolding"
)

// EnvPrefix returns the prefix of environment variables mapped onto
// command-line flags, e.g. "CMAKE_PM".
func EnvPrefix() string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(Name))
}

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
