// Package project scaffolds C++ projects built with CMake and edits their
// manifests.
//
// A project is a directory holding a [ManifestName] file. [Create] makes a new
// one with a hello-world program, and [AddClass] adds a source and header
// pair to an existing one, registering both with the manifest's
// add_executable statement.
//
// Manifest text is read and written through [LoadManifest] and
// [StoreManifest]; parsing and rendering are done by package manifest.
package project
