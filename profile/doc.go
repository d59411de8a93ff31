// Package profile starts and stops runtime profiling using
// github.com/pkg/profile.
//
// Profiling is only reachable from the command line when cmake-pm is built
// with the pprof build tag:
//
//	go build -tags pprof .
//	cmake-pm --pprof-mode=cpu --pprof-dir=/tmp/prof add-class widget
package profile

// Tag is the build tag and flag prefix that enables profiling.
const Tag = `pprof`
