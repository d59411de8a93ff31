// Package cli contains the command line interface for cmake-pm.
//
// # Usage
//
//	cmake-pm new NAME [--cmake-version=3.30] [--dir=.]
//	cmake-pm add-class NAME [--dir=.]
//	cmake-pm reload
//	cmake-pm fmt [native|json|yaml] [SOURCE] [--where=EXPR]
//	cmake-pm init [--force]
//
// # Configuration
//
// Flag values are resolved from, in increasing order of precedence:
//
//   - built-in defaults
//   - config.json and config.yaml in the configuration directory
//     (e.g. ~/.config/cmake-pm)
//   - environment variables named CMAKE_PM_<FLAG>, e.g. CMAKE_PM_LOG_LEVEL,
//     including variables loaded from a .env file in the working directory
//   - command-line flags
//
// The init command writes config.yaml with the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time: Set timestamp format (RFC3339, Kitchen, none, or a Go layout)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o cmake-pm .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/cmake-pm/pprof)
package cli
