// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured at creation time using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// Every level has a context-aware and a context-unaware variant. The
// context-unaware variants use [DefaultContextProvider].
//
// # Pretty Output
//
// With [WithPretty] enabled (the default), text output is written as
// unquoted key=value pairs and JSON output as an indented object. Keys and
// values are colorized with lipgloss when the output is a terminal.
//
// # Package Logger
//
// The package-level functions ([Info], [Debug], ...) write through a default
// logger on stderr, reconfigured with [Config]. The cmake-pm command line
// reconfigures it from its --log-* flags.
package log
