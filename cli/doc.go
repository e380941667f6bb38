// Package cli contains the command line interface for exprc.
//
// # Usage
//
// The CLI provides logging and profiling configuration alongside the
// parser subcommands:
//
//	exprc --log-level=debug parse '$foo.bar[0]'
//
// # Commands
//
//   - parse: parse one expression source string with a chosen entry point
//     and print the resulting AST
//   - check: run a YAML fixture file of expression sources against the
//     parser and report which cases matched their declared outcome
//   - repl: an interactive read-eval-print loop that parses each line typed
//     and prints its AST; it never evaluates anything
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-callsite: Include callsite information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o exprc .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/exprc/pprof)
//
// # Examples
//
//	# Parse a data reference and print its AST
//	exprc parse --entry=dataref '$foo.bar[0]'
//
//	# Run fixtures with debug logging
//	exprc --log-level=debug check testdata/fixtures.yaml
//
//	# Text format logs with CPU profiling
//	exprc --log-format=text --pprof-mode=cpu parse '$x + 1'
package cli
