// Package cli contains the command line interface for jspr.
//
// # Usage
//
// The default command loads a JSON or YAML document, evaluates it as a
// do-sequence against a root environment seeded with the kernel special
// forms, and prints the resulting value. Source files are given with
// --source; with none, the document is read from stdin. The command takes
// no positional file name, and a bare "-" argument is not accepted:
//
//	jspr --source program.yml
//	cat program.json | jspr
//
// Subcommands reformat a document ([cmd.Fmt]) or run YAML test fixtures
// ([cmd.Test]) against the evaluator.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-output: Redirect log output to one or more files ('-' for stderr)
//   - --log-callsite: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o jspr .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/jspr/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	jspr --log-level=debug --pprof-mode=cpu --source program.yml
//
//	# Reformat a YAML document as JSON
//	jspr fmt --format json program.yml
//
//	# Run fixtures under a directory
//	jspr test ./testdata
package cli
