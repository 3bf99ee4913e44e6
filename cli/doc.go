// Package cli contains the command line interface for fp.
//
// # Usage
//
// The CLI exposes the resolution engine through two subcommands:
//
//	# Resolve all variables for a consumer and profile
//	fp resolve -c myapp -p RedHat-9 --profiles RedHat-9,Debian-12 \
//	    --defaults ./layers/defaults --instant ./layers/instant \
//	    --deferred ./layers/deferred
//
//	# Resolve, then render one deferred variable
//	fp render current_status -c monitor -p PROD --profiles PROD \
//	    --defaults ./layers/defaults --instant skip --deferred ./layers/deferred
//
// Layer paths accept the literal value "skip" to exclude a layer from the
// resolution entirely.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/fp/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	fp --log-level=debug --pprof-mode=cpu resolve ...
//
//	# Text format with heap profiling
//	fp --log-format=text --pprof-mode=heap resolve ...
package cli
