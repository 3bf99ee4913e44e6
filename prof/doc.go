// Package prof provides optional runtime profiling for the fp
// application.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime
// profiling capabilities with conditional compilation support. Profiling is
// optional and must be enabled at build time using the "pprof" build tag.
//
// When built with profiling disabled (default), all operations are no-ops
// with zero runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Using File-Based Profiling
//
// The profiler is configured through a [Config] and started with
// [Config.Start]:
//
//	ctrl := prof.Config(func() (string, string, bool) {
//	    return "cpu", "/tmp/profiles", false
//	}).Start()
//	defer ctrl.Stop()
//
// Profile files are written to the given directory with names matching the
// profiling mode (e.g., cpu.pprof, mem.pprof).
//
// # Command-Line Usage
//
// The fp command supports profiling through command-line flags when built
// with the pprof tag:
//
//	# Enable CPU profiling (writes to default cache directory)
//	./fp -pprof-mode cpu
//
//	# Enable heap profiling with custom output directory
//	./fp -pprof-mode heap -pprof-dir ./profiles
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/fp/pprof   (Linux/Unix)
//	~/Library/Caches/fp/pprof  (macOS)
//	%LocalAppData%\fp\pprof    (Windows)
//
// # Analyzing Profile Data
//
// Use the go tool pprof command to analyze profile data:
//
//	go tool pprof ./fp /tmp/profiles/cpu.pprof
//
// or launch the web UI:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
package prof

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
