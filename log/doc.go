// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable log level, output format, time layout,
// and caller information, all applied with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("resolution complete", slog.String("profile", "RedHat-9"))
//
// A package-level default logger writing to stderr is available through
// the top-level functions ([Info], [Error], ...) and is reconfigured with
// [Config]. The CLI configures it from command-line flags before any
// command runs.
//
// Two output formats are supported, [FormatJSON] (default) and
// [FormatText]. When pretty printing is enabled the text format is
// colorized with lipgloss styles.
package log
