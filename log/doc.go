// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers take only [slog.Attr] values, never loose key-value pairs, and add
// a [LevelTrace] severity below [LevelDebug].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("template rendered", slog.String("name", "page"))
//	logger.Error("render failed", slog.Any("error", err))
//
// # Configuration
//
// Configuration is fixed when a [Logger] is made. Use functional options to
// change it, and [Logger.Wrap] to derive a logger with different settings:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// # Package-Level Logging
//
// The package-level functions ([Info], [Warn], ...) write through a default
// logger that writes to standard error. [Config] reconfigures it in place.
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and
// [FormatJSON]. With [WithPretty] enabled, which is the default, both are
// colorized when the output is a terminal.
//
// # Zero Value
//
// The zero [Logger] discards everything, so a Logger can be embedded in
// option structs without initialization.
package log
