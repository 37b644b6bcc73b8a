// Package cli contains the command line interface for stache.
//
// # Usage
//
// Rendering is the default command, so a template path alone is enough:
//
//	stache page.mustache -d site.yaml -d local.json -s 'title=upper(site.name)'
//
// Partials are loaded from the template's directory unless --partials names
// another one. A missing partial renders as nothing and is logged along with
// the closest partial names found on disk.
//
// The other commands inspect templates without rendering them:
//
//	stache check templates/*.mustache
//	stache tree --format=yaml page.mustache
//	stache tokens page.mustache
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration directory
// (for example ~/.config/stache/config.yaml). Keys are flag names; nested
// mappings are joined with hyphens and underscores may replace hyphens.
// "stache init" writes the current flag values to that file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// Logging flags take effect before any other flag is parsed, wherever they
// appear on the command line.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/stache/pprof)
package cli
