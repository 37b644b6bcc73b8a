// Package cmd implements the stache subcommands.
//
// Each command is a kong command struct whose Run method receives the
// process [context.Context]. Values shared between the top-level parser and
// the commands travel in that context: the parsed [kong.Context] (see
// [WithContext]) and the writer that receives command output (see
// [WithOutput]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
