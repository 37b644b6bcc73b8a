package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stache/cli/cmd"
	"github.com/ardnew/stache/pkg"
)

// CLI is the top-level command-line interface for stache.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Render  cmd.Render  `cmd:"" default:"withargs" help:"Render a template (default)"`
	Check   cmd.Check   `cmd:""                    help:"Check that templates parse"`
	Tree    cmd.Tree    `cmd:""                    help:"Print the node tree of a template"`
	Tokens  cmd.Tokens  `cmd:""                    help:"Print the token sequence of a template"`
	Init    cmd.Init    `cmd:""                    help:"Initialize configuration file"`
	Version cmd.Version `cmd:""                    help:"Print version"`
}

// Run executes the stache CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	return run(ctx, exit, configPath(baseConfig+configExt), args...)
}

// run parses args with configuration read from configFile and executes the
// selected command.
func run(
	ctx context.Context,
	exit func(code int),
	configFile string,
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFile,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong parses anything so that messages logged
	// during parsing already use them.
	cli.Log.scan(args)

	groups := []kong.Group{cli.Log.group()}
	if g := cli.Pprof.group(); g.Key != "" {
		groups = append(groups, g)
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFile),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Values from the configuration file are only known after parsing.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
