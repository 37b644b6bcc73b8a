//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Profile the command (${enum})" placeholder:"MODE"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"      type:"path"`
}

// vars lists the profiling modes in the stable order [profile.Modes]
// returns them.
func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{
		Key:         "pprof",
		Title:       "Profiling (pprof)",
		Description: "Profile data is written to " + profile.Tag + " files under --pprof-dir.",
	}
}

func (f pprofConfig) profiler() profile.Profiler {
	return profile.Profiler{Mode: f.Mode, Path: f.Dir, Quiet: true}
}

func (f pprofConfig) attrs() slog.Attr {
	return slog.Group(profile.Tag,
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)
}

// start begins profiling the command when a mode is selected. The returned
// stop flushes the profile and is safe to call when profiling is off.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	log.DebugContext(ctx, "profiling started", f.attrs())

	p := f.profiler().Start()

	return func() {
		p.Stop()
		log.DebugContext(ctx, "profiling stopped", f.attrs())
	}
}
