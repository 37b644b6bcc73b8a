// Package profile provides optional runtime profiling for stache.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Profiler.Start] returns a no-op and [Modes] is empty.
//
// A profiler writes its data under [Profiler.Path] in a file named after its
// mode (cpu.pprof, mem.pprof, and so on). Analyze it with go tool pprof:
//
//	go tool pprof -http=: ~/.cache/stache/pprof/cpu.pprof
//
// Building with the tag also registers the [net/http/pprof] handlers on
// [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Profiler describes a profiling session.
type Profiler struct {
	Mode  string // one of [Modes]; "" disables profiling
	Path  string // output directory; "" selects a temporary directory
	Quiet bool   // suppress the profiler's own log messages
}

// Start begins profiling and returns a handle for stopping it.
//
// Start returns a no-op handle if Mode is empty or unknown, or if the program
// was built without the pprof tag. Stop is always safe to call.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
