//go:build pprof

package profile

import (
	"slices"
	"testing"
)

func TestModes(t *testing.T) {
	t.Parallel()

	for _, m := range []string{"cpu", "heap", "trace"} {
		if !slices.Contains(Modes(), m) {
			t.Errorf("Modes() missing %q", m)
		}
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	if got := options(Profiler{Mode: "cpu"}); len(got) != 2 {
		t.Errorf("options(cpu) returned %d options, want 2", len(got))
	}

	if got := options(Profiler{Mode: "cpu", Path: "/tmp", Quiet: true}); len(got) != 4 {
		t.Errorf("options(cpu, path, quiet) returned %d options, want 4", len(got))
	}

	if got := options(Profiler{Mode: "bogus"}); got != nil {
		t.Errorf("options(bogus) = %v, want nil", got)
	}
}
