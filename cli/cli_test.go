package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stache/cli/cmd"
	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/pkg"
)

// Tests in this file reconfigure the default logger and must not run in
// parallel.

func runCLI(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	ctx := cmd.WithOutput(context.Background(), &buf)

	err := run(ctx, func(code int) { t.Fatalf("unexpected exit(%d)", code) }, configFile, args...)

	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestRunVersion(t *testing.T) {
	restoreDefaultLogger(t)

	out, err := runCLI(t, filepath.Join(t.TempDir(), "config.yaml"), "version")
	if err != nil {
		t.Fatalf("run(version) error = %v", err)
	}

	want := pkg.Name + " " + strings.TrimSpace(pkg.Version) + "\n"
	if out != want {
		t.Errorf("run(version) wrote %q, want %q", out, want)
	}
}

func TestRunRenderDefault(t *testing.T) {
	restoreDefaultLogger(t)

	dir := t.TempDir()
	tmpl := filepath.Join(dir, "page.mustache")
	data := filepath.Join(dir, "data.yaml")

	writeFile(t, tmpl, "{{#people}}<{{name}}>{{/people}}{{>footer}}{{label}}")
	writeFile(t, filepath.Join(dir, "footer.mustache"), "|{{count}}")
	writeFile(t, data, "people:\n  - name: a & b\n  - name: c\n")

	out, err := runCLI(t, filepath.Join(dir, "config.yaml"),
		tmpl, "-d", data, "-s", "count=len(people)", "-s", `label=join(["x", "y"], "+")`)
	if err != nil {
		t.Fatalf("run(render) error = %v", err)
	}

	want := "<a &amp; b><c>|2x+y"
	if out != want {
		t.Errorf("run(render) wrote %q, want %q", out, want)
	}
}

func TestRunConfigFile(t *testing.T) {
	restoreDefaultLogger(t)

	dir := t.TempDir()
	conf := filepath.Join(dir, "config.yaml")
	writeFile(t, conf, "log:\n  level: error\n  format: json\n")

	_, err := runCLI(t, conf, "version")
	if err != nil {
		t.Fatalf("run(version) error = %v", err)
	}

	if got := log.Default().Level(); got != log.LevelError {
		t.Errorf("log level = %v, want error from config file", got)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("log format = %v, want json from config file", got)
	}

	_, err = runCLI(t, conf, "--log-level=debug", "version")
	if err != nil {
		t.Fatalf("run(version) error = %v", err)
	}

	if got := log.Default().Level(); got != log.LevelDebug {
		t.Errorf("log level = %v, command line should override config", got)
	}
}

func TestRunInit(t *testing.T) {
	restoreDefaultLogger(t)

	conf := filepath.Join(t.TempDir(), "config.yaml")

	_, err := runCLI(t, conf, "--log-level=warn", "init")
	if err != nil {
		t.Fatalf("run(init) error = %v", err)
	}

	content, err := os.ReadFile(conf)
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(content, &got); err != nil {
		t.Fatalf("invalid config YAML: %v\n%s", err, content)
	}

	if got["log-level"] != "warn" {
		t.Errorf("config log-level = %v\n%s", got["log-level"], content)
	}

	_, err = runCLI(t, conf, "init")
	if !errors.Is(err, cmd.ErrFileExists) {
		t.Errorf("second run(init) error = %v, want ErrFileExists", err)
	}

	_, err = runCLI(t, conf, "init", "--force")
	if err != nil {
		t.Errorf("run(init --force) error = %v", err)
	}
}

func TestRunCheckFails(t *testing.T) {
	restoreDefaultLogger(t)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.mustache")
	writeFile(t, bad, "{{/oops}}")

	out, err := runCLI(t, filepath.Join(dir, "config.yaml"), "check", bad)
	if !errors.Is(err, cmd.ErrCheckFailed) {
		t.Errorf("run(check) error = %v, want ErrCheckFailed", err)
	}

	if !strings.Contains(out, "FAIL") {
		t.Errorf("run(check) wrote %q", out)
	}
}
