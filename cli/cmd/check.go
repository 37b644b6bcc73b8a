package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/mustache"
)

// Check compiles and parses templates without rendering them.
type Check struct {
	Templates []string `arg:"" help:"Template files to check." name:"template"`
}

// Run executes the check command.
//
// Every template is checked even after a failure. The command fails with
// [ErrCheckFailed] if any template does not parse, or with [ErrWriteOutput]
// as soon as a status line cannot be written.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	w := outputFrom(ctx)
	re := lipgloss.NewRenderer(w)
	okStyle := re.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle := re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	hintStyle := re.NewStyle().Foreground(lipgloss.Color("8"))

	var failed int

	for _, path := range c.Templates {
		text, err := readTemplate(ctx, path)
		if err == nil {
			_, err = mustache.New(text, mustache.WithLogger(log.Default()))
		}

		if err != nil {
			failed++

			log.DebugContext(ctx, "template check failed",
				slog.String("template", path),
				slog.Any("error", mustache.WrapError(err)))

			_, err = fmt.Fprintf(w, "%s %s %s\n",
				failStyle.Render("FAIL"), path, hintStyle.Render(err.Error()))
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", okStyle.Render("ok  "), path)
		}

		if err != nil {
			return ErrWriteOutput.Wrap(err).With(slog.String("template", path))
		}
	}

	if failed > 0 {
		return ErrCheckFailed.With(
			slog.Int("failed", failed),
			slog.Int("total", len(c.Templates)),
		)
	}

	return nil
}
