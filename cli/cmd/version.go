package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/stache/pkg"
)

// Version prints the program version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	_, err := fmt.Fprintln(outputFrom(ctx), pkg.Name, strings.TrimSpace(pkg.Version))
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
