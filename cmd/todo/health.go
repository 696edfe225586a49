package main

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

func (c *cli) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the storage backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.reportHealth(cmd.Context(), do.MustInvoke[ports.HealthRegistry](c.injector))
		},
	}
}

// reportHealth prints one line per component and fails when any is unhealthy.
func (c *cli) reportHealth(ctx context.Context, registry ports.HealthRegistry) error {
	unhealthy := 0
	for _, s := range registry.Report(ctx) {
		if s.Healthy() {
			fmt.Fprintf(c.stdout, "ok    %-16s %s\n", s.Name, s.Elapsed.Round(time.Microsecond))
			continue
		}
		unhealthy++
		fmt.Fprintf(c.stdout, "FAIL  %-16s %v\n", s.Name, s.Err)
	}
	if unhealthy > 0 {
		return &shownError{err: fmt.Errorf("%d unhealthy components", unhealthy)}
	}
	return nil
}
