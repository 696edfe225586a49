// Package main is the entry point for the todo CLI. It loads configuration,
// wires the storage engine, services and terminal view with samber/do v2,
// and runs every command's completions on a main loop.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := newCLI(stdout, stderr)
	defer c.close()

	root := c.rootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		var shown *shownError
		if !errors.As(err, &shown) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

// shownError marks a failure the view has already presented to the user.
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }

func (e *shownError) Unwrap() error { return e.err }
