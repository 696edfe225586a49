package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/terminal"
	"github.com/jsamuelsen11/go-todo-lists/internal/app/engine"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/dispatch"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

const (
	defaultProfile   = "local"
	defaultConfigDir = "configs"
	profileEnv       = "APP_PROFILE"
)

var (
	errNoMatch   = errors.New("no match")
	errAmbiguous = errors.New("ambiguous reference")
)

// cli holds the state shared by every command of one invocation.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	profile   string
	configDir string

	injector *do.RootScope
	logger   *slog.Logger
	otel     *otelProviders
	store    ports.Store
	engine   *engine.Engine
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.DiscardHandler),
	}
}

func (c *cli) rootCommand() *cobra.Command {
	profile := os.Getenv(profileEnv)
	if profile == "" {
		profile = defaultProfile
	}

	root := &cobra.Command{
		Use:           "todo",
		Short:         "Manage to-do lists and their tasks",
		Long:          `todo keeps named lists of tasks in SQLite or Redis. Lists and tasks are addressed by identifier, identifier prefix, or case-insensitive name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.bootstrap(cmd)
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.PersistentFlags().StringVar(&c.profile, "profile", profile, "configuration profile (env "+profileEnv+")")
	root.PersistentFlags().StringVar(&c.configDir, "config-dir", defaultConfigDir, "directory holding base.yaml and the profile files")

	root.AddCommand(c.listsCommand(), c.tasksCommand(), c.healthCommand())
	return root
}

// drive runs start on the main loop and keeps the loop running until start's
// continuation fires. Failures reaching the continuation were already shown.
func (c *cli) drive(ctx context.Context, start func(finish ports.Then)) error {
	loop := do.MustInvoke[*dispatch.MainLoop](c.injector)

	var result error
	loop.Dispatch(func() {
		start(func(err error) {
			result = err
			loop.Stop()
		})
	})
	if err := loop.Run(ctx); err != nil {
		return err
	}
	if result != nil {
		return &shownError{err: result}
	}
	return nil
}

// flush writes the current frame with title.
func (c *cli) flush(title string) error {
	r := do.MustInvoke[*terminal.Renderer](c.injector)
	r.SetTitle(title)
	return r.Flush()
}

// resolveList finds the List named by ref.
func (c *cli) resolveList(ctx context.Context, ref string) (list.List, error) {
	lists, err := engine.Await(ctx, func(done ports.Done[[]list.List]) {
		c.engine.FetchLists(ctx, done)
	})
	if err != nil {
		return list.List{}, err
	}
	i, err := match(ref, len(lists), func(i int) (domain.Identifier, string) {
		return lists[i].Identifier, lists[i].Name
	})
	if err != nil {
		return list.List{}, fmt.Errorf("list %q: %w", ref, err)
	}
	return lists[i], nil
}

// resolveTask finds the Task named by ref inside the List listID.
func (c *cli) resolveTask(ctx context.Context, listID domain.Identifier, ref string) (task.Task, error) {
	tasks, err := engine.Await(ctx, func(done ports.Done[[]task.Task]) {
		c.engine.FetchTasks(ctx, listID, done)
	})
	if err != nil {
		return task.Task{}, err
	}
	i, err := match(ref, len(tasks), func(i int) (domain.Identifier, string) {
		return tasks[i].Identifier, tasks[i].Name
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("task %q: %w", ref, err)
	}
	return tasks[i], nil
}

// match picks the single entry whose identifier equals ref, else whose
// identifier starts with ref, else whose name equals ref ignoring case.
func match(ref string, n int, at func(i int) (domain.Identifier, string)) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, errNoMatch
	}

	rules := []func(id domain.Identifier, name string) bool{
		func(id domain.Identifier, _ string) bool { return string(id) == ref },
		func(id domain.Identifier, _ string) bool { return strings.HasPrefix(string(id), ref) },
		func(_ domain.Identifier, name string) bool { return strings.EqualFold(name, ref) },
	}
	for _, rule := range rules {
		found := -1
		for i := range n {
			if !rule(at(i)) {
				continue
			}
			if found >= 0 {
				return -1, errAmbiguous
			}
			found = i
		}
		if found >= 0 {
			return found, nil
		}
	}
	return -1, errNoMatch
}
