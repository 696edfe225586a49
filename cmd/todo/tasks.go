package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/table"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/terminal"
	"github.com/jsamuelsen11/go-todo-lists/internal/app"
	"github.com/jsamuelsen11/go-todo-lists/internal/app/engine"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/dispatch"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// taskCommand is the shape shared by commands acting on one list.
type taskCommand func(ctx context.Context, svc *app.TaskService, l list.List, args []string) error

func (c *cli) tasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks <list>",
		Short: "Show the tasks of a list, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: c.withList(func(ctx context.Context, svc *app.TaskService, l list.List, _ []string) error {
			if err := c.drive(ctx, func(then ports.Then) { svc.Load(ctx, then) }); err != nil {
				return err
			}
			return c.flush(l.Name)
		}),
	}

	var undo bool
	doneAll := &cobra.Command{
		Use:   "done-all <list>",
		Short: "Mark every task of a list done",
		Args:  cobra.ExactArgs(1),
		RunE: c.withList(func(ctx context.Context, svc *app.TaskService, l list.List, _ []string) error {
			var result ports.BulkResult
			err := c.drive(ctx, func(then ports.Then) {
				svc.SetAllDone(ctx, !undo, func(res ports.BulkResult) {
					result = res
					then(res.Err)
				})
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "updated %d, failed %d\n", len(result.Updated), len(result.Failed))
			if err := c.flush(l.Name); err != nil {
				return err
			}
			if len(result.Failed) > 0 {
				return &shownError{err: fmt.Errorf("%d tasks not updated", len(result.Failed))}
			}
			return nil
		}),
	}
	doneAll.Flags().BoolVar(&undo, "undo", false, "mark every task undone instead")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <list> <name>",
			Short: "Create a task",
			Args:  cobra.ExactArgs(2),
			RunE: c.withList(func(ctx context.Context, svc *app.TaskService, l list.List, args []string) error {
				err := c.drive(ctx, func(then ports.Then) { svc.Create(ctx, args[1], then) })
				return c.finish(l.Name, err)
			}),
		},
		&cobra.Command{
			Use:   "rename <list> <task> <name>",
			Short: "Rename a task",
			Args:  cobra.ExactArgs(3),
			RunE: c.withList(func(ctx context.Context, svc *app.TaskService, l list.List, args []string) error {
				t, err := c.resolveTask(ctx, l.Identifier, args[1])
				if err != nil {
					return err
				}
				err = c.drive(ctx, func(then ports.Then) { svc.Rename(ctx, t.Identifier, args[2], then) })
				return c.finish(l.Name, err)
			}),
		},
		c.statusCommand("done", true),
		c.statusCommand("undone", false),
		c.removeCommand(),
		doneAll,
	)
	return cmd
}

func (c *cli) statusCommand(use string, done bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <list> <task>",
		Short: "Mark a task " + use,
		Args:  cobra.ExactArgs(2),
		RunE: c.withList(func(ctx context.Context, svc *app.TaskService, l list.List, args []string) error {
			t, err := c.resolveTask(ctx, l.Identifier, args[1])
			if err != nil {
				return err
			}
			err = c.drive(ctx, func(then ports.Then) { svc.SetDone(ctx, t.Identifier, done, then) })
			return c.finish(l.Name, err)
		}),
	}
}

func (c *cli) removeCommand() *cobra.Command {
	remove := func(ctx context.Context, svc *app.TaskService, l list.List, args []string) error {
		t, err := c.resolveTask(ctx, l.Identifier, args[1])
		if err != nil {
			return err
		}
		err = c.drive(ctx, func(then ports.Then) { svc.Delete(ctx, t.Identifier, then) })
		return c.finish(l.Name, err)
	}

	return &cobra.Command{
		Use:     "rm [<list>] <task>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long:    "Delete a task. Given only the task's full identifier, its list is looked up.",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return c.withTaskOwner(remove)(cmd, args)
			}
			return c.withList(remove)(cmd, args)
		},
	}
}

// withTaskOwner looks up the List owning the Task whose full identifier is
// args[0] and runs fn for it with the arguments <list> <task>.
func (c *cli) withTaskOwner(fn taskCommand) func(*cobra.Command, []string) error {
	inList := c.withList(fn)
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		taskID := domain.Identifier(strings.TrimSpace(args[0]))
		owner, err := engine.Await(ctx, func(done ports.Done[domain.Identifier]) {
			c.engine.FetchTaskOwner(ctx, taskID, done)
		})
		if err != nil {
			return fmt.Errorf("task %q: %w", args[0], err)
		}
		return inList(cmd, []string{owner.String(), taskID.String()})
	}
}

// withList resolves the first argument to a List and builds a TaskService
// for it before running fn.
func (c *cli) withList(fn taskCommand) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		l, err := c.resolveList(ctx, args[0])
		if err != nil {
			return err
		}

		loop := do.MustInvoke[*dispatch.MainLoop](c.injector)
		svc := app.NewTaskService(l.Identifier,
			c.engine.On(loop),
			do.MustInvoke[*table.Director](c.injector),
			do.MustInvoke[*terminal.Renderer](c.injector),
			nil,
		)
		return fn(ctx, svc, l, args)
	}
}
