package main

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-todo-lists/internal/app"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

const listsTitle = "Lists"

func (c *cli) listsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Show all lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := do.MustInvoke[*app.ListService](c.injector)
			if err := c.drive(cmd.Context(), func(then ports.Then) {
				svc.Load(cmd.Context(), then)
			}); err != nil {
				return err
			}
			return c.flush(listsTitle)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc := do.MustInvoke[*app.ListService](c.injector)
				err := c.drive(cmd.Context(), func(then ports.Then) {
					svc.Create(cmd.Context(), args[0], then)
				})
				return c.finish(listsTitle, err)
			},
		},
		&cobra.Command{
			Use:   "rename <list> <name>",
			Short: "Rename a list",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				l, err := c.resolveList(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				svc := do.MustInvoke[*app.ListService](c.injector)
				err = c.drive(cmd.Context(), func(then ports.Then) {
					svc.Rename(cmd.Context(), l.Identifier, args[1], then)
				})
				return c.finish(listsTitle, err)
			},
		},
		&cobra.Command{
			Use:     "rm <list>",
			Aliases: []string{"delete"},
			Short:   "Delete a list",
			Long:    "Delete a list. With storage.delete_policy=cascade its tasks are deleted too; with reject a list that still has tasks is kept.",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				l, err := c.resolveList(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				svc := do.MustInvoke[*app.ListService](c.injector)
				err = c.drive(cmd.Context(), func(then ports.Then) {
					svc.Delete(cmd.Context(), l.Identifier, then)
				})
				return c.finish(listsTitle, err)
			},
		},
	)
	return cmd
}

// finish draws the frame left by a mutation, then reports err. The frame is
// drawn on failure too, since the service restored the stored rows.
func (c *cli) finish(title string, err error) error {
	if ferr := c.flush(title); ferr != nil && err == nil {
		return ferr
	}
	return err
}
