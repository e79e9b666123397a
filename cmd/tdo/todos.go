package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func parseID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a todo id: %s", arg)
	}

	return uint32(id), nil
}

func newAddCmd(a *app) *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			var id uint32

			err := a.mutate(func(t *tdo.Tdo) error {
				id = t.HighestID() + 1

				return t.AddTodo(listName, tdo.NewTodo(id, title, nil))
			})
			if err != nil {
				return err
			}

			log.Info().Uint32("id", id).Str("list", listName).Msg("added todo")
			ok(cmd.OutOrStdout(), fmt.Sprintf("added #%d %s", id, title))

			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "list to add the todo to (default list if empty)")

	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <title...>",
		Short: "Change the title of a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			title := strings.Join(args[1:], " ")

			if err := a.mutate(func(t *tdo.Tdo) error { return t.EditID(id, title) }); err != nil {
				return err
			}

			ok(cmd.OutOrStdout(), fmt.Sprintf("renamed #%d to %s", id, title))

			return nil
		},
	}
}

// newIDCmd builds the commands that take a single todo id.
func newIDCmd(a *app, use, short, done string, fn func(t *tdo.Tdo, id uint32) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.mutate(func(t *tdo.Tdo) error { return fn(t, id) }); err != nil {
				return err
			}

			log.Info().Uint32("id", id).Msg(done)
			ok(cmd.OutOrStdout(), fmt.Sprintf("%s #%d", done, id))

			return nil
		},
	}
}

func newDoneCmd(a *app) *cobra.Command {
	return newIDCmd(a, "done", "Mark a todo as done", "marked as done", (*tdo.Tdo).DoneID)
}

func newUndoneCmd(a *app) *cobra.Command {
	return newIDCmd(a, "undone", "Mark a todo as not done", "marked as undone", (*tdo.Tdo).UndoneID)
}

func newRemoveCmd(a *app) *cobra.Command {
	cmd := newIDCmd(a, "remove", "Delete a todo", "removed", (*tdo.Tdo).RemoveID)
	cmd.Aliases = []string{"rm"}

	return cmd
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <list>",
		Short: "Move a todo to another list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.mutate(func(t *tdo.Tdo) error { return t.MoveTodo(id, args[1]) }); err != nil {
				return err
			}

			log.Info().Uint32("id", id).Str("list", args[1]).Msg("moved todo")
			ok(cmd.OutOrStdout(), fmt.Sprintf("moved #%d to %s", id, args[1]))

			return nil
		},
	}
}
