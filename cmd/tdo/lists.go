package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) printLists(w io.Writer, name string, all bool) error {
	t, err := a.load()
	if err != nil {
		return err
	}

	lists := t.Lists()

	if name != "" {
		list, err := t.List(name)
		if err != nil {
			return err
		}

		lists = []*tdo.TodoList{list}
	}

	blocks := make([]string, 0, len(lists))
	for _, list := range lists {
		blocks = append(blocks, renderList(list, all))
	}

	fmt.Fprintln(w, strings.Join(blocks, "\n\n"))

	return nil
}

func newListCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list [name]",
		Aliases: []string{"ls"},
		Short:   "Show the todos of one or all lists",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			return a.printLists(cmd.OutOrStdout(), name, all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include todos that are done")

	return cmd
}

func newListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the names of all lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load()
			if err != nil {
				return err
			}

			for _, list := range t.Lists() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					titleStyle.Render(list.Name()),
					mutedStyle.Render(fmt.Sprintf("(%d open, %d total)", len(list.ListUndone()), list.Len())))
			}

			return nil
		},
	}
}

func newNewListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "newlist <name>",
		Short: "Create a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.mutate(func(t *tdo.Tdo) error { return t.AddList(tdo.NewTodoList(args[0])) })
			if err != nil {
				return err
			}

			log.Info().Str("list", args[0]).Msg("created list")
			ok(cmd.OutOrStdout(), "created list "+args[0])

			return nil
		},
	}
}

func newDelListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dellist <name>",
		Short: "Delete a list and all of its todos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.mutate(func(t *tdo.Tdo) error { return t.RemoveList(args[0]) }); err != nil {
				return err
			}

			log.Info().Str("list", args[0]).Msg("deleted list")
			ok(cmd.OutOrStdout(), "deleted list "+args[0])

			return nil
		},
	}
}

func newCleanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [list]",
		Short: "Remove all done todos from one or all lists",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.mutate(func(t *tdo.Tdo) error {
				if len(args) == 1 {
					return t.CleanList(args[0])
				}

				t.CleanLists()

				return nil
			})
			if err != nil {
				return err
			}

			ok(cmd.OutOrStdout(), "cleaned up")

			return nil
		},
	}
}
