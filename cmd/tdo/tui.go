package main

import (
	"github.com/matt-steen/tdo/pkg/controller"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit the lists in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load()
			if err != nil {
				return err
			}

			c, err := controller.NewController(t, a.store, a.cfg.DataFile)
			if err != nil {
				return err
			}

			return c.Go()
		},
	}
}
