package main

import (
	"github.com/matt-steen/tdo/pkg/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tdo",
		Short: "Todo lists in your terminal",
		Long: `tdo keeps todo lists in a single JSON (or sqlite) file.
Without a subcommand it prints every undone todo.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printLists(cmd.OutOrStdout(), "", false)
		},
	}

	defaultConfig, _ := config.DefaultPath()

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", defaultConfig, "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newAddCmd(a),
		newEditCmd(a),
		newDoneCmd(a),
		newUndoneCmd(a),
		newRemoveCmd(a),
		newMoveCmd(a),
		newListCmd(a),
		newListsCmd(a),
		newNewListCmd(a),
		newDelListCmd(a),
		newCleanCmd(a),
		newTokenCmd(a),
		newExportCmd(a),
		newTUICmd(a),
	)

	return rootCmd
}
