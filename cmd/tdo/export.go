package main

import (
	"fmt"
	"io"
	"os"

	"github.com/matt-steen/tdo/pkg/storage"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all lists as json, yaml or markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := storage.ParseFormat(format)
			if err != nil {
				return err
			}

			t, err := a.load()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()

			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer file.Close()

				w = file
			}

			return storage.Export(w, t, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "json, yaml or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write to (stdout if empty)")

	return cmd
}
