package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/spf13/cobra"
)

const tokenURL = "https://github.com/settings/tokens/new?scopes=repo&description=tdolist"

func newTokenCmd(a *app) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "token [value]",
		Short: "Store the GitHub access token",
		Long:  "Store the GitHub access token. Without a value you are asked to enter one.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if show {
				t, err := a.load()
				if err != nil {
					return err
				}

				token, set := t.GitHubToken()
				if !set {
					fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("no token stored"))

					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), token)

				return nil
			}

			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Please generate an access token (%s)\nand enter a valid access token: ", tokenURL)

				answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && answer == "" {
					return fmt.Errorf("reading token: %w", err)
				}

				token = answer
			}

			token = strings.TrimSpace(token)
			if token == "" {
				return errors.New("empty token")
			}

			err := a.mutate(func(t *tdo.Tdo) error {
				t.SetGitHubToken(token)

				return nil
			})
			if err != nil {
				return err
			}

			ok(cmd.OutOrStdout(), "token stored")

			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print the stored token")

	return cmd
}
