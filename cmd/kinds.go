package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newKindsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the configured pool kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds, err := app.config.Kinds(cmd.Context())
			if err != nil {
				return err
			}

			for _, kind := range kinds {
				aliases := strings.Join(kind.Aliases, ",")
				if aliases == "" {
					aliases = "-"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", kind.Kind, aliases, kind.Name, kind.DataFile)
			}

			return nil
		},
	}

	cmd.AddCommand(newKindsInitCmd(app))
	return cmd
}

func newKindsInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in pool kinds to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := app.config.WriteDefaults(cmd.Context(), force)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote pool kinds to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
