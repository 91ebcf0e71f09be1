package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLanguagesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages with a template bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			for _, tag := range a.registry.Tags() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), tag); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
