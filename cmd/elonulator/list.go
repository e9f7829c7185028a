package main

import (
	"github.com/spf13/cobra"

	"github.com/elonulator/wealth-calculator/internal/output"
)

func newListCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the billionaires and the median household net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := output.GetFormatterByName(format)
			if err != nil {
				return err
			}
			ds, err := a.dataset()
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), f, output.NewListing(ds))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, csv or json")
	return cmd
}
