package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elonulator/wealth-calculator/internal/comparison"
	"github.com/elonulator/wealth-calculator/internal/output"
	"github.com/elonulator/wealth-calculator/pkg/decimal"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		id       int
		amount   string
		netWorth string
		median   string
		reverse  bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Show what an amount is worth on the other side of the wealth gap",
		Example: `  elonulator compare --amount 100,000,000,000
  elonulator compare --billionaire 4 --amount 1000 --reverse
  elonulator compare --amount 1,000,000 --median 250,000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.dataset()
			if err != nil {
				return err
			}
			subject := ds.First()
			if id != 0 {
				p, ok := ds.Find(id)
				if !ok {
					return fmt.Errorf("unknown billionaire id %d", id)
				}
				subject = p
			}
			m, err := decimal.ParseMoney(amount)
			if err != nil {
				return err
			}

			view := comparison.NewView(subject).UpdateAmount(m.Ptr())
			if netWorth != "" {
				nw, err := decimal.ParseMoney(netWorth)
				if err != nil {
					return fmt.Errorf("net worth: %w", err)
				}
				view = view.OverrideSubjectNetWorth(nw.Ptr())
			}
			if median != "" {
				mw, err := decimal.ParseMoney(median)
				if err != nil {
					return fmt.Errorf("median: %w", err)
				}
				view = view.OverrideMedianNetWorth(mw.Ptr())
			}
			if reverse {
				view = view.SwapDirection()
			}
			res, err := comparison.Compute(view, ds.MedianNetWorth())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Message)
			fmt.Fprintf(out, "%s: %s\n", subject.Name, output.GroupedCurrency(res.SubjectAmount))
			fmt.Fprintf(out, "Median American: %s\n", output.GroupedCurrency(res.ReferenceAmount))
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "billionaire", 0, "billionaire id (default: the richest)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount spent, commas allowed")
	cmd.Flags().StringVar(&netWorth, "net-worth", "", "use this net worth instead of the billionaire's listed figure")
	cmd.Flags().StringVar(&median, "median", "", "use this median household net worth instead of the listed figure")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "treat the amount as the median American's spending")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
