package main

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/profit-calculator/internal/calculation"
	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/rpgo/profit-calculator/internal/session"
	"github.com/spf13/cobra"
)

func newCalcCmd(a *app) *cobra.Command {
	var (
		amount, percent, mode string
		asJSON, copyResult    bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the profit for one amount and percentage",
		Example: `  profitcalc calc --amount 33 --percent 10 --mode up
  profitcalc calc --amount 1250.40 --percent 7.5 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := a.runtime.Settings
			m := settings.DefaultMode
			if cmd.Flags().Changed("mode") {
				parsed, err := domain.ParseRoundingMode(mode)
				if err != nil {
					return err
				}
				m = parsed
			}
			_, svc := a.service(settings)
			res := svc.Calculate(domain.Calculation{
				Amount:     calculation.ParseNumberOrZero(amount),
				Percentage: calculation.ParseNumberOrZero(percent),
				Mode:       m,
			})

			if asJSON {
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res.Formatted)
			}

			if copyResult {
				if err := (session.SystemClipboard{}).WriteText(res.Formatted); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&amount, "amount", "a", "", "base amount (unparsable text counts as 0)")
	f.StringVarP(&percent, "percent", "p", "", "profit percentage in whole points, e.g. 10 for 10%")
	f.StringVarP(&mode, "mode", "m", "", "rounding: none, up or nearest (default from settings)")
	f.BoolVar(&asJSON, "json", false, "print the full result as JSON")
	f.BoolVar(&copyResult, "copy", false, "copy the formatted profit to the system clipboard")
	return cmd
}
