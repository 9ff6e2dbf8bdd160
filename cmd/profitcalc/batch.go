package main

import (
	"fmt"

	"github.com/rpgo/profit-calculator/internal/calculation"
	"github.com/rpgo/profit-calculator/internal/config"
	"github.com/rpgo/profit-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var format, outDir string
	cmd := &cobra.Command{
		Use:   "batch <config.yaml>",
		Short: "Compute every calculation in a YAML configuration and print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.applyFlags(cmd, &cfg.Settings)
			if err := parser.ValidateSettings(&cfg.Settings); err != nil {
				return err
			}

			f, err := output.LookupFormatter(format)
			if err != nil {
				return err
			}
			pc, svc := a.service(cfg.Settings)
			report := calculation.RunBatch(svc, pc, cfg)

			if outDir != "" {
				path, err := output.WriteFormatted(f, report, outDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				return nil
			}
			data, err := f.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format (see 'formats')")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write the report to a timestamped file in this directory")
	return cmd
}
