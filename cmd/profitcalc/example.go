package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rpgo/profit-calculator/internal/config"
	"github.com/rpgo/profit-calculator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Print or write an example batch configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if len(args) == 1 {
				if err := config.SaveConfiguration(cfg, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
				return nil
			}
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats, aliases and common locales",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			locales := append([]string(nil), output.CommonLocales...)
			sort.Strings(locales)
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			fmt.Fprintf(out, "Locales: %s (any CLDR locale with Latin digits)\n", strings.Join(locales, ", "))
		},
	}
}
