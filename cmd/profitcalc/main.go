package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/rpgo/profit-calculator/internal/calculation"
	"github.com/rpgo/profit-calculator/internal/config"
	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/rpgo/profit-calculator/internal/logging"
	"github.com/spf13/cobra"
)

// app carries global flags and the resolved runtime into subcommands.
type app struct {
	envFile  string
	locale   string
	symbol   string
	logLevel string

	logOut  io.Writer
	runtime *config.Runtime
	logger  log.Logger
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{logOut: logOut}
	root := &cobra.Command{
		Use:          "profitcalc",
		Short:        "Compute percentage profit on an amount, formatted for a locale",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file with PROFITCALC_* settings")
	pf.StringVar(&a.locale, "locale", "", "number formatting locale (default es-ES)")
	pf.StringVar(&a.symbol, "symbol", "", "currency symbol appended to amounts (default €)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn, error or none")

	root.AddCommand(
		newCalcCmd(a),
		newBatchCmd(a),
		newInteractiveCmd(a),
		newServeCmd(a),
		newExampleConfigCmd(),
		newFormatsCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	rt, err := config.LoadRuntime(a.envFile)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, &rt.Settings)
	if cmd.Flags().Changed("log-level") {
		rt.LogLevel = a.logLevel
	}
	a.runtime = rt
	a.logger = logging.New(a.logOut, rt.LogLevel)
	return nil
}

// applyFlags lets explicit --locale/--symbol win over env and file settings.
func (a *app) applyFlags(cmd *cobra.Command, s *domain.Settings) {
	if cmd.Flags().Changed("locale") {
		s.Locale = a.locale
	}
	if cmd.Flags().Changed("symbol") {
		s.CurrencySymbol = a.symbol
	}
}

// service builds the calculator and its logging decorator for settings.
func (a *app) service(s domain.Settings) (*calculation.ProfitCalculator, calculation.Service) {
	pc := calculation.NewProfitCalculatorFromSettings(s, logging.NewPrintf(a.logger, "calculator"))
	return pc, calculation.NewLoggingService(log.With(a.logger, "component", "profit"), pc)
}
