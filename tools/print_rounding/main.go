package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rpgo/profit-calculator/internal/calculation"
	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/rpgo/profit-calculator/internal/output"
	"github.com/shopspring/decimal"
)

// Prints the profit under each rounding mode for a range of amounts, to eyeball
// ceiling and half-even behaviour around .5 boundaries.
func main() {
	locale := flag.String("locale", output.DefaultLocale, "formatting locale")
	pct := flag.String("percent", "10", "profit percentage")
	from := flag.Int64("from", 20, "first amount")
	to := flag.Int64("to", 40, "last amount")
	step := flag.Int64("step", 5, "amount step")
	flag.Parse()

	f, err := output.NewLocaleFormatter(*locale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *step <= 0 {
		fmt.Fprintln(os.Stderr, "step must be positive")
		os.Exit(1)
	}
	pc := calculation.NewProfitCalculator(f, calculation.DefaultCurrencySymbol)
	points := calculation.ParseNumberOrZero(*pct)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "amount\tnone\tround_up\tround_nearest\t")
	for a := *from; a <= *to; a += *step {
		amount := decimal.NewFromInt(a)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			amount,
			pc.Compute(amount, points, domain.RoundNone),
			pc.Compute(amount, points, domain.RoundUp),
			pc.Compute(amount, points, domain.RoundNearest),
		)
	}
	tw.Flush()
}
