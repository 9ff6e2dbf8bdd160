package output

import "github.com/shopspring/decimal"

// FormatPercentage formats whole percentage points, e.g. 12.5 -> "12.5%".
func FormatPercentage(points decimal.Decimal) string { return points.String() + "%" }

// FormatPlain formats a decimal with 2 fraction digits and no grouping, for machine-readable outputs.
func FormatPlain(amount decimal.Decimal) string { return amount.StringFixedBank(2) }
