package output

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// currencySymbol is the grapheme of the single display currency.
var currencySymbol = money.GetCurrency(money.USD).Grapheme

type unit struct {
	threshold decimal.Decimal
	suffix    string
}

// units is ordered from the largest threshold down; the first match wins.
var units = []unit{
	{decimal.New(1, 9), "billion"},
	{decimal.New(1, 6), "million"},
	{decimal.New(1, 3), "thousand"},
}

// CurrencyLabel renders amount scaled to billions, millions or thousands with two decimals,
// e.g. "$744.00 billion". A negative sign goes after the currency symbol: "$-1.00 billion".
// Amounts below one thousand are not scaled.
func CurrencyLabel(amount decimal.Decimal) string {
	abs := amount.Abs()
	for _, u := range units {
		if abs.GreaterThanOrEqual(u.threshold) {
			sign := ""
			if amount.IsNegative() {
				sign = "-"
			}
			return currencySymbol + sign + abs.Div(u.threshold).StringFixed(2) + " " + u.suffix
		}
	}
	return FormatCurrency(amount)
}

// FormatCurrency formats a decimal as USD currency with 2 decimals and no grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return currencySymbol + amount.StringFixed(2)
}

// NumberWithDecimals groups the integer part with commas and always shows two decimals,
// rounding half away from zero: 1234.5678 -> "1,234.57".
func NumberWithDecimals(num decimal.Decimal) string {
	rounded := num.Round(2)
	fixed := rounded.Abs().StringFixed(2)
	frac := fixed[strings.IndexByte(fixed, '.'):]
	return sign(rounded) + humanize.BigComma(rounded.Abs().Truncate(0).BigInt()) + frac
}

// GroupedCurrency prefixes NumberWithDecimals with the currency symbol: "$25,940.86".
func GroupedCurrency(amount decimal.Decimal) string {
	return currencySymbol + NumberWithDecimals(amount)
}

// IntegerWithCommas rounds to the nearest integer (half away from zero) and groups with commas:
// 999.5 -> "1,000".
func IntegerWithCommas(num decimal.Decimal) string {
	rounded := num.Round(0)
	return sign(rounded) + humanize.BigComma(rounded.Abs().BigInt())
}

// FormatPercentage formats an already rendered percentage figure for display.
func FormatPercentage(pct string) string { return pct + "%" }

func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return ""
}
