package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount in the display format of currency, e.g.
// "$1,234.50" for USD. Unknown currency codes fall back to go-money's
// default formatting.
func FormatMoney(amount decimal.Decimal, currency string) string {
	// money.New never returns a nil currency, unlike money.GetCurrency
	cur := *money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
