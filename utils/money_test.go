package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{decimal.NewFromFloat(100), "USD", "$100.00"},
		{decimal.NewFromFloat(1234.5), "USD", "$1,234.50"},
		{decimal.NewFromFloat(-50.25), "USD", "-$50.25"},
		{decimal.NewFromFloat(0.005), "USD", "$0.01"},
	}

	for _, tc := range testCases {
		if got := FormatMoney(tc.amount, tc.currency); got != tc.want {
			t.Errorf("FormatMoney(%s, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}
