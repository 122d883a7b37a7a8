package value

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultCurrencyScale = 2

//nolint:gochecknoglobals
var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"NZD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Money is an amount in the smallest denomination of an ISO 4217 currency,
// e.g. cents for USD.
type Money struct {
	Amount   int64
	Currency string
}

// Format renders m for display: "$5.00", "$1,234.56", "¥500", "CHF 1.00".
func (m Money) Format() string {
	code := strings.ToUpper(m.Currency)
	scale := currencyScale(code)

	sign := ""
	amount := uint64(m.Amount) //nolint:gosec // sign handled below

	if m.Amount < 0 {
		sign = "-"
		amount = uint64(-(m.Amount + 1)) + 1 //nolint:gosec // avoids overflow on MinInt64
	}

	pow := uint64(1)
	for range scale {
		pow *= 10
	}

	number := message.NewPrinter(language.AmericanEnglish).Sprintf("%d", amount/pow)
	if scale > 0 {
		number += fmt.Sprintf(".%0*d", scale, amount%pow)
	}

	return sign + currencyPrefix(code) + number
}

func (m Money) String() string {
	return m.Format()
}

func currencyScale(code string) int {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return defaultCurrencyScale
	}

	scale, _ := currency.Standard.Rounding(unit)

	return scale
}

func currencyPrefix(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}

	if code == "" {
		return ""
	}

	return code + " "
}
