package utils

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// amountPlaceholder is shown when an amount is not a representable number.
const amountPlaceholder = "--"

// FormatAmount renders a monetary amount with thousand separators and the
// given number of decimal places. NaN and infinities render as a placeholder.
func FormatAmount(amount float64, decimals int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amountPlaceholder
	}

	return humanize.FormatFloat(commaFormat(decimals), amount)
}

// FormatNumber renders a number with a fixed number of decimals plus optional
// prefix and suffix, e.g. FormatNumber(12.3456, "$", 2, "") -> "$12.35".
func FormatNumber(number float64, prefix string, decimals int, suffix string) string {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return amountPlaceholder
	}

	return prefix + humanize.FormatFloat(plainFormat(decimals), number) + suffix
}

func commaFormat(decimals int) string {
	return "#,###." + strings.Repeat("#", max(decimals, 0))
}

func plainFormat(decimals int) string {
	return "####." + strings.Repeat("#", max(decimals, 0))
}
