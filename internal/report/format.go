package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders v with two decimals, thousands grouped by a space and
// the currency label appended, e.g. "12 345.67 €HT".
func FormatAmount(v float64, currency string) string {
	s := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	out := sign + groupThousands(intPart) + "." + frac
	if currency != "" {
		out += " " + currency
	}
	return out
}

// FormatVolume renders a GB figure without decimals, grouped like amounts.
func FormatVolume(gb float64) string {
	s := decimal.NewFromFloat(gb).StringFixed(0)
	if strings.HasPrefix(s, "-") {
		return "-" + groupThousands(s[1:]) + " GB"
	}
	return groupThousands(s) + " GB"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
