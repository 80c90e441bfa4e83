package normalize

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a value in Brazilian currency style: "R$ 1.234,56".
func FormatCurrency(value float64) string {
	return "R$ " + brazilianNumber(value, 2)
}

// FormatCurrencyShort renders a value without cents: "R$ 1.234".
func FormatCurrencyShort(value float64) string {
	return "R$ " + brazilianNumber(value, 0)
}

func brazilianNumber(value float64, decimals int) string {
	negative := value < 0
	if negative {
		value = -value
	}

	s := fmt.Sprintf("%.*f", decimals, value)
	intPart := s
	decPart := ""
	if decimals > 0 {
		intPart = s[:len(s)-decimals-1]
		decPart = s[len(s)-decimals:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".")
	if decimals > 0 {
		out += "," + decPart
	}
	if negative {
		out = "-" + out
	}
	return out
}
