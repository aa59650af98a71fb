package format

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrency = errors.New("invalid BRL amount")

const brlSymbol = "R$"

// FormatBRL renders v as Brazilian Real with two decimals, a dot as thousands
// separator and a comma as decimal separator: 1234.5 -> "R$ 1.234,50".
func FormatBRL(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	neg := d.IsNegative()
	d = d.Abs()

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	out := brlSymbol + " " + groupThousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// ParseBRL is the inverse of FormatBRL. It also accepts bare amounts such as
// "35,00" or "35.5"; when a comma is present dots are thousands separators.
func ParseBRL(s string) (float64, error) {
	d, err := ParseBRLDecimal(s)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// ParseBRLDecimal parses like ParseBRL but keeps the exact two-decimal value.
func ParseBRLDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, brlSymbol))
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	if s == "" {
		return decimal.Zero, ErrInvalidCurrency
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidCurrency
	}
	d = d.Round(2)
	if neg {
		d = d.Neg()
	}
	return d, nil
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
