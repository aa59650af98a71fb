package format

import (
	"strings"
	"time"
)

const (
	SaleDateLayout = "02/01/2006"
	SaleTimeLayout = "15:04:05"
)

// FormatCPF masks a CPF as 000.000.000-00. Partial inputs are masked as far as
// their digits go, the way the checkout client panel shows them while typing.
func FormatCPF(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var b strings.Builder
	for i, r := range digits {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SaleStamp splits t (converted to loc) into the date and time strings stored on a sale.
func SaleStamp(t time.Time, loc *time.Location) (date string, clock string) {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(SaleDateLayout), t.Format(SaleTimeLayout)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
