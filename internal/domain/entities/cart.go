package entities

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCartLine = errors.New("cart line requires a name and a non-negative unit price")

// CartLine is one entry of a checkout cart, persisted only as part of a Sale.
type CartLine struct {
	ItemID    string  `json:"item_id,omitempty"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
}

func (l CartLine) Validate() error {
	if strings.TrimSpace(l.Name) == "" || l.UnitPrice < 0 {
		return ErrInvalidCartLine
	}
	return nil
}

// SumLines adds unit prices with decimal arithmetic and rounds to cents, so a
// total is always recomputed from the lines and never drifts.
func SumLines(lines []CartLine) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.UnitPrice))
	}
	f, _ := sum.Round(2).Float64()
	return f
}

func cloneLines(lines []CartLine) []CartLine {
	if len(lines) == 0 {
		return []CartLine{}
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
