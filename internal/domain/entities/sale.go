package entities

import (
	"errors"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodDinheiro    PaymentMethod = "dinheiro"
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrSaleTotalMismatch    = errors.New("sale total does not match its items")
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "", PaymentMethodDinheiro:
		return PaymentMethodDinheiro, nil
	case PaymentMethodMercadoPago:
		return PaymentMethodMercadoPago, nil
	}
	return "", ErrInvalidPaymentMethod
}

// Sale is the immutable record of a completed checkout.
//
// Storage model (DynamoDB):
//   - PK: id (the checkout idempotency key)
//
// Date and Time are stored as separate strings (dd/mm/yyyy and HH:mm:ss);
// reporting parses Date by splitting on "/".
type Sale struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"client_id"`
	ClientName    string        `json:"client_name"`
	ClientTaxID   string        `json:"client_tax_id"`
	Staff         string        `json:"staff"`
	AppointmentID string        `json:"appointment_id,omitempty"`
	Items         []CartLine    `json:"items"`
	Total         float64       `json:"total"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentID     string        `json:"payment_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// CheckTotal verifies Total == Σ Items.UnitPrice.
func (s Sale) CheckTotal() error {
	if SumLines(s.Items) != s.Total {
		return ErrSaleTotalMismatch
	}
	return nil
}
