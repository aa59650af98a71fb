package request

import (
	"encoding/json"
	"errors"
	"strings"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase"
)

var ErrInvalidCheckoutLine = errors.New("either item_id or name and price are required")

// SelectClientRequest picks an appointment by id, the walk-in client with
// "walk-in", or deselects with an empty client_id.
type SelectClientRequest struct {
	ClientID string `json:"client_id"`
}

type SelectStaffRequest struct {
	Staff string `json:"staff"`
}

type NavigationRequest struct {
	Key string `json:"key" binding:"required"`
}

func (r NavigationRequest) ResolveKey() (entities.NavigationKey, error) {
	switch k := entities.NavigationKey(strings.ToLower(strings.TrimSpace(r.Key))); k {
	case entities.NavigationKeyUp, entities.NavigationKeyDown, entities.NavigationKeyEnter:
		return k, nil
	}
	return "", entities.ErrInvalidNavigationKey
}

type CartLineRequest struct {
	ItemID string   `json:"item_id"`
	Name   string   `json:"name"`
	Price  *float64 `json:"price"`
}

func (r CartLineRequest) ToInput() (usecase.CheckoutLineInput, error) {
	in := usecase.CheckoutLineInput{
		ItemID: strings.TrimSpace(r.ItemID),
		Name:   strings.TrimSpace(r.Name),
		Price:  r.Price,
	}
	if in.ItemID == "" && (in.Name == "" || in.Price == nil) {
		return usecase.CheckoutLineInput{}, ErrInvalidCheckoutLine
	}
	return in, nil
}

// ConfirmRequest closes the sale. Payment is only sent to Mercado Pago when
// payment_method is "mercadopago"; payment carries its payload as is.
type ConfirmRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Payment       json.RawMessage `json:"payment"`
}

func (r ConfirmRequest) ToInput() usecase.ConfirmInput {
	return usecase.ConfirmInput{
		PaymentMethod:  strings.ToLower(strings.TrimSpace(r.PaymentMethod)),
		PaymentPayload: r.Payment,
	}
}
