package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"barbearia/internal/domain/entities"
)

var (
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayRejected     = errors.New("payment rejected by gateway")
)

// buildPaymentPayload merges the caller's Mercado Pago fields (payment method,
// token, payer) with the sale. The sale is the source of truth for amount,
// description and external_reference.
func buildPaymentPayload(sale entities.Sale, raw json.RawMessage, sandboxPayerEmail string) (json.RawMessage, error) {
	req := map[string]any{}
	if len(raw) > 0 {
		if !json.Valid(raw) {
			return nil, ErrInvalidMPPayload
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, ErrInvalidMPPayload
		}
	}
	if !hasNonEmptyString(req, "payment_method_id") {
		req["payment_method_id"] = "pix"
	}
	ensurePayerDefaults(req, sandboxPayerEmail)
	if !hasPayer(req) {
		return nil, ErrInvalidMPPayload
	}

	req["transaction_amount"] = sale.Total
	req["external_reference"] = sale.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Venda %s - %s", sale.ID, sale.ClientName)
	}
	return json.Marshal(req)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, sandboxPayerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && sandboxPayerEmail != "" {
		payer["email"] = sandboxPayerEmail
	}
}

// classifyGatewayError maps Mercado Pago error bodies to sentinels the
// handlers can translate. Unknown errors pass through.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}
