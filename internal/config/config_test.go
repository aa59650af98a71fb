package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_TABLE", "REDIS_ADDR", "AUTH_JWT_SECRET", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "CHECKOUT_SESSION_TTL_MIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "catalog_items", cfg.Tables.Catalog)
	assert.Equal(t, "sales", cfg.Tables.Sales)
	assert.Equal(t, 720*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.PaymentGatewayMock)
	assert.NotNil(t, cfg.Location)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SALES_TABLE", "vendas")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("CHECKOUT_SESSION_TTL_MIN", "not-a-number")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "vendas", cfg.Tables.Sales)
	assert.True(t, cfg.AuthEnabled())
	assert.True(t, cfg.PaymentGatewayMock)
	assert.Equal(t, 720*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "UTC", cfg.Location.String())
}
