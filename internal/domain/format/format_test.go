package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:         "R$ 0,00",
		35:        "R$ 35,00",
		1234.5:    "R$ 1.234,50",
		1000000:   "R$ 1.000.000,00",
		-12.345:   "-R$ 12,35",
		999.999:   "R$ 1.000,00",
		123456.78: "R$ 123.456,78",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(in), "FormatBRL(%v)", in)
	}
}

func TestParseBRL_RoundTrip(t *testing.T) {
	formatted := FormatBRL(1234.5)
	require.Equal(t, "R$ 1.234,50", formatted)

	d, err := ParseBRLDecimal(formatted)
	require.NoError(t, err)
	assert.Equal(t, "1234.50", d.StringFixed(2))

	f, err := ParseBRL(formatted)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, f)
}

func TestParseBRL_Variants(t *testing.T) {
	cases := map[string]float64{
		"35,00":          35,
		"35.5":           35.5,
		"R$\u00a080,00":  80,
		"-R$ 1.000,10":   -1000.1,
		"  R$ 0,99  ":    0.99,
		"1.234.567,891":  1234567.89,
	}
	for in, want := range cases {
		got, err := ParseBRL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "R$", "abc", "R$ 1,2,3"} {
		_, err := ParseBRL(bad)
		assert.ErrorIs(t, err, ErrInvalidCurrency, bad)
	}
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "111.222.333-44", FormatCPF("11122233344"))
	assert.Equal(t, "111.222.333-44", FormatCPF("111.222.333-44"))
	assert.Equal(t, "111.22", FormatCPF("11122"))
	assert.Equal(t, "", FormatCPF(""))
}

func TestSaleStamp(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2026, time.March, 5, 14, 7, 9, 0, time.UTC)

	date, clock := SaleStamp(ts, loc)

	assert.Equal(t, "05/03/2026", date)
	assert.Equal(t, "11:07:09", clock)
}
