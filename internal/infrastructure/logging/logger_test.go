package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_JSONOutsideDevelopment(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	SetupWriter(&buf, "warn", "production", "barbearia-api")

	log.Info().Msg("hidden")
	log.Warn().Str("sale_id", "s1").Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "s1", line["sale_id"])
	assert.Equal(t, "barbearia-api", line["service"])
}

func TestSetupWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "loud", "production", "svc")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
