package auth

import (
	"errors"
	"testing"
	"time"

	"barbearia/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour, "barbearia-api")

	tok, err := svc.GenerateToken("emp-1", entities.AccessLevelAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.EmployeeID)
	assert.Equal(t, entities.AccessLevelAdmin, claims.AccessLevel)
}

func TestService_RejectsForeignAndExpiredTokens(t *testing.T) {
	svc := NewService("secret", time.Hour, "barbearia-api")
	other := NewService("other", time.Hour, "barbearia-api")

	tok, err := other.GenerateToken("emp-1", entities.AccessLevelAdmin)
	require.NoError(t, err)
	_, err = svc.ValidateToken(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	expired := NewService("secret", -time.Minute, "barbearia-api")
	tok, err = expired.GenerateToken("emp-1", entities.AccessLevelAdmin)
	require.NoError(t, err)
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
