package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	request "barbearia/internal/adapter/http/dto/request"
	response "barbearia/internal/adapter/http/dto/response"
	"barbearia/internal/infrastructure/auth"
	"barbearia/internal/usecase"
	"barbearia/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	errAuthDisabled       = pkg.NewDomainErrorSimple("AUTH_DISABLED", "Token issuing is not configured", http.StatusNotFound)
)

// AuthHandler issues operator tokens. The shared admin API key proves the
// caller is a console; the employee record sets the access level.
type AuthHandler struct {
	employees usecase.IEmployeeUseCase
	tokens    auth.TokenService
	apiKey    string
	ttl       time.Duration
}

func NewAuthHandler(employees usecase.IEmployeeUseCase, tokens auth.TokenService, apiKey string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{employees: employees, tokens: tokens, apiKey: apiKey, ttl: ttl}
}

func (h *AuthHandler) IssueToken(c *gin.Context) {
	if h.tokens == nil || h.apiKey == "" {
		writeError(c, errAuthDisabled)
		return
	}

	var payload request.TokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if subtle.ConstantTimeCompare([]byte(payload.APIKey), []byte(h.apiKey)) != 1 {
		writeError(c, errInvalidCredentials)
		return
	}

	employee, err := h.employees.GetByID(c.Request.Context(), payload.EmployeeID)
	if err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) || errors.Is(err, usecase.ErrInvalidEmployeeID) {
			writeError(c, errInvalidCredentials)
			return
		}
		writeError(c, internalError(err))
		return
	}

	token, err := h.tokens.GenerateToken(employee.ID, employee.AccessLevel)
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	log.Info().Str("employee_id", employee.ID).Str("access_level", string(employee.AccessLevel)).Msg("operator token issued")
	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.ttl.Seconds()),
	})
}
