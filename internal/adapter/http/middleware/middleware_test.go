package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter(tokens auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", RequireAuth(tokens), func(c *gin.Context) {
		level := "anonymous"
		if claims, ok := ClaimsFrom(c); ok {
			level = string(claims.AccessLevel)
		}
		c.String(http.StatusOK, level)
	})
	r.GET("/admin", RequireAuth(tokens), RequireAdmin(tokens), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthAndAdmin(t *testing.T) {
	tokens := auth.NewService("secret", time.Hour, "barbearia-api")
	r := guardedRouter(tokens)

	admin, err := tokens.GenerateToken("e1", entities.AccessLevelAdmin)
	require.NoError(t, err)
	employee, err := tokens.GenerateToken("e2", entities.AccessLevelEmployee)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/open", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/open", "garbage").Code)

	w := get(r, "/open", employee)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "employee", w.Body.String())

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", employee).Code)
	assert.Equal(t, http.StatusNoContent, get(r, "/admin", admin).Code)
}

func TestAuthDisabled(t *testing.T) {
	r := guardedRouter(nil)
	assert.Equal(t, http.StatusOK, get(r, "/open", "").Code)
	assert.Equal(t, http.StatusNoContent, get(r, "/admin", "").Code)
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AccessLog(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/sales/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	assert.Equal(t, http.StatusNotFound, get(r, "/sales/s1", "").Code)
	assert.Equal(t, http.StatusInternalServerError, get(r, "/boom", "").Code)

	out := buf.String()
	assert.Contains(t, out, `"path":"/sales/:id"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"panic":"boom"`)
	assert.Contains(t, out, `"status":500`)
}
