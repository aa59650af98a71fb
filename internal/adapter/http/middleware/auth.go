package middleware

import (
	"net/http"
	"strings"

	"barbearia/internal/infrastructure/auth"
	"barbearia/pkg"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "auth.claims"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access required", http.StatusForbidden)
)

// RequireAuth validates the bearer token and stores its claims on the context.
// A nil token service disables the check.
func RequireAuth(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		claims, err := tokens.ValidateToken(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin allows admin and super-admin tokens. It must run after
// RequireAuth; with auth disabled it lets every request through.
func RequireAdmin(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.Next()
			return
		}
		claims, ok := ClaimsFrom(c)
		if !ok || !claims.AccessLevel.IsAdmin() {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*auth.CustomClaims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.CustomClaims)
	return claims, ok
}
