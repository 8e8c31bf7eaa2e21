package middleware

import (
	"meridian_moving/internal/infrastructure/auth"
	"meridian_moving/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a valid Bearer token. The validated
// username is stored in the context under "username".
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
