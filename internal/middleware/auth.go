package middleware

import (
	"net/http"
	"strings"

	"gymmaster/internal/pkg/jwt"
	"gymmaster/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const ctxStaff = "staff"

// StaffAuth requires a valid staff bearer token.
func StaffAuth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ctxStaff, claims.Staff)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func GetStaff(c *gin.Context) string {
	return c.GetString(ctxStaff)
}
