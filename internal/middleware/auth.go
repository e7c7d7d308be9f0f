package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/tasklists/internal/features/auth"
	"github.com/xyz-asif/tasklists/internal/pkg/logger"
	"github.com/xyz-asif/tasklists/internal/pkg/response"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

// Authenticator resolves an access token to its user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.User, error)
}

// Auth rejects requests without a valid access token and attaches the user otherwise
func Auth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and raw token in header
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = strings.TrimSpace(authHeader)
		}

		user, err := authenticator.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.ErrRequestInvalid {
				logger.Error("token lookup failed: %v", err)
			}
			response.FromError(c, err)
			c.Abort()
			return
		}

		auth.SetCurrentUser(c, user)
		c.Next()
	}
}
