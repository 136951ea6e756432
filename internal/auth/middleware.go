package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

const callerKey = "authorized_caller"

// RequireStaff gates a route group on the authorization gate. Responses
// never reveal whether any order exists; they only describe the credential
// failure.
func RequireStaff(gate *Gate, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		caller, err := gate.Authorize(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			case errors.Is(err, domain.ErrForbidden):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied, staff role required"})
			default:
				logger.Error("authorization failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "failed to verify permissions"})
			}
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the authorized caller set by RequireStaff.
func CallerFrom(c *gin.Context) (domain.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	return caller, ok
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
