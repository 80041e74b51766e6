package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
)

// RequireAdmin gates a route group behind the Admin-or-Owner privilege.
// Authorization lives here, once per group, rather than inline in handlers.
func RequireAdmin(access portssvc.AccessControlSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromCtx(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		allowed, err := access.IsAdminOrOwner(c.Request.Context(), identity)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to resolve privileges", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve privileges"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privilege required"})
			return
		}
		c.Next()
	}
}

// RequireOwner gates a route group behind the Owner privilege.
func RequireOwner(access portssvc.AccessControlSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromCtx(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !access.IsOwner(identity) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Owner privilege required"})
			return
		}
		c.Next()
	}
}
