package middleware

import (
	"net/http"

	"jeevanrakshak/models"
	"jeevanrakshak/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LinkGuard decides whether a role may follow a navigation link.
type LinkGuard interface {
	Allows(isAuthenticated bool, role models.Role, linkName string) bool
}

// RequireLink only lets a request through when the caller's navigation contains
// linkName. Must run after SessionAuthMiddleware or OptionalSessionMiddleware.
func RequireLink(guard LinkGuard, linkName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			if guard.Allows(false, models.RoleUnauthenticated, linkName) {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "Please login to continue", nil)
			return
		}

		if !guard.Allows(true, session.Role, linkName) {
			zap.L().Info("navigation guard denied request",
				zap.String("userId", session.UserID),
				zap.String("role", session.Role.String()),
				zap.String("link", linkName),
			)
			utils.JSONError(c, http.StatusForbidden, "You do not have access to this page", nil)
			return
		}
		c.Next()
	}
}
