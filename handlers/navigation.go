package handlers

import (
	"net/http"

	"jeevanrakshak/models"

	"github.com/gin-gonic/gin"
)

// NavigationResolver builds the navigation tree for a caller.
type NavigationResolver interface {
	Resolve(isAuthenticated bool, role models.Role) []models.NavigationSection
}

type NavigationHandler struct {
	Resolver NavigationResolver
}

func NewNavigationHandler(resolver NavigationResolver) *NavigationHandler {
	return &NavigationHandler{Resolver: resolver}
}

// GetNavigationHandler handles GET /api/navigation.
func (h *NavigationHandler) GetNavigationHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": false,
			"sections":      h.Resolver.Resolve(false, models.RoleUnauthenticated),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"role":          session.Role.Claim(),
		"sections":      h.Resolver.Resolve(true, session.Role),
	})
}
