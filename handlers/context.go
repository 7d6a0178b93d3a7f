package handlers

import (
	"jeevanrakshak/middleware"
	"jeevanrakshak/models"

	"github.com/gin-gonic/gin"
)

// currentSession is set by the session middleware on every protected route.
func currentSession(c *gin.Context) (*models.Session, bool) {
	return middleware.SessionFrom(c)
}
