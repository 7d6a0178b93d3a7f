package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"jeevanrakshak/models"
	"jeevanrakshak/services/user"
	"jeevanrakshak/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// SessionAuthenticator resolves a bearer token to a session.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

// SessionAuthMiddleware rejects requests without a live session token.
func SessionAuthMiddleware(auth SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", nil)
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, user.ErrInvalidSession) {
				utils.JSONError(c, http.StatusUnauthorized, "Session expired. Please sign in again.", nil)
				return
			}
			utils.JSONError(c, http.StatusServiceUnavailable, "Unable to verify session", err)
			return
		}

		setSession(c, session)
		c.Next()
	}
}

// OptionalSessionMiddleware attaches the session when a valid token is sent and
// otherwise lets the request through unauthenticated.
func OptionalSessionMiddleware(auth SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			session, err := auth.Authenticate(c.Request.Context(), token)
			if err == nil {
				setSession(c, session)
			} else if !errors.Is(err, user.ErrInvalidSession) {
				zap.L().Warn("session lookup failed, continuing unauthenticated", zap.Error(err))
			}
		}
		c.Next()
	}
}

// SessionFrom returns the session attached by the auth middleware.
func SessionFrom(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*models.Session)
	return session, ok && session != nil
}

func setSession(c *gin.Context, session *models.Session) {
	c.Set(sessionKey, session)
	c.Set("userID", session.UserID)
	c.Set("userEmail", session.Email)
	c.Set("role", session.Role)
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	return bearerToken(c)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}
