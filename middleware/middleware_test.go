package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jeevanrakshak/models"
	"jeevanrakshak/services/access"
	"jeevanrakshak/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuth map[string]*models.Session

func (f fakeAuth) Authenticate(_ context.Context, token string) (*models.Session, error) {
	if token == "broken" {
		return nil, errors.New("redis: connection refused")
	}
	if s, ok := f[token]; ok {
		return s, nil
	}
	return nil, user.ErrInvalidSession
}

var sessions = fakeAuth{
	"admin-token":   {UserID: "a1", Email: "a1@example.org", Role: models.RoleAdmin},
	"asha-token":    {UserID: "w1", Email: "w1@example.org", Role: models.RoleAshaWorker},
	"citizen-token": {UserID: "c1", Email: "c1@example.org", Role: models.RoleCitizen},
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/x", SessionAuthMiddleware(sessions), func(c *gin.Context) {
		session, ok := SessionFrom(c)
		assert.True(t, ok)
		assert.Equal(t, session.UserID, c.GetString("userID"))
		c.String(http.StatusOK, session.Role.Claim())
	})

	w := do(r, "asha-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asha-worker", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "revoked").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, "broken").Code)
}

func TestOptionalSessionMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/x", OptionalSessionMiddleware(sessions), func(c *gin.Context) {
		if _, ok := SessionFrom(c); ok {
			c.String(http.StatusOK, "authenticated")
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	assert.Equal(t, "authenticated", do(r, "citizen-token").Body.String())
	assert.Equal(t, "anonymous", do(r, "").Body.String())
	assert.Equal(t, "anonymous", do(r, "revoked").Body.String())
	assert.Equal(t, "anonymous", do(r, "broken").Body.String())
}

func TestRequireLink(t *testing.T) {
	resolver := access.NewResolver(access.DefaultLinkTable("https://gis.example.org"))

	tests := []struct {
		link  string
		token string
		want  int
	}{
		{access.LinkComplaintManagement, "admin-token", http.StatusOK},
		{access.LinkComplaintManagement, "citizen-token", http.StatusForbidden},
		{access.LinkComplaintManagement, "asha-token", http.StatusForbidden},
		{access.LinkComplaintManagement, "", http.StatusUnauthorized},
		{"submit-complaint", "citizen-token", http.StatusOK},
		{"submit-complaint", "admin-token", http.StatusForbidden},
		{"health-data", "asha-token", http.StatusOK},
		{"health-data", "citizen-token", http.StatusForbidden},
		{access.LinkLogin, "", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.link+"/"+tc.token, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", OptionalSessionMiddleware(sessions), RequireLink(resolver, tc.link), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
			assert.Equal(t, tc.want, do(r, tc.token).Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/x", NewRateLimitMiddleware(2), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2"))
}

func TestRateLimiterStore_DropsIdleVisitors(t *testing.T) {
	store := newRateLimiterStore(2)
	clock := time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock

	exhausted := store.getLimiter("203.0.113.7")
	assert.True(t, exhausted.AllowN(clock, 2))
	store.getLimiter("198.51.100.2")

	clock = clock.Add(limiterIdleTTL / 2)
	store.getLimiter("198.51.100.2")
	assert.Len(t, store.visitors, 2)

	clock = clock.Add(limiterIdleTTL / 2)
	store.getLimiter("192.0.2.1")
	assert.Len(t, store.visitors, 2)
	assert.NotContains(t, store.visitors, "203.0.113.7")
	assert.Contains(t, store.visitors, "198.51.100.2")

	fresh := store.getLimiter("203.0.113.7")
	assert.NotSame(t, exhausted, fresh)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded first valid", map[string]string{"X-Forwarded-For": "garbage, 203.0.113.9, 10.0.0.1"}, "10.0.0.2:5000", "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.4 "}, "10.0.0.2:5000", "198.51.100.4"},
		{"remote addr", nil, "192.0.2.1:1234", "192.0.2.1"},
		{"remote without port", nil, "192.0.2.1", "192.0.2.1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}
