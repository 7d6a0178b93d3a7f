package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serveJSONError(t *testing.T, status int, err error) ErrorResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := Logger
	Logger = zap.NewNop()
	t.Cleanup(func() { Logger = prev })

	r := gin.New()
	r.GET("/e", func(c *gin.Context) {
		JSONError(c, status, "something went wrong", err)
		c.JSON(http.StatusOK, gin.H{"unreachable": true})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/e", nil))

	require.Equal(t, status, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestJSONError_ClientErrorEchoesDetail(t *testing.T) {
	body := serveJSONError(t, http.StatusBadRequest, errors.New("unexpected EOF"))
	assert.Equal(t, ErrorResponse{Error: "something went wrong", Detail: "unexpected EOF"}, body)
}

func TestJSONError_ServerErrorHidesDetail(t *testing.T) {
	body := serveJSONError(t, http.StatusInternalServerError, errors.New("dial tcp 10.0.0.5:6379: connection refused"))
	assert.Equal(t, ErrorResponse{Error: "something went wrong"}, body)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := Logger
	Logger = zap.NewNop()
	defer func() { Logger = prev }()

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}
