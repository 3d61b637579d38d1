package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "camp-ledger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.GET("/protected", AuthMiddleware(testSecret, testIssuer), func(c *gin.Context) {
		subject, ok := GetSubjectFromContext(c)
		require.True(t, ok)
		assert.NotNil(t, GetLoggerFromCtx(c.Request.Context()))
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestRouter(t)

	valid, _, err := utils.GenerateJWT("admin", testSecret, time.Hour, testIssuer, time.Now())
	require.NoError(t, err)
	expired, _, err := utils.GenerateJWT("admin", testSecret, time.Minute, testIssuer, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	foreign, _, err := utils.GenerateJWT("admin", "other", time.Hour, testIssuer, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: `"subject":"admin"`},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "bad signature", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/", RateLimit(l), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	_, err = NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l, err := NewMemoryLimiter("1-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", LoginRateLimit(l), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestGetLoggerFromCtx_Fallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(req.Context()))
}
