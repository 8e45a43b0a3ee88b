package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/ds611b/practicas/internal/modules/serializer"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/api/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		header         string
		expectedStatus int
	}{
		{name: "disabled", token: "", header: "", expectedStatus: http.StatusOK},
		{name: "valid", token: "s3cret", header: "Bearer s3cret", expectedStatus: http.StatusOK},
		{name: "missing header", token: "s3cret", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", token: "s3cret", header: "Basic s3cret", expectedStatus: http.StatusUnauthorized},
		{name: "wrong token", token: "s3cret", header: "Bearer other", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(BearerAuth(tt.token))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				var body serializer.ErrorResponse
				require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
				assert.False(t, body.Success)
				assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID(), ZapLogger(zap.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	r := newEngine(RateLimit(nil, 1, 0, zap.NewNop()))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
