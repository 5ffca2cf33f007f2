package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/cleantheory-backend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sessionEngine(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/probe", mw, func(c *gin.Context) {
		id, _ := utils.GetSessionIDFromContext(c)
		c.String(http.StatusOK, id)
	})
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionRequired(t *testing.T) {
	utils.SetJWTSecret("middleware-test")
	id := uuid.New()
	token, _, err := utils.GenerateSessionToken(id, time.Hour)
	require.NoError(t, err)

	r := sessionEngine(SessionRequired())

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer garbage").Code)
}

func TestOptionalSession(t *testing.T) {
	utils.SetJWTSecret("middleware-test")
	id := uuid.New()
	token, _, err := utils.GenerateSessionToken(id, time.Hour)
	require.NoError(t, err)

	r := sessionEngine(OptionalSession())

	w := get(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = get(r, "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = get(r, "bearer "+token)
	assert.Equal(t, id.String(), w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0, 2)
	r := gin.New()
	r.GET("/probe", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "").Code)
	assert.Equal(t, http.StatusOK, get(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "").Code)
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	limiter.getVisitor("10.0.0.1")

	limiter.cleanupVisitors(time.Now())
	assert.Len(t, limiter.visitors, 1)

	limiter.cleanupVisitors(time.Now().Add(visitorIdleTTL + time.Second))
	assert.Empty(t, limiter.visitors)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/probe", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := get(r, "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRecoveryUsesEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/probe", func(c *gin.Context) { panic("boom") })

	w := get(r, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestExtractResourceType(t *testing.T) {
	assert.Equal(t, "cart", extractResourceType("/v1/cart/items/3"))
	assert.Equal(t, "health", extractResourceType("/health"))
	assert.Equal(t, "unknown", extractResourceType("/"))
}
