package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The credential endpoints — admin login, client login, client register —
// all sit behind the same 20/min/IP budget.

func limiterRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusCreated) }
	r.POST("/api/clients/register", middleware.LoginRateLimiter(), ok)
	r.POST("/api/clients/login", middleware.LoginRateLimiter(), ok)
	return r
}

// Each test uses its own source IP: the limiter state is per-IP and
// process-global.
func postFrom(r *gin.Engine, path, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = ip + ":51234"
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRateLimiter_RegisterThrottled(t *testing.T) {
	r := limiterRouter()
	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusCreated, postFrom(r, "/api/clients/register", "10.9.0.1").Code, "attempt %d", i+1)
	}
	w := postFrom(r, "/api/clients/register", "10.9.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestLoginRateLimiter_BudgetSharedAcrossAuthEndpoints(t *testing.T) {
	r := limiterRouter()
	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusCreated, postFrom(r, "/api/clients/login", "10.9.0.2").Code)
	}
	// Register spends from the same per-IP budget.
	assert.Equal(t, http.StatusTooManyRequests, postFrom(r, "/api/clients/register", "10.9.0.2").Code)
}

func TestLoginRateLimiter_PerIP(t *testing.T) {
	r := limiterRouter()
	for i := 0; i < 21; i++ {
		postFrom(r, "/api/clients/register", "10.9.0.3")
	}
	assert.Equal(t, http.StatusCreated, postFrom(r, "/api/clients/register", "10.9.0.4").Code)
}

func TestRateLimiter_General(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimiter(3, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.9.0.5:51234"
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get().Code)
	}
	w := get()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
