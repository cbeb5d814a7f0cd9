package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, secret, userID, role string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID, "username": "testuser", "name": "Test", "role": role,
		"exp": time.Now().Add(dur).Unix(), "iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return s
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", middleware.JWTAuth(testSecret), func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	r.GET("/admin", middleware.JWTAuth(testSecret), middleware.RequireRole(middleware.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/optional", middleware.OptionalJWT(testSecret), func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

// Absent token and invalid token are distinct failures: 401 vs 403.

func TestJWTAuth_NoToken(t *testing.T) {
	w := doGet(testRouter(), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	w := doGet(testRouter(), "/protected", "this.is.garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	tok := signToken(t, testSecret, uuid.New().String(), middleware.RoleCustomer, -time.Second)
	w := doGet(testRouter(), "/protected", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	tok := signToken(t, "another_secret_entirely_32_chars!", uuid.New().String(), middleware.RoleCustomer, time.Hour)
	w := doGet(testRouter(), "/protected", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tok := signToken(t, testSecret, uuid.New().String(), middleware.RoleCustomer, time.Hour)
	w := doGet(testRouter(), "/protected", tok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_CustomerOnAdminRoute(t *testing.T) {
	tok := signToken(t, testSecret, uuid.New().String(), middleware.RoleCustomer, time.Hour)
	w := doGet(testRouter(), "/admin", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Admin(t *testing.T) {
	tok := signToken(t, testSecret, uuid.New().String(), middleware.RoleAdmin, time.Hour)
	w := doGet(testRouter(), "/admin", tok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalJWT_Anonymous(t *testing.T) {
	w := doGet(testRouter(), "/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}

func TestOptionalJWT_InvalidTokenStillPasses(t *testing.T) {
	w := doGet(testRouter(), "/optional", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}

func TestOptionalJWT_ValidTokenSetsClaims(t *testing.T) {
	id := uuid.New().String()
	tok := signToken(t, testSecret, id, middleware.RoleCustomer, time.Hour)
	w := doGet(testRouter(), "/optional", tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)
}
