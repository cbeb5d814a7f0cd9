package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/handler"
	"github.com/lr4302179-jpg/backend-elchicho/internal/middleware"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubAuthService accepts exactly one credential pair.
type stubAuthService struct {
	username, password string
}

func (s *stubAuthService) Login(_ context.Context, req dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.username || req.Password != s.password {
		return nil, service.ErrInvalidCredentials
	}
	return &dto.LoginResponse{
		Token: "signed.jwt.token", TokenType: "bearer", ExpiresIn: 8 * 3600,
		User: dto.AdminResponse{ID: uuid.New().String(), Username: req.Username, Role: "admin"},
	}, nil
}

func (s *stubAuthService) EnsureAdmin(_ context.Context) error { return nil }

func authRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAuthHandler(svc)
	r.POST("/api/admin/login", h.Login)
	r.GET("/api/admin/verify", middleware.JWTAuth(testSecret), middleware.RequireRole(middleware.RoleAdmin), h.Verify)
	return r
}

func postLogin(r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginEndpoint_Success(t *testing.T) {
	r := authRouter(&stubAuthService{username: "admin", password: "secret123"})

	w := postLogin(r, dto.AdminLoginRequest{Username: "admin", Password: "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    dto.LoginResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "bearer", resp.Data.TokenType)
	assert.NotEmpty(t, resp.Data.Token)
}

func TestAdminLoginEndpoint_BadCredentials(t *testing.T) {
	r := authRouter(&stubAuthService{username: "admin", password: "secret123"})

	w := postLogin(r, dto.AdminLoginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAdminLoginEndpoint_MissingFields(t *testing.T) {
	r := authRouter(&stubAuthService{username: "admin", password: "secret123"})

	w := postLogin(r, dto.AdminLoginRequest{Username: "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyEndpoint_EchoesClaims(t *testing.T) {
	r := authRouter(&stubAuthService{})
	id := uuid.New().String()
	tok := customerToken(t, id, middleware.RoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data dto.ClaimsResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.Data.UserID)
	assert.Equal(t, middleware.RoleAdmin, resp.Data.Role)
}

func TestVerifyEndpoint_NoToken(t *testing.T) {
	r := authRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
