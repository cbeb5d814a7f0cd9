package handler

import (
	"net/http"

	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/middleware"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// Verify echoes the claims of an already-validated bearer token.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	respondData(c, http.StatusOK, dto.ClaimsResponse{
		UserID:   claims.UserID,
		Username: claims.Username,
		Name:     claims.Name,
		Role:     claims.Role,
	})
}
