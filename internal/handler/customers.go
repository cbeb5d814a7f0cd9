package handler

import (
	"net/http"

	"github.com/lr4302179-jpg/backend-elchicho/internal/apierror"
	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/middleware"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomersHandler struct {
	svc   service.CustomerService
	sales service.SaleService
}

func NewCustomersHandler(svc service.CustomerService, sales service.SaleService) *CustomersHandler {
	return &CustomersHandler{svc: svc, sales: sales}
}

// Register POST /api/clients/register
func (h *CustomersHandler) Register(c *gin.Context) {
	var req dto.RegisterCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, resp, "account created")
}

// Login POST /api/clients/login — identifier may be username or email.
func (h *CustomersHandler) Login(c *gin.Context) {
	var req dto.CustomerLoginRequest
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

// Me GET /api/clients/me — profile of the authenticated customer.
func (h *CustomersHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("invalid or expired token"))
		return
	}
	resp, svcErr := h.svc.GetProfile(c.Request.Context(), id)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// MyOrders GET /api/clients/orders — the authenticated customer's sales.
func (h *CustomersHandler) MyOrders(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("invalid or expired token"))
		return
	}
	resp, svcErr := h.sales.ListByCustomer(c.Request.Context(), id)
	if svcErr != nil {
		c.Error(svcErr) //nolint:errcheck
		return
	}
	respondData(c, http.StatusOK, resp)
}

// ── Admin operations ─────────────────────────────────────────────────────────

// List GET /api/admin/clients
func (h *CustomersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	respondData(c, http.StatusOK, resp)
}

// Update PUT /api/admin/clients/:id
func (h *CustomersHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Update(c.Request.Context(), id, req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// Delete DELETE /api/admin/clients/:id
func (h *CustomersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if svcErr := h.svc.Delete(c.Request.Context(), id); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondMessage(c, http.StatusOK, nil, "client deleted")
}
