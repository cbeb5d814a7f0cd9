package handler

import (
	"net/http"

	"github.com/lr4302179-jpg/backend-elchicho/internal/apierror"
	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// ListPublic GET /api/products — active products only, regardless of the
// status query parameter.
func (h *ProductsHandler) ListPublic(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	filter.Status = model.ProductStatusActive
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	respondData(c, http.StatusOK, resp)
}

// GetPublic GET /api/products/:id — inactive products read as 404.
func (h *ProductsHandler) GetPublic(c *gin.Context) {
	h.get(c, true)
}

// ListAdmin GET /api/admin/products — status filter honored, "all" allowed.
func (h *ProductsHandler) ListAdmin(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	respondData(c, http.StatusOK, resp)
}

// GetAdmin GET /api/admin/products/:id — inactive products included.
func (h *ProductsHandler) GetAdmin(c *gin.Context) {
	h.get(c, false)
}

func (h *ProductsHandler) get(c *gin.Context, publicOnly bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id, publicOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// Create POST /api/admin/products
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// Update PUT /api/admin/products/:id
func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateProductRequest
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

// Delete DELETE /api/admin/products/:id — hard delete, echoes id and name.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, svcErr := h.svc.Delete(c.Request.Context(), id)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondMessage(c, http.StatusOK, resp, "product deleted")
}
