package handler

import (
	"net/http"

	"github.com/lr4302179-jpg/backend-elchicho/internal/apierror"
	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoriesHandler struct{ svc service.CatalogService }

func NewCategoriesHandler(svc service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List GET /api/categories — public, subcategories included.
func (h *CategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	respondData(c, http.StatusOK, resp)
}

// Create POST /api/admin/categories
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// Update PUT /api/admin/categories/:id
func (h *CategoriesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.UpdateCategory(c.Request.Context(), id, req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// Delete DELETE /api/admin/categories/:id — cascades subcategories, nulls
// product references.
func (h *CategoriesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if svcErr := h.svc.DeleteCategory(c.Request.Context(), id); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondMessage(c, http.StatusOK, nil, "category deleted")
}

// ── Subcategories ────────────────────────────────────────────────────────────

// ListSubcategories GET /api/admin/subcategories[?category_id=]
func (h *CategoriesHandler) ListSubcategories(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid category_id"))
			return
		}
		categoryID = &id
	}
	resp, err := h.svc.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	respondData(c, http.StatusOK, resp)
}

// CreateSubcategory POST /api/admin/subcategories
func (h *CategoriesHandler) CreateSubcategory(c *gin.Context) {
	var req dto.CreateSubcategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSubcategory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// UpdateSubcategory PUT /api/admin/subcategories/:id
func (h *CategoriesHandler) UpdateSubcategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateSubcategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.UpdateSubcategory(c.Request.Context(), id, req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// DeleteSubcategory DELETE /api/admin/subcategories/:id
func (h *CategoriesHandler) DeleteSubcategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if svcErr := h.svc.DeleteSubcategory(c.Request.Context(), id); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondMessage(c, http.StatusOK, nil, "subcategory deleted")
}
