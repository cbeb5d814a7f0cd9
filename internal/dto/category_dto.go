package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=80"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=80"`
}

type CategoryResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	CreatedAt     string                `json:"created_at"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

type CreateSubcategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Name       string `json:"name"        validate:"required,min=2,max=80"`
}

type UpdateSubcategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=80"`
}

type SubcategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
}
