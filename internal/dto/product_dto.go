package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string           `json:"name"           validate:"required,min=2,max=120"`
	Description   *string          `json:"description"`
	CategoryID    *string          `json:"category_id"    validate:"omitempty,uuid"`
	SubcategoryID *string          `json:"subcategory_id" validate:"omitempty,uuid"`
	Price         decimal.Decimal  `json:"price"          validate:"required,gt=0"`
	Cost          *decimal.Decimal `json:"cost"           validate:"omitempty,min=0"`
	Stock         *int             `json:"stock"          validate:"omitempty,min=0"`
	Featured      *bool            `json:"featured"`
	ImageData     *string          `json:"image_data"`
}

// UpdateProductRequest enumerates every updatable field explicitly.
// A nil field keeps its previous value; the update always refreshes the
// modification timestamp.
type UpdateProductRequest struct {
	Name          *string          `json:"name"           validate:"omitempty,min=2,max=120"`
	Description   *string          `json:"description"`
	CategoryID    *string          `json:"category_id"    validate:"omitempty,uuid"`
	SubcategoryID *string          `json:"subcategory_id" validate:"omitempty,uuid"`
	Price         *decimal.Decimal `json:"price"          validate:"omitempty,gt=0"`
	Cost          *decimal.Decimal `json:"cost"           validate:"omitempty,min=0"`
	Stock         *int             `json:"stock"          validate:"omitempty,min=0"`
	Status        *string          `json:"status"         validate:"omitempty,oneof=active inactive"`
	Featured      *bool            `json:"featured"`
	ImageData     *string          `json:"image_data"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProductFilter is bound from the query string of product list endpoints.
// Status is forced to "active" on the public endpoint regardless of input.
type ProductFilter struct {
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
	Search     string `form:"search"`
	Featured   bool   `form:"featured"`
	Status     string `form:"status,default=active" validate:"omitempty,oneof=active inactive all"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	CategoryID      *string         `json:"category_id"`
	CategoryName    *string         `json:"category_name"`
	SubcategoryID   *string         `json:"subcategory_id"`
	SubcategoryName *string         `json:"subcategory_name"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Stock           int             `json:"stock"`
	Status          string          `json:"status"`
	Featured        bool            `json:"featured"`
	ImageData       *string         `json:"image_data"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// DeletedProductResponse is returned by DELETE /api/admin/products/:id.
type DeletedProductResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
