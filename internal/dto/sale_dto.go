package dto

import (
	"github.com/shopspring/decimal"
)

// CartItemRequest is one line of the submitted cart snapshot.
type CartItemRequest struct {
	ProductID *string         `json:"product_id" validate:"omitempty,uuid"`
	Name      string          `json:"name"       validate:"required"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"      validate:"min=0"`
}

// CreateSaleRequest is the body of POST /api/sales.
type CreateSaleRequest struct {
	CartData      []CartItemRequest `json:"cart_data"      validate:"required,min=1,dive"`
	Total         decimal.Decimal   `json:"total"          validate:"required,gt=0"`
	ClientName    *string           `json:"client_name"    validate:"omitempty,max=120"`
	ClientEmail   *string           `json:"client_email"   validate:"omitempty,email"`
	ClientPhone   *string           `json:"client_phone"   validate:"omitempty,max=30"`
	PaymentMethod *string           `json:"payment_method" validate:"omitempty,max=30"`
	Notes         *string           `json:"notes"          validate:"omitempty,max=500"`
}

// CreateSaleResponse echoes the persisted order identity.
type CreateSaleResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
}

// UpdateSaleRequest mutates the status field only.
type UpdateSaleRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped delivered cancelled"`
}

// SaleFilter is bound from the query string of GET /api/admin/sales.
type SaleFilter struct {
	Status string `form:"status,default=all" validate:"omitempty,oneof=pending paid shipped delivered cancelled all"`
	Limit  int    `form:"limit,default=50"   validate:"min=1,max=200"`
}

type SaleResponse struct {
	ID            string            `json:"id"`
	OrderNumber   string            `json:"order_number"`
	CustomerID    *string           `json:"customer_id"`
	CartData      []CartItemRequest `json:"cart_data"`
	Total         decimal.Decimal   `json:"total"`
	ClientName    *string           `json:"client_name"`
	ClientEmail   *string           `json:"client_email"`
	ClientPhone   *string           `json:"client_phone"`
	Status        string            `json:"status"`
	PaymentMethod *string           `json:"payment_method"`
	Notes         *string           `json:"notes"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}
