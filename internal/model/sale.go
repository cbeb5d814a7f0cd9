package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale statuses form a closed set. Updates outside this set are rejected.
const (
	SaleStatusPending   = "pending"
	SaleStatusPaid      = "paid"
	SaleStatusShipped   = "shipped"
	SaleStatusDelivered = "delivered"
	SaleStatusCancelled = "cancelled"
)

// ValidSaleStatus reports whether s belongs to the closed status set.
func ValidSaleStatus(s string) bool {
	switch s {
	case SaleStatusPending, SaleStatusPaid, SaleStatusShipped,
		SaleStatusDelivered, SaleStatusCancelled:
		return true
	}
	return false
}

// Sale captures a customer's cart at checkout. The cart is persisted as an
// opaque JSON document; line items are only interpreted again by the
// dashboard aggregation and the receipt generator.
type Sale struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber string     `gorm:"uniqueIndex;not null"`
	CustomerID  *uuid.UUID `gorm:"type:uuid;index"`
	CartData    json.RawMessage `gorm:"type:jsonb;not null"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Denormalized contact fields — kept even when CustomerID is set so the
	// order remains readable after a customer account is deleted.
	ClientName    *string
	ClientEmail   *string
	ClientPhone   *string
	Status        string  `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod *string `gorm:"type:varchar(30)"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}

func (Sale) TableName() string { return "sales" }

// CartItem is one line of a sale's cart snapshot.
type CartItem struct {
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
