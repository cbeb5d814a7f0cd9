package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product statuses form a closed set — any other value is rejected at the
// validation layer before it reaches the database.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product is a catalog item. Category and subcategory references are
// optional and nulled when the parent is deleted.
type Product struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string     `gorm:"index;not null"`
	Description   *string    `gorm:"type:text"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	SubcategoryID *uuid.UUID `gorm:"type:uuid;index"`
	// Price is the selling price; Cost is the amount invested per unit.
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cost     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock    int             `gorm:"not null;default:0"`
	Status   string          `gorm:"type:varchar(20);not null;default:'active'"`
	Featured bool            `gorm:"not null;default:false"`
	// ImageData holds an optional embedded image payload (data URL / base64)
	ImageData *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Category    *Category    `gorm:"foreignKey:CategoryID"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID"`
}

func (Product) TableName() string { return "products" }
