package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies products. Deleting a category cascades to its
// subcategories and nulls the category reference on affected products.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Products      []Product     `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (Category) TableName() string { return "categories" }

// Subcategory is a second-level grouping under a Category.
type Subcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"not null"`
	CreatedAt  time.Time
}

func (Subcategory) TableName() string { return "subcategories" }
