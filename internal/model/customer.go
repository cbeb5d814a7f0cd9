package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a shop account. Username and email are unique at the database
// level — the constraints are the authoritative guard against duplicate
// registrations racing past the application-level check.
type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Name         string    `gorm:"not null"`
	Phone        *string
	Address      *string
	Active       bool   `gorm:"not null;default:true"`
	Role         string `gorm:"type:varchar(20);not null;default:'customer'"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

func (Customer) TableName() string { return "customers" }
