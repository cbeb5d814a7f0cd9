package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office principal. Exactly one admin is reconciled from
// configuration at startup via an idempotent upsert keyed by username.
type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'admin'"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Admin) TableName() string { return "admins" }
