package repository

import (
	"context"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminRepository defines data access for back-office accounts.
type AdminRepository interface {
	Upsert(ctx context.Context, a *model.Admin) error
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) AdminRepository { return &adminRepo{db: db} }

// Upsert reconciles the bootstrap admin keyed by username. Re-running with
// the same username never creates a second row and never changes the row's
// id, so tokens issued before a restart stay valid.
func (r *adminRepo) Upsert(ctx context.Context, a *model.Admin) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"password_hash", "name", "email", "role", "updated_at",
		}),
	}).Create(a).Error
}

func (r *adminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).Where("id = ?", id).
		Update("last_login_at", time.Now()).Error
}
