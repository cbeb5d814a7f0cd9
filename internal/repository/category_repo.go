package repository

import (
	"context"

	"github.com/lr4302179-jpg/backend-elchicho/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository covers categories and their subcategories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateSubcategory(ctx context.Context, s *model.Subcategory) error
	ListSubcategories(ctx context.Context, categoryID *uuid.UUID) ([]model.Subcategory, error)
	FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*model.Subcategory, error)
	UpdateSubcategory(ctx context.Context, s *model.Subcategory) error
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Preload("Subcategories").Order("name ASC").Find(&list).Error
	return list, err
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Preload("Subcategories").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes a category in a single transaction: product references are
// nulled first, then subcategories go, then the category itself. Products
// themselves are never deleted here.
func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).
			Where("category_id = ?", id).
			Updates(map[string]interface{}{"category_id": nil, "subcategory_id": nil}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Subcategory{}, "category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, "id = ?", id).Error
	})
}

func (r *categoryRepo) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *categoryRepo) ListSubcategories(ctx context.Context, categoryID *uuid.UUID) ([]model.Subcategory, error) {
	var list []model.Subcategory
	q := r.db.WithContext(ctx).Order("name ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *categoryRepo) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*model.Subcategory, error) {
	var s model.Subcategory
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *categoryRepo) UpdateSubcategory(ctx context.Context, s *model.Subcategory) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// DeleteSubcategory nulls the subcategory reference on affected products
// before removing the row.
func (r *categoryRepo) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).
			Where("subcategory_id = ?", id).
			Update("subcategory_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Subcategory{}, "id = ?", id).Error
	})
}
