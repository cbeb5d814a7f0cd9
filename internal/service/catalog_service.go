package service

import (
	"context"
	"errors"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService defines business operations for categories and
// subcategories.
type CatalogService interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateSubcategory(ctx context.Context, req dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error)
	ListSubcategories(ctx context.Context, categoryID *uuid.UUID) ([]dto.SubcategoryResponse, error)
	UpdateSubcategory(ctx context.Context, id uuid.UUID, req dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error)
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	repo repository.CategoryRepository
}

func NewCatalogService(repo repository.CategoryRepository) CatalogService {
	return &catalogService{repo: repo}
}

func mapCategory(c *model.Category) *dto.CategoryResponse {
	subs := make([]dto.SubcategoryResponse, len(c.Subcategories))
	for i, s := range c.Subcategories {
		subs[i] = dto.SubcategoryResponse{ID: s.ID, CategoryID: s.CategoryID, Name: s.Name}
	}
	return &dto.CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		Subcategories: subs,
	}
}

func (s *catalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	c := &model.Category{Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return mapCategory(c), nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapCategory(&list[i]))
	}
	return result, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil && *req.Name != c.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrConflict
		}
		c.Name = *req.Name
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return mapCategory(c), nil
}

// DeleteCategory cascades subcategory deletion and nulls the category
// reference on affected products; the products themselves survive.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *catalogService) CreateSubcategory(ctx context.Context, req dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := s.repo.FindByID(ctx, categoryID); err != nil {
		return nil, ErrNotFound
	}

	sub := &model.Subcategory{CategoryID: categoryID, Name: req.Name}
	if err := s.repo.CreateSubcategory(ctx, sub); err != nil {
		return nil, err
	}
	return &dto.SubcategoryResponse{ID: sub.ID, CategoryID: sub.CategoryID, Name: sub.Name}, nil
}

func (s *catalogService) ListSubcategories(ctx context.Context, categoryID *uuid.UUID) ([]dto.SubcategoryResponse, error) {
	list, err := s.repo.ListSubcategories(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SubcategoryResponse, len(list))
	for i, sub := range list {
		result[i] = dto.SubcategoryResponse{ID: sub.ID, CategoryID: sub.CategoryID, Name: sub.Name}
	}
	return result, nil
}

func (s *catalogService) UpdateSubcategory(ctx context.Context, id uuid.UUID, req dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	sub, err := s.repo.FindSubcategoryByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if err := s.repo.UpdateSubcategory(ctx, sub); err != nil {
		return nil, err
	}
	return &dto.SubcategoryResponse{ID: sub.ID, CategoryID: sub.CategoryID, Name: sub.Name}, nil
}

func (s *catalogService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindSubcategoryByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.DeleteSubcategory(ctx, id)
}
