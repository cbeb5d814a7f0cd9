package service

import (
	"context"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService defines business operations for catalog products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	// GetByID returns the product; when publicOnly is set, inactive products
	// are reported as not found.
	GetByID(ctx context.Context, id uuid.UUID, publicOnly bool) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeletedProductResponse, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func mapProduct(p *model.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		Status:      p.Status,
		Featured:    p.Featured,
		ImageData:   p.ImageData,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		resp.CategoryID = &s
	}
	if p.SubcategoryID != nil {
		s := p.SubcategoryID.String()
		resp.SubcategoryID = &s
	}
	if p.Category != nil {
		resp.CategoryName = &p.Category.Name
	}
	if p.Subcategory != nil {
		resp.SubcategoryName = &p.Subcategory.Name
	}
	return resp
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

// Create persists a product. Name and price are mandatory (enforced at the
// validation layer); everything else defaults: stock 0, status active,
// featured false, cost 0.
func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    parseOptionalUUID(req.CategoryID),
		SubcategoryID: parseOptionalUUID(req.SubcategoryID),
		Price:         req.Price,
		Cost:          decimal.Zero,
		Status:        model.ProductStatusActive,
		ImageData:     req.ImageData,
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return mapProduct(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID, publicOnly bool) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if publicOnly && p.Status != model.ProductStatusActive {
		return nil, ErrNotFound
	}
	return mapProduct(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = *mapProduct(&products[i])
	}
	return resp, nil
}

// Update applies the enumerated patch struct: nil fields retain their
// previous value, and the modification timestamp is always refreshed.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.CategoryID != nil {
		p.CategoryID = parseOptionalUUID(req.CategoryID)
	}
	if req.SubcategoryID != nil {
		p.SubcategoryID = parseOptionalUUID(req.SubcategoryID)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.ImageData != nil {
		p.ImageData = req.ImageData
	}
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return mapProduct(p), nil
}

// Delete removes the product permanently and echoes its identity.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) (*dto.DeletedProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeletedProductResponse{ID: p.ID.String(), Name: p.Name}, nil
}
