package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/repository"
	"github.com/lr4302179-jpg/backend-elchicho/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// orderNumberRetries bounds the regeneration loop when the generated number
// collides with an existing row.
const orderNumberRetries = 3

// SaleService captures and administers orders.
type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest, customerID *uuid.UUID) (*dto.CreateSaleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]dto.SaleResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateSaleRequest) (*dto.SaleResponse, error)
}

type saleService struct {
	repo       repository.SaleRepository
	dispatcher *worker.Dispatcher // nil disables confirmation emails
}

func NewSaleService(repo repository.SaleRepository, dispatcher *worker.Dispatcher) SaleService {
	return &saleService{repo: repo, dispatcher: dispatcher}
}

// newOrderNumber derives a human-readable order number from the current time
// plus a random suffix. The unique index on the column remains the authority;
// Create retries on collision.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("EC-%s-%04d", now.Format("20060102150405"), rand.IntN(10000))
}

func mapSale(s *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID.String(),
		OrderNumber:   s.OrderNumber,
		Total:         s.Total,
		ClientName:    s.ClientName,
		ClientEmail:   s.ClientEmail,
		ClientPhone:   s.ClientPhone,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
	if s.CustomerID != nil {
		id := s.CustomerID.String()
		resp.CustomerID = &id
	}
	// Cart snapshot is stored opaque; tolerate legacy rows that fail to parse.
	if err := json.Unmarshal(s.CartData, &resp.CartData); err != nil {
		resp.CartData = []dto.CartItemRequest{}
	}
	return resp
}

// Create validates the cart snapshot and persists exactly one sale row.
// Validation layer guarantees cart non-empty and total > 0; the service
// re-checks both so direct callers get the same contract.
func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest, customerID *uuid.UUID) (*dto.CreateSaleResponse, error) {
	if len(req.CartData) == 0 {
		return nil, fmt.Errorf("%w: cart must be a non-empty array", ErrInvalidInput)
	}
	if !req.Total.IsPositive() {
		return nil, fmt.Errorf("%w: total must be positive", ErrInvalidInput)
	}

	cartJSON, err := json.Marshal(req.CartData)
	if err != nil {
		return nil, err
	}

	sale := &model.Sale{
		CustomerID:    customerID,
		CartData:      cartJSON,
		Total:         req.Total,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		Status:        model.SaleStatusPending,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	for attempt := 0; ; attempt++ {
		sale.OrderNumber = newOrderNumber(time.Now())
		err = s.repo.Create(ctx, sale)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < orderNumberRetries {
			continue
		}
		return nil, err
	}

	s.enqueueConfirmation(ctx, sale, req.CartData)

	return &dto.CreateSaleResponse{
		ID:          sale.ID.String(),
		OrderNumber: sale.OrderNumber,
		Total:       sale.Total,
		Status:      sale.Status,
	}, nil
}

// enqueueConfirmation pushes the order email job when a client email is
// present. Failures here never fail the sale — the order is already captured.
func (s *saleService) enqueueConfirmation(ctx context.Context, sale *model.Sale, cart []dto.CartItemRequest) {
	if s.dispatcher == nil || sale.ClientEmail == nil || *sale.ClientEmail == "" {
		return
	}
	items := make([]model.CartItem, len(cart))
	for i, line := range cart {
		items[i] = model.CartItem{
			ProductID: parseOptionalUUID(line.ProductID),
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}
	name := ""
	if sale.ClientName != nil {
		name = *sale.ClientName
	}
	payload := worker.OrderEmailPayload{
		OrderNumber: sale.OrderNumber,
		ToEmail:     *sale.ClientEmail,
		ClientName:  name,
		Items:       items,
		Total:       sale.Total,
		CreatedAt:   sale.CreatedAt,
	}
	if err := s.dispatcher.EnqueueOrderEmail(ctx, payload); err != nil {
		log.Error().Err(err).Str("order", sale.OrderNumber).Msg("failed to enqueue confirmation email")
	}
}

func (s *saleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return mapSale(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		resp[i] = *mapSale(&sales[i])
	}
	return resp, nil
}

func (s *saleService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]dto.SaleResponse, error) {
	sales, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		resp[i] = *mapSale(&sales[i])
	}
	return resp, nil
}

// UpdateStatus mutates the status field only, validated against the closed
// status set.
func (s *saleService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if !model.ValidSaleStatus(req.Status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}
	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return mapSale(sale), nil
}
