package service

import (
	"context"
	"errors"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/config"
	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CustomerService covers registration, login, and account administration.
type CustomerService interface {
	Register(ctx context.Context, req dto.RegisterCustomerRequest) (*dto.CustomerResponse, error)
	Login(ctx context.Context, req dto.CustomerLoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo repository.CustomerRepository
	cfg  *config.Config
}

func NewCustomerService(repo repository.CustomerRepository, cfg *config.Config) CustomerService {
	return &customerService{repo: repo, cfg: cfg}
}

func mapCustomer(c *model.Customer) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{
		ID:        c.ID.String(),
		Username:  c.Username,
		Email:     c.Email,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Active:    c.Active,
		Role:      c.Role,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.LastLoginAt != nil {
		s := c.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &s
	}
	return resp
}

// Register creates a customer account. The database unique constraints on
// username and email are the authoritative duplicate guard — a violation is
// returned as ErrConflict and no row is created.
func (s *customerService) Register(ctx context.Context, req dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &model.Customer{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Active:       true,
		Role:         "customer",
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return mapCustomer(customer), nil
}

// Login accepts a username or email as identifier and issues a 24h token.
func (s *customerService) Login(ctx context.Context, req dto.CustomerLoginRequest) (*dto.LoginResponse, error) {
	customer, err := s.repo.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiry := time.Duration(s.cfg.CustomerTokenHours) * time.Hour
	token, err := generateToken(s.cfg.JWTSecret, customer.ID.String(), customer.Username, customer.Name, customer.Role, expiry)
	if err != nil {
		return nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, customer.ID); err != nil {
		log.Warn().Err(err).Str("customer", customer.Username).Msg("failed to record last login")
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.cfg.CustomerTokenHours * 3600,
		User:      mapCustomer(customer),
	}, nil
}

func (s *customerService) GetProfile(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return mapCustomer(customer), nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = *mapCustomer(&customers[i])
	}
	return resp, nil
}

// Update applies the enumerated patch; nil fields keep their previous value.
func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.Active != nil {
		customer.Active = *req.Active
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return mapCustomer(customer), nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
