package service

import (
	"context"
	"errors"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/config"
	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// AuthService handles admin authentication and the startup bootstrap.
type AuthService interface {
	Login(ctx context.Context, req dto.AdminLoginRequest) (*dto.LoginResponse, error)
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	repo repository.AdminRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Login verifies admin credentials and issues an 8h token. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiry := time.Duration(s.cfg.AdminTokenHours) * time.Hour
	token, err := generateToken(s.cfg.JWTSecret, admin.ID.String(), admin.Username, admin.Name, admin.Role, expiry)
	if err != nil {
		return nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, admin.ID); err != nil {
		log.Warn().Err(err).Str("admin", admin.Username).Msg("failed to record last login")
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.cfg.AdminTokenHours * 3600,
		User: dto.AdminResponse{
			ID:       admin.ID.String(),
			Username: admin.Username,
			Name:     admin.Name,
			Email:    admin.Email,
			Role:     admin.Role,
		},
	}, nil
}

// EnsureAdmin reconciles the bootstrap admin from configuration. The upsert
// is keyed by username so restarts never duplicate the row or rotate its id.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is not configured")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcryptCost)
	if err != nil {
		return err
	}
	admin := &model.Admin{
		Username:     s.cfg.AdminUsername,
		PasswordHash: string(hash),
		Name:         s.cfg.AdminName,
		Email:        s.cfg.AdminEmail,
		Role:         "admin",
	}
	if err := s.repo.Upsert(ctx, admin); err != nil {
		// A concurrent boot may have won the race; the row exists either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// generateToken signs an HS256 token embedding the principal's identity.
// Shared by admin and customer logins.
func generateToken(secret, userID, username, name, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"name":     name,
		"role":     role,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
