package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lr4302179-jpg/backend-elchicho/internal/config"
	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubAdminRepo struct {
	admins map[string]*model.Admin // keyed by username
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*model.Admin)}
}

func (r *stubAdminRepo) Upsert(_ context.Context, a *model.Admin) error {
	if existing, ok := r.admins[a.Username]; ok {
		// Conflict path: the row keeps its id, mutable columns are replaced.
		existing.PasswordHash = a.PasswordHash
		existing.Name = a.Name
		existing.Email = a.Email
		existing.Role = a.Role
		a.ID = existing.ID
		return nil
	}
	a.ID = uuid.New()
	r.admins[a.Username] = a
	return nil
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*model.Admin, error) {
	a, ok := r.admins[username]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubAdminRepo) TouchLastLogin(_ context.Context, _ uuid.UUID) error { return nil }

// ── Helpers ───────────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:          testSecret,
		AdminTokenHours:    8,
		CustomerTokenHours: 24,
		AdminUsername:      "admin",
		AdminPassword:      "bootstrap-secret",
		AdminName:          "Admin",
		AdminEmail:         "admin@example.com",
	}
}

func seedAdmin(t *testing.T, repo *stubAdminRepo, username, password string) *model.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	assert.NoError(t, err)
	a := &model.Admin{
		ID: uuid.New(), Username: username, Name: "Test Admin",
		Email: username + "@example.com", PasswordHash: string(hash), Role: "admin",
	}
	repo.admins[username] = a
	return a
}

// ── Tests: Login ──────────────────────────────────────────────────────────────

func TestAdminLogin_Success(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "admin", "password123")
	svc := service.NewAuthService(repo, newTestCfg())

	resp, err := svc.Login(context.Background(), dto.AdminLoginRequest{
		Username: "admin", Password: "password123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)

	user, ok := resp.User.(dto.AdminResponse)
	assert.True(t, ok)
	assert.Equal(t, "admin", user.Role)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "admin", "correctpass")
	svc := service.NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.AdminLoginRequest{
		Username: "admin", Password: "wrongpass",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAdminLogin_UnknownUsername(t *testing.T) {
	repo := newStubAdminRepo()
	svc := service.NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.AdminLoginRequest{
		Username: "ghost", Password: "anypass123",
	})
	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

// ── Tests: Admin bootstrap ────────────────────────────────────────────────────

func TestEnsureAdmin_CreatesAccount(t *testing.T) {
	repo := newStubAdminRepo()
	svc := service.NewAuthService(repo, newTestCfg())

	assert.NoError(t, svc.EnsureAdmin(context.Background()))

	a, err := repo.FindByUsername(context.Background(), "admin")
	assert.NoError(t, err)
	assert.Equal(t, "admin", a.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("bootstrap-secret")))
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	repo := newStubAdminRepo()
	svc := service.NewAuthService(repo, newTestCfg())

	assert.NoError(t, svc.EnsureAdmin(context.Background()))
	first, _ := repo.FindByUsername(context.Background(), "admin")
	firstID := first.ID

	// Second boot: same username, row id must not rotate and no second row
	// may appear.
	assert.NoError(t, svc.EnsureAdmin(context.Background()))
	assert.Len(t, repo.admins, 1)
	again, _ := repo.FindByUsername(context.Background(), "admin")
	assert.Equal(t, firstID, again.ID)
}

func TestEnsureAdmin_PasswordRotation(t *testing.T) {
	repo := newStubAdminRepo()
	cfg := newTestCfg()
	svc := service.NewAuthService(repo, cfg)
	assert.NoError(t, svc.EnsureAdmin(context.Background()))

	cfg.AdminPassword = "rotated-secret"
	assert.NoError(t, svc.EnsureAdmin(context.Background()))

	_, err := svc.Login(context.Background(), dto.AdminLoginRequest{
		Username: "admin", Password: "rotated-secret",
	})
	assert.NoError(t, err)
	_, err = svc.Login(context.Background(), dto.AdminLoginRequest{
		Username: "admin", Password: "bootstrap-secret",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestEnsureAdmin_MissingPassword(t *testing.T) {
	repo := newStubAdminRepo()
	cfg := newTestCfg()
	cfg.AdminPassword = ""
	svc := service.NewAuthService(repo, cfg)

	assert.Error(t, svc.EnsureAdmin(context.Background()))
	assert.Empty(t, repo.admins)
}
