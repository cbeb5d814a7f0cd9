package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/handler"
	"github.com/lr4302179-jpg/backend-elchicho/internal/middleware"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// stubSaleService records the customer link passed down by the handler and
// can be primed to fail.
type stubSaleService struct {
	service.SaleService
	gotCustomerID *uuid.UUID
	err           error
}

func (s *stubSaleService) Create(_ context.Context, req dto.CreateSaleRequest, customerID *uuid.UUID) (*dto.CreateSaleResponse, error) {
	s.gotCustomerID = customerID
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CreateSaleResponse{
		ID:          uuid.New().String(),
		OrderNumber: "EC-20250101000000-0001",
		Total:       req.Total,
		Status:      "pending",
	}, nil
}

func salesRouter(svc service.SaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewSalesHandler(svc)
	r.POST("/api/sales", middleware.OptionalJWT(testSecret), h.Create)
	return r
}

func postSale(r *gin.Engine, body interface{}, token string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func customerToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID, "username": "maria", "name": "María", "role": role,
		"exp": time.Now().Add(time.Hour).Unix(), "iat": time.Now().Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func validSaleBody() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CartData: []dto.CartItemRequest{
			{Name: "Gorra trucker", Quantity: 1, Price: decimal.RequireFromString("19.99")},
		},
		Total: decimal.RequireFromString("19.99"),
	}
}

func TestCreateSale_Anonymous(t *testing.T) {
	svc := &stubSaleService{}
	w := postSale(salesRouter(svc), validSaleBody(), "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, svc.gotCustomerID)

	var resp struct {
		Success bool                   `json:"success"`
		Data    dto.CreateSaleResponse `json:"data"`
		Message string                 `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "pending", resp.Data.Status)
	assert.NotEmpty(t, resp.Message)
}

func TestCreateSale_CustomerTokenLinksOrder(t *testing.T) {
	svc := &stubSaleService{}
	id := uuid.New()
	tok := customerToken(t, id.String(), middleware.RoleCustomer)

	w := postSale(salesRouter(svc), validSaleBody(), tok)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotNil(t, svc.gotCustomerID)
	assert.Equal(t, id, *svc.gotCustomerID)
}

func TestCreateSale_AdminTokenDoesNotLink(t *testing.T) {
	svc := &stubSaleService{}
	tok := customerToken(t, uuid.New().String(), middleware.RoleAdmin)

	w := postSale(salesRouter(svc), validSaleBody(), tok)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, svc.gotCustomerID, "only customer tokens link the order")
}

func TestCreateSale_EmptyCartRejected(t *testing.T) {
	svc := &stubSaleService{}
	body := validSaleBody()
	body.CartData = nil

	w := postSale(salesRouter(svc), body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCreateSale_ZeroTotalRejected(t *testing.T) {
	svc := &stubSaleService{}
	body := validSaleBody()
	body.Total = decimal.Zero

	w := postSale(salesRouter(svc), body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSale_StorageFailureIsOpaque(t *testing.T) {
	// Untyped repository/driver errors must surface as a generic 500 —
	// never as a 4xx carrying the raw message.
	svc := &stubSaleService{
		err: errors.New(`pq: connection refused at 10.0.0.5:5432 (password "s3cret" rejected)`),
	}

	w := postSale(salesRouter(svc), validSaleBody(), "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "pq:")
	assert.NotContains(t, w.Body.String(), "s3cret")
}

func TestCreateSale_TypedInputErrorStays400(t *testing.T) {
	svc := &stubSaleService{
		err: fmt.Errorf("%w: total must be positive", service.ErrInvalidInput),
	}

	w := postSale(salesRouter(svc), validSaleBody(), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "total must be positive")
}

func TestCreateSale_InvalidJSON(t *testing.T) {
	svc := &stubSaleService{}
	r := salesRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
