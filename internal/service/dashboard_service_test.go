package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedProduct(repo *stubProductRepo, costStr, priceStr string, stock int, status string, featured bool) {
	id := uuid.New()
	repo.products[id] = &model.Product{
		ID: id, Name: "p-" + id.String()[:8],
		Cost: price(costStr), Price: price(priceStr),
		Stock: stock, Status: status, Featured: featured,
	}
}

func seedSale(repo *stubSaleRepo, totalStr, status string, quantities ...int) {
	items := make([]model.CartItem, len(quantities))
	for i, q := range quantities {
		items[i] = model.CartItem{Name: "item", Quantity: q, Price: price("1.00")}
	}
	cart, _ := json.Marshal(items)
	id := uuid.New()
	repo.sales[id] = &model.Sale{
		ID: id, OrderNumber: "EC-x-" + id.String()[:8],
		CartData: cart, Total: price(totalStr), Status: status,
	}
}

func TestDashboardSummary_Aggregates(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	svc := service.NewDashboardService(products, sales, nil)

	// cost×stock: 5×10 + 2×0 = 50; price×stock: 12×10 + 8×0 = 120
	seedProduct(products, "5.00", "12.00", 10, model.ProductStatusActive, true)
	seedProduct(products, "2.00", "8.00", 0, model.ProductStatusInactive, false)

	seedSale(sales, "100.00", model.SaleStatusPaid, 2, 3)
	seedSale(sales, "40.00", model.SaleStatusPending, 1)
	seedSale(sales, "999.00", model.SaleStatusCancelled, 7)

	resp, err := svc.Summary(context.Background())
	assert.NoError(t, err)

	assert.True(t, resp.TotalInvestment.Equal(price("50.00")), "got %s", resp.TotalInvestment)
	assert.True(t, resp.InventoryValue.Equal(price("120.00")), "got %s", resp.InventoryValue)
	assert.True(t, resp.PotentialProfit.Equal(price("70.00")), "got %s", resp.PotentialProfit)
	assert.Equal(t, 2, resp.TotalProducts)
	assert.Equal(t, 1, resp.ActiveProducts)
	assert.Equal(t, 1, resp.FeaturedCount)
	assert.Equal(t, 1, resp.OutOfStock)

	// Cancelled orders count toward totals but never revenue or units.
	assert.True(t, resp.Revenue.Equal(price("140.00")), "got %s", resp.Revenue)
	assert.Equal(t, 3, resp.TotalOrders)
	assert.Equal(t, 6, resp.UnitsSold)
	assert.Equal(t, map[string]int{
		model.SaleStatusPaid:      1,
		model.SaleStatusPending:   1,
		model.SaleStatusCancelled: 1,
	}, resp.SalesByStatus)
}

func TestDashboardSummary_Empty(t *testing.T) {
	svc := service.NewDashboardService(newStubProductRepo(), newStubSaleRepo(), nil)

	resp, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.TotalOrders)
	assert.True(t, resp.Revenue.IsZero())
	assert.True(t, resp.PotentialProfit.IsZero())
	assert.NotNil(t, resp.SalesByStatus)
}

func TestDashboardSummary_SkipsUnparseableCart(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	svc := service.NewDashboardService(products, sales, nil)

	id := uuid.New()
	sales.sales[id] = &model.Sale{
		ID: id, OrderNumber: "EC-broken",
		CartData: json.RawMessage(`not json at all`),
		Total:    price("30.00"), Status: model.SaleStatusPaid,
	}

	resp, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.True(t, resp.Revenue.Equal(price("30.00")))
	assert.Equal(t, 0, resp.UnitsSold, "broken snapshot contributes zero units")
}
