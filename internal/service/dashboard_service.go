package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/dto"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"
	"github.com/lr4302179-jpg/backend-elchicho/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 5 * time.Minute
)

// DashboardService computes catalog and sales aggregates for the admin panel.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	rdb      *redis.Client // nil disables caching
}

func NewDashboardService(products repository.ProductRepository, sales repository.SaleRepository, rdb *redis.Client) DashboardService {
	return &dashboardService{products: products, sales: sales, rdb: rdb}
}

// Summary computes the aggregates in-process. Cart snapshots are iterated
// row by row; unparseable snapshots contribute zero units.
func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalInvestment: decimal.Zero,
		InventoryValue:  decimal.Zero,
		Revenue:         decimal.Zero,
		SalesByStatus:   make(map[string]int),
	}

	for _, p := range products {
		stock := decimal.NewFromInt(int64(p.Stock))
		resp.TotalInvestment = resp.TotalInvestment.Add(p.Cost.Mul(stock))
		resp.InventoryValue = resp.InventoryValue.Add(p.Price.Mul(stock))
		resp.TotalProducts++
		if p.Status == model.ProductStatusActive {
			resp.ActiveProducts++
		}
		if p.Featured {
			resp.FeaturedCount++
		}
		if p.Stock == 0 {
			resp.OutOfStock++
		}
	}
	resp.PotentialProfit = resp.InventoryValue.Sub(resp.TotalInvestment)

	for _, sale := range sales {
		resp.TotalOrders++
		resp.SalesByStatus[sale.Status]++
		if sale.Status == model.SaleStatusCancelled {
			continue
		}
		resp.Revenue = resp.Revenue.Add(sale.Total)

		var items []model.CartItem
		if err := json.Unmarshal(sale.CartData, &items); err != nil {
			continue
		}
		for _, item := range items {
			resp.UnitsSold += item.Quantity
		}
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("dashboard cache write failed")
			}
		}
	}
	return resp, nil
}
