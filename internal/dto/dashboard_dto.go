package dto

import "github.com/shopspring/decimal"

// DashboardResponse aggregates catalog and sales figures for the admin panel.
type DashboardResponse struct {
	// Catalog
	TotalInvestment decimal.Decimal `json:"total_investment"` // Σ cost × stock
	InventoryValue  decimal.Decimal `json:"inventory_value"`  // Σ price × stock
	PotentialProfit decimal.Decimal `json:"potential_profit"`
	TotalProducts   int             `json:"total_products"`
	ActiveProducts  int             `json:"active_products"`
	FeaturedCount   int             `json:"featured_count"`
	OutOfStock      int             `json:"out_of_stock"`

	// Sales
	Revenue       decimal.Decimal `json:"revenue"` // Σ total, cancelled excluded
	TotalOrders   int             `json:"total_orders"`
	UnitsSold     int             `json:"units_sold"`
	SalesByStatus map[string]int  `json:"sales_by_status"`
}
