package model

import "github.com/shopspring/decimal"

// LowStockThreshold is the quantity at or below which a product counts as low stock.
const LowStockThreshold = 5

// InventoryStats summarises the (optionally filtered) catalog.
type InventoryStats struct {
	TotalProducts  int64           `json:"total_products"`
	TotalStock     int64           `json:"total_stock"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}
