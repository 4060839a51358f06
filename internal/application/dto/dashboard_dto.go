package dto

import "github.com/shopspring/decimal"

// LocationStockHealth resumen de salud de stock de una sede.
type LocationStockHealth struct {
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	InStock      int             `json:"in_stock"`
	LowStock     int             `json:"low_stock"`
	OutOfStock   int             `json:"out_of_stock"`
	StockValue   decimal.Decimal `json:"stock_value"`
}

// DashboardResponse resumen del tablero: salud por sede, valor total del
// inventario y pendientes de órdenes y traslados.
type DashboardResponse struct {
	Locations        []LocationStockHealth `json:"locations"`
	TotalItems       int                   `json:"total_items"`
	InventoryValue   decimal.Decimal       `json:"inventory_value"`
	PendingOrders    int                   `json:"pending_orders"`
	PendingTransfers int                   `json:"pending_transfers"`
	LowStockItems    int                   `json:"low_stock_items"`
	OutOfStockItems  int                   `json:"out_of_stock_items"`
}
