package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un item. Las cantidades llegan como
// string decimal ("12.5") o número JSON; una entrada no numérica se rechaza
// con error de validación, nunca se coacciona a cero.
type CreateItemRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID      string          `json:"category_id"`
	Unit            string          `json:"unit" validate:"required"`
	MinStock        decimal.Decimal `json:"min_stock"`
	MaxStock        decimal.Decimal `json:"max_stock"`
	Cost            decimal.Decimal `json:"cost"`
	SupplierID      string          `json:"supplier_id"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
}

// UpdateItemRequest entrada para editar un item. Nunca toca el stock por sede.
type UpdateItemRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID *string          `json:"category_id"`
	Unit       *string          `json:"unit"`
	MinStock   *decimal.Decimal `json:"min_stock"`
	MaxStock   *decimal.Decimal `json:"max_stock"`
	Cost       *decimal.Decimal `json:"cost"`
	SupplierID *string          `json:"supplier_id"`
	ExpiryDate *time.Time       `json:"expiry_date"`
}

// AdjustStockRequest entrada para ajustar stock en una sede. Adjustment puede
// ser negativo; Reason es metadato de UI y no se persiste.
type AdjustStockRequest struct {
	LocationID string          `json:"location_id" validate:"required"`
	Adjustment decimal.Decimal `json:"adjustment"`
	Reason     string          `json:"reason"`
}

// StockEntryResponse stock de un item en una sede.
type StockEntryResponse struct {
	Quantity decimal.Decimal `json:"quantity"`
	Status   string          `json:"status"`
}

// ItemResponse salida de un item con su stock por sede.
type ItemResponse struct {
	ID         string                        `json:"id"`
	Name       string                        `json:"name"`
	CategoryID string                        `json:"category_id"`
	Unit       string                        `json:"unit"`
	MinStock   decimal.Decimal               `json:"min_stock"`
	MaxStock   decimal.Decimal               `json:"max_stock"`
	Cost       decimal.Decimal               `json:"cost"`
	SupplierID string                        `json:"supplier_id"`
	ExpiryDate *time.Time                    `json:"expiry_date,omitempty"`
	Locations  map[string]StockEntryResponse `json:"locations"`
	CreatedAt  time.Time                     `json:"created_at"`
	UpdatedAt  time.Time                     `json:"updated_at"`
}

// ItemListResponse lista de items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}
