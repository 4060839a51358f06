package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear una orden de compra. El costo no se
// recibe: se congela como item.cost × quantity al crearla.
type CreateOrderRequest struct {
	ItemID           string          `json:"item_id" validate:"required"`
	Quantity         decimal.Decimal `json:"quantity"`
	SupplierID       string          `json:"supplier_id"`
	ExpectedDelivery *time.Time      `json:"expected_delivery"`
}

// UpdateOrderRequest entrada para actualizar una orden.
type UpdateOrderRequest struct {
	Quantity         *decimal.Decimal `json:"quantity"`
	Status           *string          `json:"status"`
	ExpectedDelivery *time.Time       `json:"expected_delivery"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"item_id"`
	ItemName         string          `json:"item_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	Status           string          `json:"status"`
	OrderDate        time.Time       `json:"order_date"`
	ExpectedDelivery *time.Time      `json:"expected_delivery,omitempty"`
	SupplierID       string          `json:"supplier_id"`
	Cost             decimal.Decimal `json:"cost"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderListResponse lista de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
