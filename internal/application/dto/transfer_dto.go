package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransferRequest entrada para solicitar un traslado entre sedes.
type CreateTransferRequest struct {
	ItemID         string          `json:"item_id" validate:"required"`
	FromLocationID string          `json:"from_location_id" validate:"required"`
	ToLocationID   string          `json:"to_location_id" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpectedDate   *time.Time      `json:"expected_date"`
	Reason         string          `json:"reason"`
}

// UpdateTransferRequest entrada para actualizar un traslado no completado.
type UpdateTransferRequest struct {
	Quantity     *decimal.Decimal `json:"quantity"`
	Status       *string          `json:"status"`
	ExpectedDate *time.Time       `json:"expected_date"`
	Reason       *string          `json:"reason"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"item_id"`
	ItemName         string          `json:"item_name"`
	FromLocationID   string          `json:"from_location_id"`
	FromLocationName string          `json:"from_location_name"`
	ToLocationID     string          `json:"to_location_id"`
	ToLocationName   string          `json:"to_location_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	Status           string          `json:"status"`
	RequestDate      time.Time       `json:"request_date"`
	ExpectedDate     *time.Time      `json:"expected_date,omitempty"`
	Reason           string          `json:"reason"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TransferListResponse lista de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
}
