package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderPending   = "pending"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
)

// Order representa una orden de compra a un proveedor. ItemName es un
// snapshot desnormalizado al momento de crearla; Cost = item.Cost × Quantity
// al crearla y no se recalcula después. Una orden no reserva ni descuenta
// stock: la entrada de mercancía se registra luego con un ajuste de stock.
type Order struct {
	ID               string
	ItemID           string
	ItemName         string
	Quantity         decimal.Decimal
	Status           string
	OrderDate        time.Time
	ExpectedDelivery *time.Time
	SupplierID       string
	Cost             decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidOrderStatus indica si el estado es uno de los permitidos.
func ValidOrderStatus(s string) bool {
	return s == OrderPending || s == OrderShipped || s == OrderDelivered
}
