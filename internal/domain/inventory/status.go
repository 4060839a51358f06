// Package inventory contiene la lógica pura de clasificación de stock.
package inventory

import "github.com/shopspring/decimal"

// Estados de salud de stock. Siempre derivados de (quantity, minStock);
// nunca se asignan de forma independiente.
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// Classify deriva el estado de stock:
//
//	quantity <= 0          -> out-of-stock
//	0 < quantity <= min    -> low-stock
//	quantity > min         -> in-stock
//
// Función pura y total: no tiene modos de fallo.
func Classify(quantity, minStock decimal.Decimal) string {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return StatusOutOfStock
	}
	if quantity.LessThanOrEqual(minStock) {
		return StatusLowStock
	}
	return StatusInStock
}

// ClampQuantity aplica el piso de cero: el stock nunca queda negativo.
func ClampQuantity(q decimal.Decimal) decimal.Decimal {
	if q.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return q
}
