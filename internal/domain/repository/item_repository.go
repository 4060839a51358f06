package repository

import (
	"github.com/shopspring/decimal"

	"github.com/camivargas/cafestock-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia para items del inventario.
//
// AddItem siembra el mapa de stock con una entrada por cada sede existente en
// ese momento, todas con initialQuantity y el estado derivado correspondiente.
// UpdateItem reemplaza los campos del item pero nunca toca el mapa de stock.
// DeleteItem no verifica órdenes ni traslados abiertos que referencien el id.
type ItemRepository interface {
	AddItem(item *entity.Item, initialQuantity decimal.Decimal) error
	GetItem(id string) (*entity.Item, error)
	ListItems() ([]*entity.Item, error)
	UpdateItem(item *entity.Item) error
	DeleteItem(id string) error
}

// StockRepository puerto para ajustes de stock por sede.
// AdjustStock suma adjustment (posiblemente negativo) a la cantidad actual,
// aplica el piso de cero y recalcula el estado con el MinStock del item. Es
// la única vía de escritura de cantidades fuera de CompleteTransfer.
type StockRepository interface {
	AdjustStock(itemID, locationID string, adjustment decimal.Decimal) (*entity.StockEntry, error)
}
