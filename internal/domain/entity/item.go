package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry stock de un item en una sede. Status siempre es un valor
// derivado de Quantity vs MinStock del item; nunca se asigna de forma
// independiente.
type StockEntry struct {
	Quantity decimal.Decimal `json:"quantity"`
	Status   string          `json:"status"`
}

// Item representa un insumo o SKU del inventario. El stock se lleva por sede
// en Locations (mapa LocationID -> StockEntry); el invariante del store es que
// el conjunto de claves del mapa coincide en todo momento con el conjunto de
// sedes existentes.
type Item struct {
	ID         string
	Name       string
	CategoryID string
	Unit       string // kg, l, unidad, caja...
	MinStock   decimal.Decimal
	MaxStock   decimal.Decimal
	Cost       decimal.Decimal // costo unitario de reposición
	SupplierID string
	ExpiryDate *time.Time
	Locations  map[string]StockEntry
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CloneLocations devuelve una copia del mapa de stock (el store nunca expone
// el mapa interno mutable).
func (i *Item) CloneLocations() map[string]StockEntry {
	out := make(map[string]StockEntry, len(i.Locations))
	for k, v := range i.Locations {
		out[k] = v
	}
	return out
}
