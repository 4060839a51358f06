// Package analytics arma el resumen del tablero a partir de los puertos de
// dominio: salud de stock por sede, valor del inventario y pendientes.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/inventory"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// DashboardUseCase caso de uso del tablero.
type DashboardUseCase struct {
	locations repository.LocationRepository
	items     repository.ItemRepository
	orders    repository.OrderRepository
	transfers repository.TransferRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	locations repository.LocationRepository,
	items repository.ItemRepository,
	orders repository.OrderRepository,
	transfers repository.TransferRepository,
) *DashboardUseCase {
	return &DashboardUseCase{locations: locations, items: items, orders: orders, transfers: transfers}
}

// Summary calcula el resumen completo. El valor de stock de una sede es la
// suma de cantidad × costo unitario de cada item; los contadores de
// low/out-of-stock cuentan parejas item × sede en ese estado.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	locations, err := uc.locations.ListLocations()
	if err != nil {
		return nil, err
	}
	items, err := uc.items.ListItems()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.ListOrders()
	if err != nil {
		return nil, err
	}
	transfers, err := uc.transfers.ListTransfers()
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalItems:     len(items),
		InventoryValue: decimal.Zero,
	}

	for _, loc := range locations {
		health := dto.LocationStockHealth{
			LocationID:   loc.ID,
			LocationName: loc.Name,
			StockValue:   decimal.Zero,
		}
		for _, it := range items {
			entry, ok := it.Locations[loc.ID]
			if !ok {
				continue
			}
			switch entry.Status {
			case inventory.StatusLowStock:
				health.LowStock++
				resp.LowStockItems++
			case inventory.StatusOutOfStock:
				health.OutOfStock++
				resp.OutOfStockItems++
			default:
				health.InStock++
			}
			health.StockValue = health.StockValue.Add(entry.Quantity.Mul(it.Cost))
		}
		resp.InventoryValue = resp.InventoryValue.Add(health.StockValue)
		resp.Locations = append(resp.Locations, health)
	}

	for _, o := range orders {
		if o.Status == entity.OrderPending {
			resp.PendingOrders++
		}
	}
	for _, t := range transfers {
		if t.Status == entity.TransferPending || t.Status == entity.TransferInTransit {
			resp.PendingTransfers++
		}
	}
	return resp, nil
}
