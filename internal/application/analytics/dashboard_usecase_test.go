package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camivargas/cafestock-api/internal/application/analytics"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/store"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

// nopPersist persistencia nula: el dashboard solo lee.
type nopPersist struct{}

func (nopPersist) SaveState(*store.Snapshot) error { return nil }
func (nopPersist) LoadState() (*store.Snapshot, bool, error) { return nil, false, nil }
func (nopPersist) ReadFlag(string) (bool, error) { return false, nil }
func (nopPersist) WriteFlag(string, bool) error { return nil }
func (nopPersist) ReadTheme() (string, error) { return "", nil }
func (nopPersist) WriteTheme(string) error { return nil }

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(nopPersist{}, logger.NewNop())
}

func TestSummary_ContadoresYValorSobreElSeed(t *testing.T) {
	st := newSeededStore(t)
	uc := analytics.NewDashboardUseCase(st, st, st, st)

	resp, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 6, resp.TotalItems)
	require.Len(t, resp.Locations, 2)

	// Sede Centro: solo la leche de avena (8 < min 10) está en low-stock.
	centro := resp.Locations[0]
	assert.Equal(t, "Sede Centro", centro.LocationName)
	assert.Equal(t, 5, centro.InStock)
	assert.Equal(t, 1, centro.LowStock)
	assert.Equal(t, 0, centro.OutOfStock)
	assert.True(t, centro.StockValue.Equal(decimal.RequireFromString("1853600")),
		"valor Centro = Σ cantidad × costo; got %s", centro.StockValue)

	// Sede Norte: filtrado y leche entera en low, leche de avena agotada.
	norte := resp.Locations[1]
	assert.Equal(t, "Sede Norte", norte.LocationName)
	assert.Equal(t, 3, norte.InStock)
	assert.Equal(t, 2, norte.LowStock)
	assert.Equal(t, 1, norte.OutOfStock)
	assert.True(t, norte.StockValue.Equal(decimal.RequireFromString("674200")),
		"valor Norte; got %s", norte.StockValue)

	assert.Equal(t, 3, resp.LowStockItems)
	assert.Equal(t, 1, resp.OutOfStockItems)
	assert.True(t, resp.InventoryValue.Equal(decimal.RequireFromString("2527800")),
		"valor total; got %s", resp.InventoryValue)

	// El seed no trae órdenes ni traslados.
	assert.Equal(t, 0, resp.PendingOrders)
	assert.Equal(t, 0, resp.PendingTransfers)
}

func TestSummary_CuentaPendientes(t *testing.T) {
	st := newSeededStore(t)
	uc := analytics.NewDashboardUseCase(st, st, st, st)

	require.NoError(t, st.AddOrder(&entity.Order{
		ItemID:   "item-grano-espresso",
		Quantity: decimal.NewFromInt(5),
	}))
	require.NoError(t, st.AddOrder(&entity.Order{
		ItemID:   "item-leche-entera",
		Quantity: decimal.NewFromInt(20),
		Status:   entity.OrderDelivered,
	}))
	require.NoError(t, st.AddTransfer(&entity.Transfer{
		ItemID:         "item-grano-espresso",
		FromLocationID: store.SeedLocationCentro,
		ToLocationID:   store.SeedLocationNorte,
		Quantity:       decimal.NewFromInt(2),
	}))
	require.NoError(t, st.AddTransfer(&entity.Transfer{
		ItemID:         "item-grano-filtrado",
		FromLocationID: store.SeedLocationCentro,
		ToLocationID:   store.SeedLocationNorte,
		Quantity:       decimal.NewFromInt(1),
		Status:         entity.TransferInTransit,
	}))

	resp, err := uc.Summary()
	require.NoError(t, err)

	// Solo la orden pending cuenta; los traslados pending e in-transit cuentan ambos.
	assert.Equal(t, 1, resp.PendingOrders)
	assert.Equal(t, 2, resp.PendingTransfers)
}
