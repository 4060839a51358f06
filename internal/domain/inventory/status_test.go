package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/camivargas/cafestock-api/internal/domain/inventory"
)

// Tabla de verdad del clasificador: cantidad 0 → out-of-stock;
// 0 < q <= min → low-stock; q > min → in-stock.
func TestClassify_TablaDeVerdad(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		minStock int64
		want     string
	}{
		{"cero siempre es out-of-stock", 0, 5, inventory.StatusOutOfStock},
		{"cero con min cero", 0, 0, inventory.StatusOutOfStock},
		{"igual al mínimo es low-stock", 5, 5, inventory.StatusLowStock},
		{"debajo del mínimo es low-stock", 1, 5, inventory.StatusLowStock},
		{"encima del mínimo es in-stock", 6, 5, inventory.StatusInStock},
		{"positivo con min cero es in-stock", 1, 0, inventory.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.Classify(decimal.NewFromInt(tc.quantity), decimal.NewFromInt(tc.minStock))
			assert.Equal(t, tc.want, got)
		})
	}
}

// Propiedad: para todo q y m, el estado es low-stock si y solo si 0 < q <= m.
func TestClassify_Propiedad(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := decimal.NewFromInt(rapid.Int64Range(0, 10_000).Draw(t, "q"))
		m := decimal.NewFromInt(rapid.Int64Range(0, 10_000).Draw(t, "m"))

		got := inventory.Classify(q, m)
		switch {
		case q.IsZero():
			assert.Equal(t, inventory.StatusOutOfStock, got)
		case q.LessThanOrEqual(m):
			assert.Equal(t, inventory.StatusLowStock, got)
		default:
			assert.Equal(t, inventory.StatusInStock, got)
		}
	})
}

func TestClampQuantity(t *testing.T) {
	assert.True(t, inventory.ClampQuantity(decimal.NewFromInt(-3)).IsZero())
	assert.True(t, inventory.ClampQuantity(decimal.Zero).IsZero())
	assert.Equal(t, "7", inventory.ClampQuantity(decimal.NewFromInt(7)).String())
}
