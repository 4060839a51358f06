package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camivargas/cafestock-api/internal/application/reports"
	"github.com/camivargas/cafestock-api/internal/store"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

type nopPersist struct{}

func (nopPersist) SaveState(*store.Snapshot) error { return nil }
func (nopPersist) LoadState() (*store.Snapshot, bool, error) { return nil, false, nil }
func (nopPersist) ReadFlag(string) (bool, error) { return false, nil }
func (nopPersist) WriteFlag(string, bool) error { return nil }
func (nopPersist) ReadTheme() (string, error) { return "", nil }
func (nopPersist) WriteTheme(string) error { return nil }

// fakeGenerator captura el reporte que le pasan y devuelve bytes fijos.
type fakeGenerator struct {
	got *reports.InventoryReport
}

func (g *fakeGenerator) GenerateInventoryPDF(_ context.Context, report *reports.InventoryReport) ([]byte, error) {
	g.got = report
	return []byte("%PDF-fake"), nil
}

func TestBuild_UnaSeccionPorSedeConSubtotales(t *testing.T) {
	st := store.New(nopPersist{}, logger.NewNop())
	uc := reports.NewUseCase(st, st, st, &fakeGenerator{}, "CaféStock")

	report, err := uc.Build()
	require.NoError(t, err)

	assert.Equal(t, "CaféStock", report.AppName)
	assert.False(t, report.GeneratedAt.IsZero())
	require.Len(t, report.Sections, 2)

	centro := report.Sections[0]
	assert.Equal(t, "Sede Centro", centro.LocationName)
	require.Len(t, centro.Rows, 6)
	assert.True(t, centro.Subtotal.Equal(decimal.RequireFromString("1853600")),
		"subtotal Centro; got %s", centro.Subtotal)

	// La línea trae el nombre de la categoría resuelto, no el id.
	espresso := centro.Rows[0]
	assert.Equal(t, "Café en grano espresso", espresso.ItemName)
	assert.Equal(t, "Café", espresso.Category)
	assert.Equal(t, "kg", espresso.Unit)
	assert.True(t, espresso.Quantity.Equal(decimal.NewFromInt(18)))
	assert.True(t, espresso.Value.Equal(decimal.RequireFromString("684000")))

	norte := report.Sections[1]
	assert.Equal(t, "Sede Norte", norte.LocationName)
	assert.True(t, norte.Subtotal.Equal(decimal.RequireFromString("674200")),
		"subtotal Norte; got %s", norte.Subtotal)

	assert.True(t, report.GrandTotal.Equal(decimal.RequireFromString("2527800")),
		"gran total; got %s", report.GrandTotal)
}

func TestInventoryPDF_DelegaAlGenerador(t *testing.T) {
	st := store.New(nopPersist{}, logger.NewNop())
	gen := &fakeGenerator{}
	uc := reports.NewUseCase(st, st, st, gen, "CaféStock")

	pdf, err := uc.InventoryPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdf)
	require.NotNil(t, gen.got, "el generador debe recibir el reporte armado")
	assert.Len(t, gen.got.Sections, 2)
}
