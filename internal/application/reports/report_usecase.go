// Package reports arma el reporte de inventario y delega el render del PDF a
// un generador inyectado (Maroto en producción, fake en tests).
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// ReportRow una línea del reporte: un item en una sede.
type ReportRow struct {
	ItemName string
	Category string
	Unit     string
	Quantity decimal.Decimal
	Status   string
	Value    decimal.Decimal
}

// LocationSection las líneas de una sede más su subtotal.
type LocationSection struct {
	LocationName string
	Rows         []ReportRow
	Subtotal     decimal.Decimal
}

// InventoryReport modelo completo del reporte.
type InventoryReport struct {
	AppName     string
	GeneratedAt time.Time
	Sections    []LocationSection
	GrandTotal  decimal.Decimal
}

// PDFGenerator puerto de render del reporte.
type PDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report *InventoryReport) ([]byte, error)
}

// UseCase caso de uso del reporte de inventario.
type UseCase struct {
	locations  repository.LocationRepository
	items      repository.ItemRepository
	categories repository.CategoryRepository
	generator  PDFGenerator
	appName    string
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	locations repository.LocationRepository,
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	generator PDFGenerator,
	appName string,
) *UseCase {
	return &UseCase{locations: locations, items: items, categories: categories, generator: generator, appName: appName}
}

// InventoryPDF arma el reporte completo (una sección por sede, una línea por
// item con cantidad, estado y valor) y lo renderiza a PDF.
func (uc *UseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.Build()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInventoryPDF(ctx, report)
}

// Build arma el modelo del reporte sin renderizarlo (separado para tests).
func (uc *UseCase) Build() (*InventoryReport, error) {
	locations, err := uc.locations.ListLocations()
	if err != nil {
		return nil, err
	}
	items, err := uc.items.ListItems()
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.ListCategories()
	if err != nil {
		return nil, err
	}
	categoryName := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryName[c.ID] = c.Name
	}

	report := &InventoryReport{
		AppName:     uc.appName,
		GeneratedAt: time.Now(),
		GrandTotal:  decimal.Zero,
	}
	for _, loc := range locations {
		section := LocationSection{
			LocationName: loc.Name,
			Subtotal:     decimal.Zero,
		}
		for _, it := range items {
			entry, ok := it.Locations[loc.ID]
			if !ok {
				continue
			}
			value := entry.Quantity.Mul(it.Cost)
			section.Rows = append(section.Rows, ReportRow{
				ItemName: it.Name,
				Category: categoryName[it.CategoryID],
				Unit:     it.Unit,
				Quantity: entry.Quantity,
				Status:   entry.Status,
				Value:    value,
			})
			section.Subtotal = section.Subtotal.Add(value)
		}
		report.GrandTotal = report.GrandTotal.Add(section.Subtotal)
		report.Sections = append(report.Sections, section)
	}
	return report, nil
}
