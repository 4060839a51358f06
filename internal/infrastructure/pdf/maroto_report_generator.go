// Package pdf renderiza el reporte de inventario multi-sede con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada sede:                                              │
//	│    TÍTULO DE SEDE                                            │
//	│    TABLA: Item | Categoría | Cant | Estado | Valor           │
//	│    Subtotal de la sede                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL INVENTARIO                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/camivargas/cafestock-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 93, Green: 64, Blue: 55} // marrón café
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, report *reports.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(report.AppName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range report.Sections {
		m.AddRows(sectionTitleRow(section.LocationName))
		m.AddRows(tableHeaderRow())
		for _, r := range tableRows(section.Rows) {
			m.AddRows(r)
		}
		m.AddRows(subtotalRow(section))
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(grandTotalRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la app (izq) y fecha de generación (der).
func headerRow(report *reports.InventoryReport) core.Row {
	fecha := report.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New(report.AppName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario multi-sede", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// sectionTitleRow: título de la sede.
func sectionTitleRow(name string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de items.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Item", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Estado", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

// tableRows: una fila por item de la sede.
func tableRows(rows []reports.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(r.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.Category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(
				r.Quantity.StringFixed(1)+" "+r.Unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(statusLabel(r.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(
				"$"+formatMoney(r.Value.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// subtotalRow: subtotal de la sede alineado a la derecha.
func subtotalRow(section reports.LocationSection) core.Row {
	return row.New(7).Add(
		col.New(8),
		col.New(2).Add(text.New("Subtotal:", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2,
		})),
		col.New(2).Add(text.New("$"+formatMoney(section.Subtotal.StringFixed(0)), props.Text{
			Size: 8, Align: align.Right, Right: 1,
		})),
	)
}

// grandTotalRow: total del inventario.
func grandTotalRow(report *reports.InventoryReport) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(4).Add(text.New("TOTAL DEL INVENTARIO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New("$"+formatMoney(report.GrandTotal.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func statusLabel(status string) string {
	switch status {
	case "in-stock":
		return "En stock"
	case "low-stock":
		return "Stock bajo"
	case "out-of-stock":
		return "Agotado"
	}
	return status
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
