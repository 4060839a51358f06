package entity

import "time"

// Colores válidos para Category (paleta fija, uso puramente cosmético en el dashboard).
const (
	ColorAmber   = "amber"
	ColorEmerald = "emerald"
	ColorSky     = "sky"
	ColorRose    = "rose"
	ColorViolet  = "violet"
	ColorSlate   = "slate"
)

// UncategorizedName nombre de la categoría reservada a la que se reasignan
// los items cuando su categoría se elimina. No puede borrarse ni renombrarse.
const UncategorizedName = "Sin categoría"

// Category agrupa items del inventario. El ID es un surrogate UUID: renombrar
// una categoría no requiere cascada sobre los items (referencian CategoryID).
type Category struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidColor indica si el color pertenece a la paleta.
func ValidColor(c string) bool {
	switch c {
	case ColorAmber, ColorEmerald, ColorSky, ColorRose, ColorViolet, ColorSlate:
		return true
	}
	return false
}
