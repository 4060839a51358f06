package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/inventory"
)

// IDs estables del dataset semilla (útiles en tests y en el seed de Postgres).
const (
	SeedLocationCentro = "loc-centro"
	SeedLocationNorte  = "loc-norte"

	SeedCategoryCafe          = "cat-cafe"
	SeedCategoryLacteos       = "cat-lacteos"
	SeedCategoryPanaderia     = "cat-panaderia"
	SeedCategoryDesechables   = "cat-desechables"
	SeedCategoryUncategorized = "cat-uncategorized"

	SeedSupplierTostadora = "sup-tostadora-andina"
	SeedSupplierLechera   = "sup-lechera-del-valle"
	SeedSupplierEmpaques  = "sup-empaques-bogota"
)

// SeedSnapshot expone el dataset semilla como snapshot. Lo usa cmd/seed para
// poblar una base Postgres recién migrada con los mismos datos demo.
func SeedSnapshot() *Snapshot {
	s := &Store{st: seedState()}
	return s.snapshotLocked()
}

func seedState() state {
	now := time.Now()

	locations := []*entity.Location{
		{ID: SeedLocationCentro, Name: "Sede Centro", Address: "Cra 7 # 12-34", Manager: "Laura Pineda", Phone: "+57 601 555 0101", CreatedAt: now, UpdatedAt: now},
		{ID: SeedLocationNorte, Name: "Sede Norte", Address: "Cll 140 # 19-21", Manager: "Andrés Rojas", Phone: "+57 601 555 0102", CreatedAt: now, UpdatedAt: now},
	}

	categories := []*entity.Category{
		{ID: SeedCategoryCafe, Name: "Café", Color: entity.ColorAmber, CreatedAt: now, UpdatedAt: now},
		{ID: SeedCategoryLacteos, Name: "Lácteos", Color: entity.ColorSky, CreatedAt: now, UpdatedAt: now},
		{ID: SeedCategoryPanaderia, Name: "Panadería", Color: entity.ColorRose, CreatedAt: now, UpdatedAt: now},
		{ID: SeedCategoryDesechables, Name: "Desechables", Color: entity.ColorSlate, CreatedAt: now, UpdatedAt: now},
		// Reservada: destino de los items cuya categoría se elimina.
		{ID: SeedCategoryUncategorized, Name: entity.UncategorizedName, Color: entity.ColorSlate, CreatedAt: now, UpdatedAt: now},
	}

	suppliers := []*entity.Supplier{
		{ID: SeedSupplierTostadora, Name: "Tostadora Andina", Contact: "Marcela Díaz", Email: "ventas@tostadora-andina.co", Phone: "+57 310 555 0201", CreatedAt: now, UpdatedAt: now},
		{ID: SeedSupplierLechera, Name: "Lechera del Valle", Contact: "Jorge Castaño", Email: "pedidos@lecheradelvalle.co", Phone: "+57 310 555 0202", CreatedAt: now, UpdatedAt: now},
		{ID: SeedSupplierEmpaques, Name: "Empaques Bogotá", Contact: "Paula Mejía", Email: "contacto@empaquesbogota.co", Phone: "+57 310 555 0203", CreatedAt: now, UpdatedAt: now},
	}

	seedItem := func(id, name, categoryID, unit string, minStock, maxStock int64, cost string, supplierID string, qtyCentro, qtyNorte int64) *entity.Item {
		min := decimal.NewFromInt(minStock)
		it := &entity.Item{
			ID:         id,
			Name:       name,
			CategoryID: categoryID,
			Unit:       unit,
			MinStock:   min,
			MaxStock:   decimal.NewFromInt(maxStock),
			Cost:       decimal.RequireFromString(cost),
			SupplierID: supplierID,
			Locations:  map[string]entity.StockEntry{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		qc := decimal.NewFromInt(qtyCentro)
		qn := decimal.NewFromInt(qtyNorte)
		it.Locations[SeedLocationCentro] = entity.StockEntry{Quantity: qc, Status: inventory.Classify(qc, min)}
		it.Locations[SeedLocationNorte] = entity.StockEntry{Quantity: qn, Status: inventory.Classify(qn, min)}
		return it
	}

	items := []*entity.Item{
		seedItem("item-grano-espresso", "Café en grano espresso", SeedCategoryCafe, "kg", 5, 40, "38000", SeedSupplierTostadora, 18, 9),
		seedItem("item-grano-filtrado", "Café en grano filtrado", SeedCategoryCafe, "kg", 5, 30, "34000", SeedSupplierTostadora, 12, 4),
		seedItem("item-leche-entera", "Leche entera", SeedCategoryLacteos, "l", 20, 120, "3800", SeedSupplierLechera, 60, 15),
		seedItem("item-leche-avena", "Leche de avena", SeedCategoryLacteos, "l", 10, 60, "7500", SeedSupplierLechera, 8, 0),
		seedItem("item-croissant", "Croissant congelado", SeedCategoryPanaderia, "unidad", 24, 200, "2100", SeedSupplierLechera, 96, 48),
		seedItem("item-vaso-12oz", "Vaso 12oz con tapa", SeedCategoryDesechables, "unidad", 100, 2000, "320", SeedSupplierEmpaques, 850, 120),
	}

	team := []*entity.TeamMember{
		{ID: "tm-laura", Name: "Laura Pineda", Email: "laura@cafestock.local", Phone: "+57 310 555 0301", Role: entity.RoleManager, AssignedLocations: []string{SeedLocationCentro}, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "tm-andres", Name: "Andrés Rojas", Email: "andres@cafestock.local", Phone: "+57 310 555 0302", Role: entity.RoleManager, AssignedLocations: []string{SeedLocationNorte}, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "tm-sofia", Name: "Sofía Cárdenas", Email: "sofia@cafestock.local", Phone: "+57 310 555 0303", Role: entity.RoleStaff, AssignedLocations: []string{SeedLocationCentro, SeedLocationNorte}, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}

	return state{
		locations:       locations,
		categories:      categories,
		suppliers:       suppliers,
		items:           items,
		orders:          nil,
		transfers:       nil,
		team:            team,
		currentLocation: SeedLocationCentro,
	}
}
