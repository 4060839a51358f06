// seed aplica el esquema de Postgres y carga el dataset demo de CaféStock
// (el mismo con el que arranca el driver "memory").
//
// Uso: go run ./cmd/seed [ruta/001_init.sql]
// Por defecto busca migrations/001_init.sql relativo a la raíz del módulo.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/camivargas/cafestock-api/internal/infrastructure/postgres"
	"github.com/camivargas/cafestock-api/internal/store"
	"github.com/camivargas/cafestock-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	migrationPath := filepath.Join(findModuleRoot(), "migrations", "001_init.sql")
	if len(os.Args) > 1 {
		migrationPath = os.Args[1]
	}
	schema, err := os.ReadFile(migrationPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer migración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Esquema aplicado desde %s\n", migrationPath)

	snap := store.SeedSnapshot()

	tx, err := pool.Begin(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir transacción: %v\n", err)
		os.Exit(1)
	}
	defer tx.Rollback(ctx)

	for _, l := range snap.Locations {
		if _, err := tx.Exec(ctx, `
			INSERT INTO locations (id, name, address, manager, phone, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (id) DO NOTHING`,
			l.ID, l.Name, l.Address, l.Manager, l.Phone); err != nil {
			fail("sede", l.ID, err)
		}
	}
	for _, c := range snap.Categories {
		if _, err := tx.Exec(ctx, `
			INSERT INTO categories (id, name, color, created_at, updated_at)
			VALUES ($1, $2, $3, now(), now())
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Color); err != nil {
			fail("categoría", c.ID, err)
		}
	}
	for _, s := range snap.Suppliers {
		if _, err := tx.Exec(ctx, `
			INSERT INTO suppliers (id, name, contact, email, phone, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (id) DO NOTHING`,
			s.ID, s.Name, s.Contact, s.Email, s.Phone); err != nil {
			fail("proveedor", s.ID, err)
		}
	}
	for _, it := range snap.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO items (id, name, category_id, unit, min_stock, max_stock, cost, supplier_id, expiry_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			ON CONFLICT (id) DO NOTHING`,
			it.ID, it.Name, nullIfEmpty(it.CategoryID), it.Unit, it.MinStock, it.MaxStock,
			it.Cost, nullIfEmpty(it.SupplierID), it.ExpiryDate); err != nil {
			fail("item", it.ID, err)
		}
		for locID, entry := range it.Locations {
			if _, err := tx.Exec(ctx, `
				INSERT INTO item_stock (item_id, location_id, quantity, status, updated_at)
				VALUES ($1, $2, $3, $4, now())
				ON CONFLICT (item_id, location_id) DO NOTHING`,
				it.ID, locID, entry.Quantity, entry.Status); err != nil {
				fail("stock de "+it.ID, locID, err)
			}
		}
	}
	for _, m := range snap.TeamMembers {
		if _, err := tx.Exec(ctx, `
			INSERT INTO team_members (id, name, email, phone, role, assigned_locations, is_active, last_login, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
			ON CONFLICT (id) DO NOTHING`,
			m.ID, m.Name, m.Email, m.Phone, m.Role, m.AssignedLocations, m.IsActive, m.LastLogin); err != nil {
			fail("miembro", m.ID, err)
		}
	}
	if snap.CurrentLocation != "" {
		if _, err := tx.Exec(ctx, `
			INSERT INTO settings (key, value, updated_at)
			VALUES ('currentLocation', $1, now())
			ON CONFLICT (key) DO NOTHING`,
			snap.CurrentLocation); err != nil {
			fail("setting", "currentLocation", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Commit del seed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed completo: %d sedes, %d categorías, %d proveedores, %d items, %d miembros\n",
		len(snap.Locations), len(snap.Categories), len(snap.Suppliers), len(snap.Items), len(snap.TeamMembers))
}

func fail(kind, id string, err error) {
	fmt.Fprintf(os.Stderr, "Insertar %s %s: %v\n", kind, id, err)
	os.Exit(1)
}

// nullIfEmpty convierte "" en NULL para las FKs opcionales.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
