package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/inventory"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository  = (*ItemRepo)(nil)
	_ repository.StockRepository = (*ItemRepo)(nil)
)

// ItemRepo implementación de ItemRepository y StockRepository sobre
// PostgreSQL. El mapa de stock por sede vive en item_stock (una fila por
// pareja item × sede).
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// AddItem persiste el item y siembra una fila de stock por cada sede
// existente, todas con initialQuantity (piso de cero) y el estado derivado,
// en la misma transacción.
func (r *ItemRepo) AddItem(item *entity.Item, initialQuantity decimal.Decimal) error {
	ctx := context.Background()
	now := time.Now()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	qty := inventory.ClampQuantity(initialQuantity)
	status := inventory.Classify(qty, item.MinStock)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO items (id, name, category_id, unit, min_stock, max_stock, cost, supplier_id, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		item.ID, item.Name, nullIfEmpty(item.CategoryID), item.Unit, item.MinStock, item.MaxStock,
		item.Cost, nullIfEmpty(item.SupplierID), item.ExpiryDate, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO item_stock (item_id, location_id, quantity, status, updated_at)
		SELECT $1, l.id, $2, $3, now() FROM locations l`,
		item.ID, qty, status,
	)
	if err != nil {
		return fmt.Errorf("seed item stock: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	item.Locations = map[string]entity.StockEntry{}
	locs, err := r.stockFor(ctx, r.pool, item.ID)
	if err != nil {
		return err
	}
	item.Locations = locs
	return nil
}

// GetItem obtiene un item por ID con su mapa de stock (nil si no existe).
func (r *ItemRepo) GetItem(id string) (*entity.Item, error) {
	ctx := context.Background()
	query := `
		SELECT id, name, COALESCE(category_id, ''), unit, min_stock, max_stock, cost,
		       COALESCE(supplier_id, ''), expiry_date, created_at, updated_at
		FROM items WHERE id = $1`
	var it entity.Item
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.CategoryID, &it.Unit, &it.MinStock, &it.MaxStock, &it.Cost,
		&it.SupplierID, &it.ExpiryDate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	it.Locations, err = r.stockFor(ctx, r.pool, it.ID)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListItems lista todos los items con sus mapas de stock armados en una sola
// consulta adicional sobre item_stock.
func (r *ItemRepo) ListItems() ([]*entity.Item, error) {
	ctx := context.Background()
	query := `
		SELECT id, name, COALESCE(category_id, ''), unit, min_stock, max_stock, cost,
		       COALESCE(supplier_id, ''), expiry_date, created_at, updated_at
		FROM items ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	byID := map[string]*entity.Item{}
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.CategoryID, &it.Unit, &it.MinStock, &it.MaxStock,
			&it.Cost, &it.SupplierID, &it.ExpiryDate, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Locations = map[string]entity.StockEntry{}
		list = append(list, &it)
		byID[it.ID] = &it
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stockRows, err := r.pool.Query(ctx, `SELECT item_id, location_id, quantity, status FROM item_stock`)
	if err != nil {
		return nil, fmt.Errorf("list item stock: %w", err)
	}
	defer stockRows.Close()
	for stockRows.Next() {
		var itemID, locationID string
		var e entity.StockEntry
		if err := stockRows.Scan(&itemID, &locationID, &e.Quantity, &e.Status); err != nil {
			return nil, fmt.Errorf("scan item stock: %w", err)
		}
		if it, ok := byID[itemID]; ok {
			it.Locations[locationID] = e
		}
	}
	return list, stockRows.Err()
}

// UpdateItem reemplaza los campos del item sin tocar las cantidades por
// sede; MinStock pudo cambiar, así que se rederiva el estado de cada fila.
func (r *ItemRepo) UpdateItem(item *entity.Item) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
		UPDATE items SET name = $2, category_id = $3, unit = $4, min_stock = $5, max_stock = $6,
		       cost = $7, supplier_id = $8, expiry_date = $9, updated_at = now()
		WHERE id = $1`,
		item.ID, item.Name, nullIfEmpty(item.CategoryID), item.Unit, item.MinStock, item.MaxStock,
		item.Cost, nullIfEmpty(item.SupplierID), item.ExpiryDate,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	_, err = tx.Exec(ctx, `
		UPDATE item_stock SET status = stock_status(quantity, $2), updated_at = now()
		WHERE item_id = $1`,
		item.ID, item.MinStock,
	)
	if err != nil {
		return fmt.Errorf("rederive stock status: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// DeleteItem elimina el item; sus filas de stock caen por FK ON DELETE
// CASCADE. Órdenes y traslados que lo referencien conservan su snapshot.
func (r *ItemRepo) DeleteItem(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// AdjustStock suma el ajuste a la cantidad actual con la fila bloqueada
// (SELECT FOR UPDATE), aplica el piso de cero y recalcula el estado con el
// MinStock del item. Devuelve la entrada resultante.
func (r *ItemRepo) AdjustStock(itemID, locationID string, adjustment decimal.Decimal) (*entity.StockEntry, error) {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current, minStock decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT s.quantity, i.min_stock
		FROM item_stock s JOIN items i ON i.id = s.item_id
		WHERE s.item_id = $1 AND s.location_id = $2
		FOR UPDATE OF s`,
		itemID, locationID,
	).Scan(&current, &minStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}

	entry := entity.StockEntry{
		Quantity: inventory.ClampQuantity(current.Add(adjustment)),
	}
	entry.Status = inventory.Classify(entry.Quantity, minStock)

	_, err = tx.Exec(ctx, `
		UPDATE item_stock SET quantity = $3, status = $4, updated_at = now()
		WHERE item_id = $1 AND location_id = $2`,
		itemID, locationID, entry.Quantity, entry.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE items SET updated_at = now() WHERE id = $1`, itemID); err != nil {
		return nil, fmt.Errorf("touch item: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return &entry, nil
}

// stockFor arma el mapa sede -> entrada de un item.
func (r *ItemRepo) stockFor(ctx context.Context, q Querier, itemID string) (map[string]entity.StockEntry, error) {
	rows, err := q.Query(ctx, `SELECT location_id, quantity, status FROM item_stock WHERE item_id = $1`, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item stock: %w", err)
	}
	defer rows.Close()
	out := map[string]entity.StockEntry{}
	for rows.Next() {
		var locationID string
		var e entity.StockEntry
		if err := rows.Scan(&locationID, &e.Quantity, &e.Status); err != nil {
			return nil, fmt.Errorf("scan item stock: %w", err)
		}
		out[locationID] = e
	}
	return out, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas con FK opcional.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
