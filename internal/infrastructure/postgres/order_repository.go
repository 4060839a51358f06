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
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// AddOrder persiste la orden con los snapshots de creación: nombre del item
// y costo = item.cost × cantidad, congelados al momento de crearla. No toca
// el stock.
func (r *OrderRepo) AddOrder(order *entity.Order) error {
	ctx := context.Background()
	now := time.Now()
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = entity.OrderPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = now
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	var itemName string
	var itemCost decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT name, cost FROM items WHERE id = $1`, order.ItemID).
		Scan(&itemName, &itemCost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get item for order: %w", err)
	}
	order.ItemName = itemName
	order.Cost = itemCost.Mul(order.Quantity)

	query := `
		INSERT INTO orders (id, item_id, item_name, quantity, status, order_date, expected_delivery, supplier_id, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.pool.Exec(ctx, query,
		order.ID, nullIfEmpty(order.ItemID), order.ItemName, order.Quantity, order.Status,
		order.OrderDate, order.ExpectedDelivery, nullIfEmpty(order.SupplierID), order.Cost,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetOrder obtiene una orden por ID (nil si no existe).
func (r *OrderRepo) GetOrder(id string) (*entity.Order, error) {
	query := orderSelect + ` WHERE id = $1`
	var o entity.Order
	err := r.pool.QueryRow(context.Background(), query, id).Scan(orderFields(&o)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListOrders lista todas las órdenes en orden de creación.
func (r *OrderRepo) ListOrders() ([]*entity.Order, error) {
	rows, err := r.pool.Query(context.Background(), orderSelect+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(orderFields(&o)...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateOrder actualiza cantidad, estado y fechas. Los snapshots (nombre del
// item, costo) nunca se recalculan.
func (r *OrderRepo) UpdateOrder(order *entity.Order) error {
	query := `
		UPDATE orders SET quantity = $2, status = $3, expected_delivery = $4, updated_at = now()
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		order.ID, order.Quantity, order.Status, order.ExpectedDelivery,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteOrder elimina la orden por ID.
func (r *OrderRepo) DeleteOrder(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

const orderSelect = `
	SELECT id, COALESCE(item_id, ''), item_name, quantity, status, order_date,
	       expected_delivery, COALESCE(supplier_id, ''), cost, created_at, updated_at
	FROM orders`

func orderFields(o *entity.Order) []any {
	return []any{
		&o.ID, &o.ItemID, &o.ItemName, &o.Quantity, &o.Status, &o.OrderDate,
		&o.ExpectedDelivery, &o.SupplierID, &o.Cost, &o.CreatedAt, &o.UpdatedAt,
	}
}
