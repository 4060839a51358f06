package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	pool *pgxpool.Pool
}

// NewLocationRepository construye el adaptador de persistencia para sedes.
func NewLocationRepository(pool *pgxpool.Pool) *LocationRepo {
	return &LocationRepo{pool: pool}
}

// AddLocation persiste la sede y rellena una fila de stock en cero para cada
// item existente, en la misma transacción (invariante: toda pareja
// item × sede tiene fila de stock).
func (r *LocationRepo) AddLocation(location *entity.Location) error {
	ctx := context.Background()
	now := time.Now()
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	location.CreatedAt = now
	location.UpdatedAt = now

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO locations (id, name, address, manager, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		location.ID, location.Name, location.Address, location.Manager, location.Phone,
		location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO item_stock (item_id, location_id, quantity, status, updated_at)
		SELECT i.id, $1, 0, 'out-of-stock', now() FROM items i
		ON CONFLICT (item_id, location_id) DO NOTHING`,
		location.ID,
	)
	if err != nil {
		return fmt.Errorf("backfill stock: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetLocation obtiene una sede por ID (nil si no existe).
func (r *LocationRepo) GetLocation(id string) (*entity.Location, error) {
	query := `
		SELECT id, name, address, manager, phone, created_at, updated_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Address, &l.Manager, &l.Phone, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// ListLocations lista todas las sedes en orden de creación.
func (r *LocationRepo) ListLocations() ([]*entity.Location, error) {
	query := `
		SELECT id, name, address, manager, phone, created_at, updated_at
		FROM locations ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Manager, &l.Phone, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateLocation actualiza los campos de la sede.
func (r *LocationRepo) UpdateLocation(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, address = $3, manager = $4, phone = $5, updated_at = now()
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.Manager, location.Phone,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLocation elimina la sede. Las filas de item_stock de la sede caen por
// FK ON DELETE CASCADE; órdenes, traslados y asignaciones de equipo que
// referencien el id eliminado conservan su snapshot desnormalizado.
func (r *LocationRepo) DeleteLocation(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
