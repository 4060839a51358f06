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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// AddCategory persiste una categoría nueva. Nombre duplicado -> ErrDuplicate.
func (r *CategoryRepo) AddCategory(category *entity.Category) error {
	now := time.Now()
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.CreatedAt = now
	category.UpdatedAt = now

	query := `
		INSERT INTO categories (id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		category.ID, category.Name, category.Color, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetCategory obtiene una categoría por ID (nil si no existe).
func (r *CategoryRepo) GetCategory(id string) (*entity.Category, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetCategoryByName obtiene una categoría por nombre exacto (nil si no existe).
func (r *CategoryRepo) GetCategoryByName(name string) (*entity.Category, error) {
	return r.getBy(`WHERE name = $1`, name)
}

func (r *CategoryRepo) getBy(where string, arg any) (*entity.Category, error) {
	query := `SELECT id, name, color, created_at, updated_at FROM categories ` + where
	var c entity.Category
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListCategories lista todas las categorías en orden de creación.
func (r *CategoryRepo) ListCategories() ([]*entity.Category, error) {
	query := `SELECT id, name, color, created_at, updated_at FROM categories ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateCategory renombra o recolorea la categoría. El id surrogate evita la
// cascada sobre items. La categoría reservada no se puede renombrar.
func (r *CategoryRepo) UpdateCategory(category *entity.Category) error {
	ctx := context.Background()
	current, err := r.GetCategory(category.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	if current.Name == entity.UncategorizedName && category.Name != entity.UncategorizedName {
		return domain.ErrCategoryReserved
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE categories SET name = $2, color = $3, updated_at = now()
		WHERE id = $1`,
		category.ID, category.Name, category.Color,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCategory reasigna los items de la categoría a la reservada
// "Sin categoría" y elimina la categoría, en la misma transacción. Nunca
// borra items; la reservada no se puede borrar.
func (r *CategoryRepo) DeleteCategory(id string) error {
	ctx := context.Background()
	current, err := r.GetCategory(id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	if current.Name == entity.UncategorizedName {
		return domain.ErrCategoryReserved
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		UPDATE items SET category_id = (SELECT id FROM categories WHERE name = $2), updated_at = now()
		WHERE category_id = $1`,
		id, entity.UncategorizedName,
	)
	if err != nil {
		return fmt.Errorf("reassign items: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
