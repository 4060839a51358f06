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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL.
// CompleteTransfer delega en el procedimiento complete_transfer de la base:
// la marca de completado y el movimiento debitar/acreditar ocurren en una
// sola transacción del lado del servidor.
type TransferRepo struct {
	pool *pgxpool.Pool
}

// NewTransferRepository construye el adaptador de persistencia para traslados.
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

// AddTransfer persiste el traslado con estado pending y los snapshots
// desnormalizados del nombre del item y de las sedes origen/destino.
func (r *TransferRepo) AddTransfer(transfer *entity.Transfer) error {
	ctx := context.Background()
	now := time.Now()
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	if transfer.Status == "" {
		transfer.Status = entity.TransferPending
	}
	if transfer.RequestDate.IsZero() {
		transfer.RequestDate = now
	}
	transfer.CreatedAt = now
	transfer.UpdatedAt = now

	_ = r.pool.QueryRow(ctx, `SELECT name FROM items WHERE id = $1`, transfer.ItemID).
		Scan(&transfer.ItemName)
	_ = r.pool.QueryRow(ctx, `SELECT name FROM locations WHERE id = $1`, transfer.FromLocationID).
		Scan(&transfer.FromLocationName)
	_ = r.pool.QueryRow(ctx, `SELECT name FROM locations WHERE id = $1`, transfer.ToLocationID).
		Scan(&transfer.ToLocationName)

	query := `
		INSERT INTO transfers (id, item_id, item_name, from_location_id, from_location_name,
		       to_location_id, to_location_name, quantity, status, request_date, expected_date,
		       reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(ctx, query,
		transfer.ID, nullIfEmpty(transfer.ItemID), transfer.ItemName,
		nullIfEmpty(transfer.FromLocationID), transfer.FromLocationName,
		nullIfEmpty(transfer.ToLocationID), transfer.ToLocationName,
		transfer.Quantity, transfer.Status, transfer.RequestDate, transfer.ExpectedDate,
		transfer.Reason, transfer.CreatedAt, transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetTransfer obtiene un traslado por ID (nil si no existe).
func (r *TransferRepo) GetTransfer(id string) (*entity.Transfer, error) {
	query := transferSelect + ` WHERE id = $1`
	var t entity.Transfer
	err := r.pool.QueryRow(context.Background(), query, id).Scan(transferFields(&t)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// ListTransfers lista todos los traslados en orden de creación.
func (r *TransferRepo) ListTransfers() ([]*entity.Transfer, error) {
	rows, err := r.pool.Query(context.Background(), transferSelect+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(transferFields(&t)...); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateTransfer actualiza cantidad, estado, fecha esperada y motivo. Un
// traslado ya completado no se puede editar.
func (r *TransferRepo) UpdateTransfer(transfer *entity.Transfer) error {
	query := `
		UPDATE transfers SET quantity = $2, status = $3, expected_date = $4, reason = $5, updated_at = now()
		WHERE id = $1 AND status <> 'completed'`
	cmd, err := r.pool.Exec(context.Background(), query,
		transfer.ID, transfer.Quantity, transfer.Status, transfer.ExpectedDate, transfer.Reason,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		current, err := r.GetTransfer(transfer.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// DeleteTransfer elimina el traslado por ID.
func (r *TransferRepo) DeleteTransfer(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}

// CompleteTransfer invoca el procedimiento complete_transfer: marca el
// traslado como completed, debita la sede origen (piso de cero) y acredita la
// destino, todo del lado del servidor. Id inexistente o traslado ya
// completado/cancelado es un no-op silencioso (el procedimiento no falla).
func (r *TransferRepo) CompleteTransfer(id string) error {
	_, err := r.pool.Exec(context.Background(), `SELECT complete_transfer($1)`, id)
	if err != nil {
		return fmt.Errorf("complete transfer: %w", err)
	}
	return nil
}

const transferSelect = `
	SELECT id, COALESCE(item_id, ''), item_name, COALESCE(from_location_id, ''), from_location_name,
	       COALESCE(to_location_id, ''), to_location_name, quantity, status, request_date,
	       expected_date, reason, created_at, updated_at
	FROM transfers`

func transferFields(t *entity.Transfer) []any {
	return []any{
		&t.ID, &t.ItemID, &t.ItemName, &t.FromLocationID, &t.FromLocationName,
		&t.ToLocationID, &t.ToLocationName, &t.Quantity, &t.Status, &t.RequestDate,
		&t.ExpectedDate, &t.Reason, &t.CreatedAt, &t.UpdatedAt,
	}
}
