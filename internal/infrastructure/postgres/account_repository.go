package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// CreateAccount registra una credencial de acceso. Email duplicado (índice
// único sobre lower(email)) -> ErrEmailAlreadyExists.
func (r *AccountRepo) CreateAccount(account *entity.Account) error {
	now := time.Now()
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.Status == "" {
		account.Status = "active"
	}
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO accounts (id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Email, account.PasswordHash, account.Name,
		account.Role, account.Status, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetAccount obtiene una cuenta por ID (nil si no existe).
func (r *AccountRepo) GetAccount(id string) (*entity.Account, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// FindAccountByEmail obtiene una cuenta por email sin distinguir mayúsculas
// (nil si no existe).
func (r *AccountRepo) FindAccountByEmail(email string) (*entity.Account, error) {
	return r.getBy(`WHERE lower(email) = lower($1)`, email)
}

func (r *AccountRepo) getBy(where string, arg any) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, name, role, status, created_at, updated_at
		FROM accounts ` + where
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
