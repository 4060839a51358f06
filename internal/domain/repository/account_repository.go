package repository

import "github.com/camivargas/cafestock-api/internal/domain/entity"

// AccountRepository puerto de persistencia para credenciales de acceso.
type AccountRepository interface {
	CreateAccount(account *entity.Account) error
	GetAccount(id string) (*entity.Account, error)
	FindAccountByEmail(email string) (*entity.Account, error)
}
