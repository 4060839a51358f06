package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*Store)(nil)

// Las cuentas no forman parte del blob de estado persistido: viven solo en
// memoria y se siembran al arrancar (cuenta admin de la configuración).

// CreateAccount registra una credencial de acceso.
func (s *Store) CreateAccount(account *entity.Account) error {
	now := time.Now()
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.Status == "" {
		account.Status = "active"
	}
	account.CreatedAt = now
	account.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.st.accounts {
		if strings.EqualFold(a.Email, account.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *account
	s.st.accounts = append(s.st.accounts, &cp)
	return nil
}

// GetAccount obtiene una cuenta por id (nil si no existe).
func (s *Store) GetAccount(id string) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.st.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// FindAccountByEmail obtiene una cuenta por email, sin distinguir mayúsculas
// (nil si no existe).
func (s *Store) FindAccountByEmail(email string) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.st.accounts {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}
