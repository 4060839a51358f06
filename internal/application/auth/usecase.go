// Package auth casos de uso de autenticación. Las cuentas son un módulo
// aparte del personal: registrar o borrar fichas de equipo nunca toca
// credenciales.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
	"github.com/camivargas/cafestock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	accounts repository.AccountRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(accounts repository.AccountRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{accounts: accounts, jwtCfg: jwtCfg}
}

// Register crea una cuenta: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if len(in.Password) < 8 {
		return nil, domain.Validation("password", "mínimo 8 caracteres")
	}
	existing, err := uc.accounts.FindAccountByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	account := &entity.Account{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleStaff,
		Status:       "active",
	}
	if err := uc.accounts.CreateAccount(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Login verifica email/password, genera el JWT y retorna token + cuenta.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := uc.accounts.FindAccountByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if account.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:   token,
		Account: *toAccountResponse(account),
	}, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}
