package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/camivargas/cafestock-api/internal/application/auth"
	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/pkg/jwt"
)

// fakeAccounts repositorio de cuentas en memoria para los tests.
type fakeAccounts struct {
	byEmail map[string]*entity.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: map[string]*entity.Account{}}
}

func (f *fakeAccounts) CreateAccount(account *entity.Account) error {
	if _, ok := f.byEmail[account.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	if account.ID == "" {
		account.ID = "acc-" + account.Email
	}
	cp := *account
	f.byEmail[account.Email] = &cp
	return nil
}

func (f *fakeAccounts) GetAccount(id string) (*entity.Account, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) FindAccountByEmail(email string) (*entity.Account, error) {
	if a, ok := f.byEmail[email]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

var testCfg = auth.JWTConfig{Secret: "secret-de-test-unitario", ExpMinutes: 30, Issuer: "cafestock-test"}

func TestRegister_HasheaPasswordYAsignaRolStaff(t *testing.T) {
	repo := newFakeAccounts()
	uc := auth.NewUseCase(repo, testCfg)

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "sofia@cafestock.local",
		Password: "clave-segura",
		Name:     "Sofía Cárdenas",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sofía Cárdenas", resp.Name)
	assert.Equal(t, entity.RoleStaff, resp.Role, "una cuenta registrada arranca como staff")

	stored := repo.byEmail["sofia@cafestock.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash, "el password nunca se guarda en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura")))
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc := auth.NewUseCase(newFakeAccounts(), testCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.co", Password: "corto", Name: "A"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeAccounts()
	uc := auth.NewUseCase(repo, testCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "dup@cafestock.local", Password: "clave-segura", Name: "Uno"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "dup@cafestock.local", Password: "otra-clave-99", Name: "Dos"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_GeneraTokenConRol(t *testing.T) {
	repo := newFakeAccounts()
	uc := auth.NewUseCase(repo, testCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "laura@cafestock.local", Password: "clave-segura", Name: "Laura"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "laura@cafestock.local", Password: "clave-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, role, err := jwt.Parse(testCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Account.ID, userID)
	assert.Equal(t, entity.RoleStaff, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeAccounts()
	uc := auth.NewUseCase(repo, testCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "laura@cafestock.local", Password: "clave-segura", Name: "Laura"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "laura@cafestock.local", Password: "clave-equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := auth.NewUseCase(newFakeAccounts(), testCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@cafestock.local", Password: "da-igual-123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeAccounts()
	uc := auth.NewUseCase(repo, testCfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, repo.CreateAccount(&entity.Account{
		Email:        "baja@cafestock.local",
		PasswordHash: string(hash),
		Name:         "Cuenta de baja",
		Role:         entity.RoleStaff,
		Status:       "inactive",
	}))

	_, err = uc.Login(dto.LoginRequest{Email: "baja@cafestock.local", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
