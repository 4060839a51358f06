package entity

import "time"

// Account representa una credencial de acceso a la API (principal
// autenticado). Distinta de TeamMember: la autenticación se delega a este
// módulo y no guarda relación con la ficha de personal.
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Name         string
	Role         string // admin, manager, staff, viewer
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
