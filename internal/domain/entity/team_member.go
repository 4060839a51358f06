package entity

import "time"

// Roles válidos para TeamMember.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleViewer  = "viewer"
)

// TeamMember representa un miembro del equipo gestionado desde el módulo de
// personal. Es independiente del principal autenticado (Account): borrar o
// editar un TeamMember no afecta ninguna credencial de acceso.
type TeamMember struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	Role              string // admin, manager, staff, viewer
	AssignedLocations []string
	IsActive          bool
	CreatedAt         time.Time
	LastLogin         *time.Time
	UpdatedAt         time.Time
}

// ValidRole indica si el rol es uno de los permitidos.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleViewer:
		return true
	}
	return false
}
