package repository

import "github.com/camivargas/cafestock-api/internal/domain/entity"

// TeamMemberRepository puerto de persistencia para miembros del equipo.
// Sin relación con las credenciales de acceso (AccountRepository).
type TeamMemberRepository interface {
	AddTeamMember(member *entity.TeamMember) error
	GetTeamMember(id string) (*entity.TeamMember, error)
	ListTeamMembers() ([]*entity.TeamMember, error)
	UpdateTeamMember(member *entity.TeamMember) error
	DeleteTeamMember(id string) error
}
