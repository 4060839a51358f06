package usecase

import (
	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// TeamUseCase casos de uso para el módulo de personal. Sin relación con las
// credenciales de acceso: crear o borrar fichas no toca cuentas.
type TeamUseCase struct {
	repo repository.TeamMemberRepository
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(repo repository.TeamMemberRepository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

// Create crea la ficha de un miembro del equipo.
func (uc *TeamUseCase) Create(in dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("name", "el nombre es obligatorio")
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.Validation("role", "rol desconocido")
	}
	member := &entity.TeamMember{
		Name:              in.Name,
		Email:             in.Email,
		Phone:             in.Phone,
		Role:              in.Role,
		AssignedLocations: in.AssignedLocations,
		IsActive:          true,
	}
	if err := uc.repo.AddTeamMember(member); err != nil {
		return nil, err
	}
	return toTeamMemberResponse(member), nil
}

// GetByID obtiene una ficha por ID (nil si no existe).
func (uc *TeamUseCase) GetByID(id string) (*dto.TeamMemberResponse, error) {
	member, err := uc.repo.GetTeamMember(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}
	return toTeamMemberResponse(member), nil
}

// List lista todas las fichas del equipo.
func (uc *TeamUseCase) List() (*dto.TeamMemberListResponse, error) {
	list, err := uc.repo.ListTeamMembers()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TeamMemberResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toTeamMemberResponse(m))
	}
	return &dto.TeamMemberListResponse{Items: items}, nil
}

// Update actualiza la ficha con los campos presentes.
func (uc *TeamUseCase) Update(id string, in dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := uc.repo.GetTeamMember(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validation("name", "el nombre no puede quedar vacío")
		}
		member.Name = *in.Name
	}
	if in.Email != nil {
		member.Email = *in.Email
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.Validation("role", "rol desconocido")
		}
		member.Role = *in.Role
	}
	if in.AssignedLocations != nil {
		member.AssignedLocations = *in.AssignedLocations
	}
	if in.IsActive != nil {
		member.IsActive = *in.IsActive
	}
	if err := uc.repo.UpdateTeamMember(member); err != nil {
		return nil, err
	}
	return toTeamMemberResponse(member), nil
}

// Delete elimina la ficha por ID.
func (uc *TeamUseCase) Delete(id string) error {
	return uc.repo.DeleteTeamMember(id)
}

func toTeamMemberResponse(m *entity.TeamMember) *dto.TeamMemberResponse {
	if m == nil {
		return nil
	}
	return &dto.TeamMemberResponse{
		ID:                m.ID,
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		Role:              m.Role,
		AssignedLocations: m.AssignedLocations,
		IsActive:          m.IsActive,
		LastLogin:         m.LastLogin,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
