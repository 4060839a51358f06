package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.TeamMemberRepository = (*Store)(nil)

// AddTeamMember agrega un miembro del equipo con id recién generado.
func (s *Store) AddTeamMember(member *entity.TeamMember) error {
	now := time.Now()
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = now
	member.UpdatedAt = now

	s.mu.Lock()
	cp := *member
	cp.AssignedLocations = append([]string(nil), member.AssignedLocations...)
	s.st.team = append(s.st.team, &cp)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("addUser", snap)
	return nil
}

// GetTeamMember obtiene un miembro por id (nil si no existe).
func (s *Store) GetTeamMember(id string) (*entity.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.st.team {
		if m.ID == id {
			cp := *m
			cp.AssignedLocations = append([]string(nil), m.AssignedLocations...)
			return &cp, nil
		}
	}
	return nil, nil
}

// ListTeamMembers devuelve todos los miembros en orden de creación.
func (s *Store) ListTeamMembers() ([]*entity.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.TeamMember, len(s.st.team))
	for i, m := range s.st.team {
		cp := *m
		cp.AssignedLocations = append([]string(nil), m.AssignedLocations...)
		out[i] = &cp
	}
	return out, nil
}

// UpdateTeamMember reemplaza los campos del miembro por id.
func (s *Store) UpdateTeamMember(member *entity.TeamMember) error {
	s.mu.Lock()
	var found *entity.TeamMember
	for _, m := range s.st.team {
		if m.ID == member.ID {
			found = m
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	found.Name = member.Name
	found.Email = member.Email
	found.Phone = member.Phone
	found.Role = member.Role
	found.AssignedLocations = append([]string(nil), member.AssignedLocations...)
	found.IsActive = member.IsActive
	found.LastLogin = member.LastLogin
	found.UpdatedAt = time.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("updateUser", snap)
	return nil
}

// DeleteTeamMember elimina el miembro por id. No afecta credenciales de
// acceso (Account es independiente).
func (s *Store) DeleteTeamMember(id string) error {
	s.mu.Lock()
	kept := s.st.team[:0]
	for _, m := range s.st.team {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.st.team = kept
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("deleteUser", snap)
	return nil
}
