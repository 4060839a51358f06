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

var _ repository.TeamMemberRepository = (*TeamMemberRepo)(nil)

// TeamMemberRepo implementación del puerto TeamMemberRepository sobre
// PostgreSQL. Las sedes asignadas se guardan como text[].
type TeamMemberRepo struct {
	q Querier
}

// NewTeamMemberRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTeamMemberRepository(q Querier) *TeamMemberRepo {
	return &TeamMemberRepo{q: q}
}

// AddTeamMember persiste un miembro del equipo.
func (r *TeamMemberRepo) AddTeamMember(member *entity.TeamMember) error {
	now := time.Now()
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = now
	member.UpdatedAt = now

	query := `
		INSERT INTO team_members (id, name, email, phone, role, assigned_locations, is_active, last_login, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.Name, member.Email, member.Phone, member.Role,
		member.AssignedLocations, member.IsActive, member.LastLogin,
		member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

// GetTeamMember obtiene un miembro por ID (nil si no existe).
func (r *TeamMemberRepo) GetTeamMember(id string) (*entity.TeamMember, error) {
	query := teamSelect + ` WHERE id = $1`
	var m entity.TeamMember
	err := r.q.QueryRow(context.Background(), query, id).Scan(teamFields(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}

// ListTeamMembers lista todos los miembros en orden de creación.
func (r *TeamMemberRepo) ListTeamMembers() ([]*entity.TeamMember, error) {
	rows, err := r.q.Query(context.Background(), teamSelect+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()
	var list []*entity.TeamMember
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(teamFields(&m)...); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpdateTeamMember actualiza la ficha del miembro.
func (r *TeamMemberRepo) UpdateTeamMember(member *entity.TeamMember) error {
	query := `
		UPDATE team_members SET name = $2, email = $3, phone = $4, role = $5,
		       assigned_locations = $6, is_active = $7, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		member.ID, member.Name, member.Email, member.Phone, member.Role,
		member.AssignedLocations, member.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteTeamMember elimina la ficha. No afecta ninguna credencial de acceso.
func (r *TeamMemberRepo) DeleteTeamMember(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

const teamSelect = `
	SELECT id, name, email, phone, role, assigned_locations, is_active, last_login, created_at, updated_at
	FROM team_members`

func teamFields(m *entity.TeamMember) []any {
	return []any{
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Role, &m.AssignedLocations,
		&m.IsActive, &m.LastLogin, &m.CreatedAt, &m.UpdatedAt,
	}
}
