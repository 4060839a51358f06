package dto

import "time"

// CreateTeamMemberRequest entrada para crear un miembro del equipo.
type CreateTeamMemberRequest struct {
	Name              string   `json:"name" validate:"required,min=1,max=200"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Phone             string   `json:"phone"`
	Role              string   `json:"role" validate:"required"`
	AssignedLocations []string `json:"assigned_locations"`
}

// UpdateTeamMemberRequest entrada para actualizar la ficha de un miembro.
type UpdateTeamMemberRequest struct {
	Name              *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Email             *string   `json:"email" validate:"omitempty,email"`
	Phone             *string   `json:"phone"`
	Role              *string   `json:"role"`
	AssignedLocations *[]string `json:"assigned_locations"`
	IsActive          *bool     `json:"is_active"`
}

// TeamMemberResponse salida de un miembro del equipo.
type TeamMemberResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Role              string     `json:"role"`
	AssignedLocations []string   `json:"assigned_locations"`
	IsActive          bool       `json:"is_active"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TeamMemberListResponse lista de miembros del equipo.
type TeamMemberListResponse struct {
	Items []TeamMemberResponse `json:"items"`
}
