package dto

import "time"

// CreateLocationRequest entrada para crear una sede.
type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	Manager string `json:"manager"`
	Phone   string `json:"phone"`
}

// UpdateLocationRequest entrada para actualizar una sede.
type UpdateLocationRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Manager *string `json:"manager"`
	Phone   *string `json:"phone"`
}

// LocationResponse salida de una sede.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Manager   string    `json:"manager"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse lista de sedes.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
}
