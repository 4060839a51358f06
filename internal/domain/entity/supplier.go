package entity

import "time"

// Supplier representa un proveedor de insumos (café, lácteos, desechables...).
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
